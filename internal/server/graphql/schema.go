// Package graphql exposes the marketplace over GraphQL. Every top-level
// field is declared together with its access level; the auth policy the
// gate enforces is derived from those same declarations.
package graphql

import (
	"fmt"

	gql "github.com/graphql-go/graphql"

	"github.com/slugmart/slugmart/internal/server/auth"
)

// TypenameField is answered by the executor for any operation and never
// touches data, so it is public.
const TypenameField = "__typename"

type Schema struct {
	schema gql.Schema
	policy *auth.Policy
}

func NewSchema(s Services) (*Schema, error) {
	queries := queryOperations(s)
	mutations := mutationOperations(s)

	rules := []auth.Rule{{Name: TypenameField, Access: auth.Public}}
	queryFields := gql.Fields{}
	for _, op := range queries {
		queryFields[op.Name] = op.Field
		rules = append(rules, auth.Rule{Name: op.Name, Access: op.Access})
	}
	mutationFields := gql.Fields{}
	for _, op := range mutations {
		mutationFields[op.Name] = op.Field
		rules = append(rules, auth.Rule{Name: op.Name, Access: op.Access})
	}

	policy, err := auth.NewPolicy(rules...)
	if err != nil {
		return nil, err
	}

	schema, err := gql.NewSchema(gql.SchemaConfig{
		Query:    gql.NewObject(gql.ObjectConfig{Name: "Query", Fields: queryFields}),
		Mutation: gql.NewObject(gql.ObjectConfig{Name: "Mutation", Fields: mutationFields}),
	})
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}

	return &Schema{schema: schema, policy: policy}, nil
}

// Policy is the access table derived from the schema's declarations.
func (s *Schema) Policy() *auth.Policy {
	return s.policy
}
