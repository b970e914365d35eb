package graphql

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
)

// Request is a graphql-over-HTTP request body.
type Request struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
	OperationName string         `json:"operationName"`
}

var errNoOperation = errors.New("graphql: no operation to execute")

// Selection is what a request asks the server to run: the operation type
// and the names of the top-level fields it selects.
type Selection struct {
	Type   string
	Fields []string
}

// SelectOperation parses query and returns the top-level fields of the
// operation that would be executed. Aliases are ignored and fragment spreads
// at the top level are expanded.
func SelectOperation(query, operationName string) (*Selection, error) {
	doc, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return nil, err
	}

	var (
		ops       []*ast.OperationDefinition
		fragments = map[string]*ast.FragmentDefinition{}
	)
	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case *ast.OperationDefinition:
			ops = append(ops, d)
		case *ast.FragmentDefinition:
			if d.Name != nil {
				fragments[d.Name.Value] = d
			}
		}
	}

	op, err := pickOperation(ops, operationName)
	if err != nil {
		return nil, err
	}

	sel := &Selection{Type: op.Operation}
	seen := map[string]bool{}
	collectFields(op.SelectionSet, fragments, seen, &sel.Fields)
	return sel, nil
}

func pickOperation(ops []*ast.OperationDefinition, name string) (*ast.OperationDefinition, error) {
	if name == "" {
		if len(ops) != 1 {
			if len(ops) == 0 {
				return nil, errNoOperation
			}
			return nil, errors.New("graphql: operationName is required when the document has several operations")
		}
		return ops[0], nil
	}
	for _, op := range ops {
		if op.Name != nil && op.Name.Value == name {
			return op, nil
		}
	}
	return nil, fmt.Errorf("graphql: unknown operation %q", name)
}

// collectFields appends top-level field names. visited guards against
// fragment cycles, which validation would reject anyway.
func collectFields(set *ast.SelectionSet, fragments map[string]*ast.FragmentDefinition, visited map[string]bool, out *[]string) {
	if set == nil {
		return
	}
	for _, s := range set.Selections {
		switch node := s.(type) {
		case *ast.Field:
			if node.Name != nil {
				*out = append(*out, node.Name.Value)
			}
		case *ast.InlineFragment:
			collectFields(node.SelectionSet, fragments, visited, out)
		case *ast.FragmentSpread:
			if node.Name == nil || visited[node.Name.Value] {
				continue
			}
			visited[node.Name.Value] = true
			if frag, ok := fragments[node.Name.Value]; ok {
				collectFields(frag.SelectionSet, fragments, visited, out)
			}
		}
	}
}
