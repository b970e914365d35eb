package graphql

import (
	"context"
	"encoding/json"
	"net/http"

	gql "github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/logging"
	"github.com/slugmart/slugmart/internal/server/auth"
)

const maxBodyBytes = 1 << 20

// Authorizer is satisfied by *auth.Gate.
type Authorizer interface {
	Authorize(ctx context.Context, operations []string, authorization string) (context.Context, error)
}

type errorMessage struct {
	Message string `json:"message"`
}

type errorEnvelope struct {
	Errors []errorMessage `json:"errors"`
}

// Handler serves graphql-over-HTTP. Every request passes the gate before the
// executor sees it; a denied request gets 401 and no resolver runs.
type Handler struct {
	schema *Schema
	gate   Authorizer
	logger logging.Logger
}

func NewHandler(schema *Schema, gate Authorizer, logger logging.Logger) *Handler {
	return &Handler{schema: schema, gate: gate, logger: logger.With("module", "graphql")}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	// An unparsable document names no operations and is therefore treated
	// as protected; the executor reports the syntax error to authorized callers.
	var operations []string
	sel, err := SelectOperation(req.Query, req.OperationName)
	if err == nil {
		operations = sel.Fields
		if r.Method == http.MethodGet && sel.Type != ast.OperationTypeQuery {
			writeErrors(w, http.StatusMethodNotAllowed, "only queries may be sent with GET")
			return
		}
	}

	ctx, err := h.gate.Authorize(r.Context(), operations, r.Header.Get(common.AuthorizationHeaderName))
	if err != nil {
		writeErrors(w, http.StatusUnauthorized, common.ErrTokenMissing.Error())
		return
	}

	result := gql.Do(gql.Params{
		Schema:         h.schema.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})

	if result.HasErrors() {
		h.logger.Debug(ctx, "request completed with errors", "operations", operations, "errors", len(result.Errors))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (*Request, bool) {
	var req Request
	switch r.Method {
	case http.MethodPost:
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrors(w, http.StatusBadRequest, "invalid request body")
			return nil, false
		}
	case http.MethodGet:
		q := r.URL.Query()
		req.Query = q.Get("query")
		req.OperationName = q.Get("operationName")
		if v := q.Get("variables"); v != "" {
			if err := json.Unmarshal([]byte(v), &req.Variables); err != nil {
				writeErrors(w, http.StatusBadRequest, "invalid variables")
				return nil, false
			}
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		writeErrors(w, http.StatusMethodNotAllowed, "method not allowed")
		return nil, false
	}

	if req.Query == "" {
		writeErrors(w, http.StatusBadRequest, "query is required")
		return nil, false
	}
	return &req, true
}

func writeErrors(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorEnvelope{Errors: []errorMessage{{Message: msg}}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

var _ Authorizer = (*auth.Gate)(nil)
