package graphql

import (
	"encoding/json"
	"net/http"

	gql "github.com/graphql-go/graphql"

	"github.com/askhub/askhub-server/internal/logger"
)

// Handler executes GraphQL requests posted to the endpoint.
type Handler struct {
	schema gql.Schema
	logger *logger.Logger
}

// NewHandler creates a GraphQL HTTP handler for the schema.
func NewHandler(schema gql.Schema, logger *logger.Logger) *Handler {
	return &Handler{schema: schema, logger: logger}
}

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// The cookie writer goes through the context so resolvers can attach
	// the session cookie to this response.
	ctx := WithCookieWriter(r.Context(), w)

	result := gql.Do(gql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("GraphQL handler: failed to write response",
			"error", err.Error())
	}
}
