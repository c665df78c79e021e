package graphql

import (
	"fmt"
	"net/http"

	"github.com/askhub/askhub-server/internal/logger"
	"github.com/askhub/askhub-server/internal/model"
)

// Router assembles the GraphQL endpoint with its middleware chain.
type Router struct {
	resolver *Resolver
	tokens   TokenService
	ctxMgr   model.ContextManager
	logger   *logger.Logger
}

// NewRouter creates a Router around the resolver and token service.
func NewRouter(resolver *Resolver, tokens TokenService, ctxMgr model.ContextManager, logger *logger.Logger) *Router {
	return &Router{
		resolver: resolver,
		tokens:   tokens,
		ctxMgr:   ctxMgr,
		logger:   logger,
	}
}

// Register builds the HTTP handler: logging, then cookie authentication,
// then the GraphQL executor on /graphql.
func (r *Router) Register() (http.Handler, error) {
	schema, err := NewSchema(r.resolver)
	if err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	gqlHandler := NewHandler(schema, r.logger)
	authenticate := NewAuthenticate(r.tokens, r.ctxMgr, r.logger)
	logging := NewLogging(r.logger)

	mux := http.NewServeMux()
	mux.Handle("/graphql", authenticate.Handle(gqlHandler))

	return logging.Handle(mux), nil
}
