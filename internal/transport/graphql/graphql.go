// Package graphql serves the question/answer board over GraphQL next to the
// REST API. gqlgen's handler parses, validates and limits the operations;
// resolvers call the same lifecycle service the REST handlers use, and
// per-request DataLoaders batch the answers and caller votes of listed
// questions.
package graphql

import (
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/heartmarshall/qaboard-backend/internal/transport/graphql/dataloader"
)

//go:embed schema.graphqls
var schemaSource string

// Config tunes the endpoint.
type Config struct {
	ComplexityLimit int
}

// LoadSchema parses the embedded schema.
func LoadSchema() (*ast.Schema, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphqls", Input: schemaSource})
	if err != nil {
		return nil, fmt.Errorf("load graphql schema: %w", err)
	}
	return schema, nil
}

// NewHandler returns the /graphql handler: GET and POST transports, a
// cached query parser, the complexity limit and the domain error presenter,
// wrapped in the DataLoader middleware.
func NewHandler(log *slog.Logger, svc qnaService, cfg Config) (http.Handler, error) {
	schema, err := LoadSchema()
	if err != nil {
		return nil, err
	}

	srv := handler.New(newExecutableSchema(schema, &Resolver{svc: svc}))
	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})
	srv.SetQueryCache(lru.New[*ast.QueryDocument](1000))
	srv.SetErrorPresenter(NewErrorPresenter(log))
	if cfg.ComplexityLimit > 0 {
		srv.Use(extension.FixedComplexityLimit(cfg.ComplexityLimit))
	}

	return dataloader.Middleware(svc)(srv), nil
}
