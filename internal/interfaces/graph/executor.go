package graph

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/application/loader"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

//go:embed schema.graphql
var schemaSDL string

// Options ajustes de ejecución.
type Options struct {
	MaxParallelism int
	LoaderWait     time.Duration
}

// Executor ejecuta operaciones GraphQL armando el RequestContext de cada request.
type Executor struct {
	schema    *graphql.Schema
	companies repository.CompanyRepository
	wait      time.Duration
}

// NewExecutor parsea el schema contra el resolver. Falla si no coinciden.
func NewExecutor(res *Resolver, companies repository.CompanyRepository, opts Options) (*Executor, error) {
	schemaOpts := []graphql.SchemaOpt{graphql.Logger(panicLogger{})}
	if opts.MaxParallelism > 0 {
		schemaOpts = append(schemaOpts, graphql.MaxParallelism(opts.MaxParallelism))
	}
	schema, err := graphql.ParseSchema(schemaSDL, res, schemaOpts...)
	if err != nil {
		return nil, fmt.Errorf("parse graphql schema: %w", err)
	}
	return &Executor{schema: schema, companies: companies, wait: opts.LoaderWait}, nil
}

// Exec ejecuta req en nombre de user (nil = anónimo) con un loader de empresas nuevo.
func (e *Executor) Exec(ctx context.Context, user *entity.User, req dto.GraphQLRequest) *graphql.Response {
	rc := &RequestContext{
		User:      user,
		Companies: loader.NewCompanyLoader(e.companies, e.wait),
	}
	return e.schema.Exec(WithRequestContext(ctx, rc), req.Query, req.OperationName, req.Variables)
}

// panicLogger registra con zerolog los panics recuperados por graphql-go.
type panicLogger struct{}

func (panicLogger) LogPanic(ctx context.Context, value interface{}) {
	zerolog.Ctx(ctx).Error().Interface("panic", value).Msg("panic en resolver graphql")
}
