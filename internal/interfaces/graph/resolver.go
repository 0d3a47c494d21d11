// Package graph expone empleos y empresas como API GraphQL (graph-gophers/graphql-go).
package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/jobboard-api/internal/application/usecase"
)

// Resolver raíz: campos de Query y Mutation.
type Resolver struct {
	jobs      *usecase.JobUseCase
	companies *usecase.CompanyUseCase
}

// NewResolver construye el resolver raíz con los casos de uso.
func NewResolver(jobs *usecase.JobUseCase, companies *usecase.CompanyUseCase) *Resolver {
	return &Resolver{jobs: jobs, companies: companies}
}

// ── Query ────────────────────────────────────────────────────────────────────

func (r *Resolver) Company(ctx context.Context, args struct{ ID graphql.ID }) (*CompanyResolver, error) {
	c, err := r.companies.GetByID(ctx, string(args.ID))
	if err != nil {
		return nil, translate(err, "no se encontró la empresa con id "+string(args.ID))
	}
	return &CompanyResolver{c: c, root: r}, nil
}

func (r *Resolver) Job(ctx context.Context, args struct{ ID graphql.ID }) (*JobResolver, error) {
	j, err := r.jobs.GetByID(ctx, string(args.ID))
	if err != nil {
		return nil, translate(err, "no se encontró el empleo con id "+string(args.ID))
	}
	return &JobResolver{j: j, root: r}, nil
}

type jobsArgs struct {
	Limit  *int32
	Offset *int32
}

func (r *Resolver) Jobs(ctx context.Context, args jobsArgs) (*JobSubListResolver, error) {
	page, err := r.jobs.List(ctx, intOrZero(args.Limit), intOrZero(args.Offset))
	if err != nil {
		return nil, err
	}
	return &JobSubListResolver{items: r.jobResolvers(ctx, page.Items), total: int32(page.TotalCount)}, nil
}

// ── Mutation ─────────────────────────────────────────────────────────────────

type createJobInput struct {
	Title       string
	Description *string
}

type updateJobInput struct {
	ID          graphql.ID
	Title       string
	Description *string
}

func (r *Resolver) CreateJob(ctx context.Context, args struct{ Input createJobInput }) (*JobResolver, error) {
	user := FromContext(ctx).User
	j, err := r.jobs.Create(ctx, user, usecase.JobInput{Title: args.Input.Title, Description: args.Input.Description})
	if err != nil {
		return nil, translate(err, "no se encontró el empleo")
	}
	return &JobResolver{j: j, root: r}, nil
}

func (r *Resolver) UpdateJob(ctx context.Context, args struct{ Input updateJobInput }) (*JobResolver, error) {
	user := FromContext(ctx).User
	id := string(args.Input.ID)
	j, err := r.jobs.Update(ctx, user, id, usecase.JobInput{Title: args.Input.Title, Description: args.Input.Description})
	if err != nil {
		return nil, translate(err, "no se encontró el empleo con id "+id)
	}
	return &JobResolver{j: j, root: r}, nil
}

func (r *Resolver) DeleteJob(ctx context.Context, args struct{ ID graphql.ID }) (*JobResolver, error) {
	user := FromContext(ctx).User
	j, err := r.jobs.Delete(ctx, user, string(args.ID))
	if err != nil {
		return nil, translate(err, "no se encontró el empleo con id "+string(args.ID))
	}
	return &JobResolver{j: j, root: r}, nil
}

func intOrZero(p *int32) int {
	if p == nil {
		return 0
	}
	return int(*p)
}

// nullable mapea "" a null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
