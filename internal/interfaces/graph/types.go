package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
)

// dateLayout formato de Job.date.
const dateLayout = "2006-01-02"

// JobResolver campos de Job.
type JobResolver struct {
	j    *entity.Job
	root *Resolver
	// company empresa ya encolada en el loader por una lista; nil = carga perezosa.
	company func() (*entity.Company, error)
}

func (r *JobResolver) ID() graphql.ID       { return graphql.ID(r.j.ID) }
func (r *JobResolver) Title() string        { return r.j.Title }
func (r *JobResolver) Description() *string { return r.j.Description }
func (r *JobResolver) Date() string         { return r.j.CreatedAt.UTC().Format(dateLayout) }

// Company resuelve la empresa con el loader del request.
func (r *JobResolver) Company(ctx context.Context) (*CompanyResolver, error) {
	var (
		c   *entity.Company
		err error
	)
	switch rc := FromContext(ctx); {
	case r.company != nil:
		c, err = r.company()
	case rc.Companies != nil:
		c, err = rc.Companies.Load(ctx, r.j.CompanyID)
	default:
		c, err = r.root.companies.GetByID(ctx, r.j.CompanyID)
	}
	if err != nil {
		return nil, translate(err, "no se encontró la empresa con id "+r.j.CompanyID)
	}
	if c == nil {
		return nil, notFound("no se encontró la empresa con id %s", r.j.CompanyID)
	}
	return &CompanyResolver{c: c, root: r.root}, nil
}

// CompanyResolver campos de Company.
type CompanyResolver struct {
	c    *entity.Company
	root *Resolver
}

func (r *CompanyResolver) ID() graphql.ID       { return graphql.ID(r.c.ID) }
func (r *CompanyResolver) Name() string         { return r.c.Name }
func (r *CompanyResolver) Description() *string { return nullable(r.c.Description) }

// Jobs lista todos los empleos de la empresa.
func (r *CompanyResolver) Jobs(ctx context.Context) ([]*JobResolver, error) {
	jobs, err := r.root.companies.Jobs(ctx, r.c.ID)
	if err != nil {
		return nil, err
	}
	if companies := FromContext(ctx).Companies; companies != nil {
		companies.Prime(ctx, r.c)
	}
	return r.root.jobResolvers(ctx, jobs), nil
}

// JobSubListResolver página de empleos.
type JobSubListResolver struct {
	items []*JobResolver
	total int32
}

func (r *JobSubListResolver) Items() []*JobResolver { return r.items }
func (r *JobSubListResolver) TotalCount() int32    { return r.total }

// jobResolvers encola en el loader la empresa de cada empleo antes de devolverlos:
// las claves de una lista caen en un solo lote sin importar MaxParallelism.
// Si la query no pide company, el lote se consulta igual una vez.
func (r *Resolver) jobResolvers(ctx context.Context, jobs []*entity.Job) []*JobResolver {
	companies := FromContext(ctx).Companies
	out := make([]*JobResolver, len(jobs))
	for i, j := range jobs {
		out[i] = &JobResolver{j: j, root: r}
		if companies != nil {
			out[i].company = companies.LoadThunk(ctx, j.CompanyID)
		}
	}
	return out
}
