package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/jobboard-api/internal/application/events"
	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

// JobPage página de empleos con el total sin paginar.
type JobPage struct {
	Items      []*entity.Job
	TotalCount int
}

// JobInput campos editables recibidos de la API.
// Description nil: al crear, sin descripción; al actualizar, se conserva la actual.
type JobInput struct {
	Title       string
	Description *string
}

// JobUseCase casos de uso de empleos. Las mutaciones exigen usuario y
// solo afectan empleos de su empresa.
type JobUseCase struct {
	jobs      repository.JobRepository
	publisher events.JobEventPublisher
	now       func() time.Time
}

// NewJobUseCase construye el caso de uso. publisher nil = eventos deshabilitados.
func NewJobUseCase(jobs repository.JobRepository, publisher events.JobEventPublisher) *JobUseCase {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &JobUseCase{jobs: jobs, publisher: publisher, now: time.Now}
}

// GetByID obtiene un empleo. domain.ErrNotFound si no existe.
func (uc *JobUseCase) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	job, err := uc.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	return job, nil
}

// List lista empleos de todas las empresas. Valores no positivos de limit/offset se ignoran.
func (uc *JobUseCase) List(ctx context.Context, limit, offset int) (*JobPage, error) {
	filter := repository.JobFilter{Limit: max(limit, 0), Offset: max(offset, 0)}
	items, err := uc.jobs.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.jobs.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &JobPage{Items: items, TotalCount: total}, nil
}

// Create publica un empleo a nombre de la empresa del usuario.
func (uc *JobUseCase) Create(ctx context.Context, user *entity.User, in JobInput) (*entity.Job, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := validateJobInput(in); err != nil {
		return nil, err
	}
	job, err := uc.jobs.Create(ctx, entity.NewJob{
		CompanyID:   user.CompanyID,
		Title:       in.Title,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	uc.publish(ctx, events.JobCreated, job, user)
	return job, nil
}

// Update cambia título y, si viene, descripción. Un empleo de otra empresa se reporta como domain.ErrNotFound.
func (uc *JobUseCase) Update(ctx context.Context, user *entity.User, id string, in JobInput) (*entity.Job, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := validateJobInput(in); err != nil {
		return nil, err
	}
	job, err := uc.jobs.Update(ctx, id, user.CompanyID, entity.JobPatch{Title: in.Title, Description: in.Description})
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	uc.publish(ctx, events.JobUpdated, job, user)
	return job, nil
}

// Delete elimina un empleo propio y lo devuelve tal como estaba.
func (uc *JobUseCase) Delete(ctx context.Context, user *entity.User, id string) (*entity.Job, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	job, err := uc.jobs.Delete(ctx, id, user.CompanyID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	uc.publish(ctx, events.JobDeleted, job, user)
	return job, nil
}

func validateJobInput(in JobInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// publish no propaga errores: la mutación ya está confirmada.
func (uc *JobUseCase) publish(ctx context.Context, typ string, job *entity.Job, user *entity.User) {
	ev := events.JobEvent{Type: typ, Job: *job, ActorID: user.ID, OccurredAt: uc.now().UTC()}
	if err := uc.publisher.PublishJobEvent(ctx, ev); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("event", typ).Str("job_id", job.ID).Msg("no se pudo publicar evento de empleo")
	}
}
