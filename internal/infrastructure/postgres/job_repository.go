package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
	"github.com/jhoicas/jobboard-api/pkg/ids"
)

var _ repository.JobRepository = (*JobRepo)(nil)

// createAttempts reintentos de INSERT ante colisión de id.
const createAttempts = 3

// JobRepo implementación del puerto JobRepository sobre PostgreSQL.
type JobRepo struct {
	q Querier
	// now reloj inyectable en tests.
	now func() time.Time
}

// NewJobRepository construye el adaptador. Acepta pool o tx (Querier).
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q, now: time.Now}
}

const jobColumns = `id, company_id, title, description, created_at`

func scanJob(row pgx.Row) (*entity.Job, error) {
	var j entity.Job
	if err := row.Scan(&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.CreatedAt); err != nil {
		return nil, err
	}
	return &j, nil
}

// GetByID obtiene un empleo por ID.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	j, err := scanJob(r.q.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return j, nil
}

// List lista empleos, más recientes primero. Limit/Offset se agregan solo si son positivos.
func (r *JobRepo) List(ctx context.Context, filter repository.JobFilter) ([]*entity.Job, error) {
	where, args := jobWhere(filter)
	var sb strings.Builder
	sb.WriteString(`SELECT ` + jobColumns + ` FROM jobs` + where + ` ORDER BY created_at DESC, id DESC`)
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		list = append(list, j)
	}
	return list, rows.Err()
}

// Count cuenta empleos que cumplen el filtro (sin paginación).
func (r *JobRepo) Count(ctx context.Context, filter repository.JobFilter) (int, error) {
	where, args := jobWhere(filter)
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return int(n), nil
}

func jobWhere(filter repository.JobFilter) (string, []any) {
	if filter.CompanyID == "" {
		return "", nil
	}
	return " WHERE company_id = $1", []any{filter.CompanyID}
}

// Create inserta un empleo con id nuevo y fecha de creación actual (UTC).
func (r *JobRepo) Create(ctx context.Context, in entity.NewJob) (*entity.Job, error) {
	query := `
		INSERT INTO jobs (id, company_id, title, description, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	for attempt := 1; ; attempt++ {
		id, err := ids.New()
		if err != nil {
			return nil, fmt.Errorf("generate job id: %w", err)
		}
		job := &entity.Job{
			ID:          id,
			CompanyID:   in.CompanyID,
			Title:       in.Title,
			Description: in.Description,
			CreatedAt:   r.now().UTC().Truncate(time.Microsecond),
		}
		_, err = r.q.Exec(ctx, query, job.ID, job.CompanyID, job.Title, job.Description, job.CreatedAt)
		if err == nil {
			return job, nil
		}
		if !isUniqueViolation(err) || attempt == createAttempts {
			return nil, fmt.Errorf("insert job: %w", err)
		}
	}
}

// Update modifica título y descripción solo si el empleo pertenece a companyID.
// Con patch.Description nil la descripción guardada no cambia.
func (r *JobRepo) Update(ctx context.Context, id, companyID string, patch entity.JobPatch) (*entity.Job, error) {
	query := `
		UPDATE jobs SET title = $3, description = COALESCE($4::text, description)
		WHERE id = $1 AND company_id = $2
		RETURNING ` + jobColumns
	j, err := scanJob(r.q.QueryRow(ctx, query, id, companyID, patch.Title, patch.Description))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return j, nil
}

// Delete elimina el empleo solo si pertenece a companyID y devuelve la fila borrada.
func (r *JobRepo) Delete(ctx context.Context, id, companyID string) (*entity.Job, error) {
	query := `
		DELETE FROM jobs WHERE id = $1 AND company_id = $2
		RETURNING ` + jobColumns
	j, err := scanJob(r.q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete job: %w", err)
	}
	return j, nil
}
