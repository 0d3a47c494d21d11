package repository

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
)

// JobFilter filtro de listados. Limit/Offset en cero = sin límite / sin desplazamiento.
type JobFilter struct {
	CompanyID string
	Limit     int
	Offset    int
}

// JobRepository define el puerto de persistencia para Job (DIP).
// Los listados se ordenan por created_at descendente (desempate por id).
type JobRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Job, error)
	List(ctx context.Context, filter JobFilter) ([]*entity.Job, error)
	// Count ignora Limit/Offset.
	Count(ctx context.Context, filter JobFilter) (int, error)
	// Create asigna ID y CreatedAt y devuelve el empleo persistido.
	Create(ctx context.Context, in entity.NewJob) (*entity.Job, error)
	// Update y Delete solo afectan la fila si coincide (id, companyID);
	// si no, devuelven (nil, nil). Delete devuelve la fila previa al borrado.
	Update(ctx context.Context, id, companyID string, patch entity.JobPatch) (*entity.Job, error)
	Delete(ctx context.Context, id, companyID string) (*entity.Job, error)
}
