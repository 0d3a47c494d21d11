package repository

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// ListByIDs devuelve las empresas encontradas, sin orden garantizado.
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Company, error)
}
