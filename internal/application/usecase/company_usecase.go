package usecase

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

// CompanyUseCase consultas sobre empresas (solo lectura).
type CompanyUseCase struct {
	companies repository.CompanyRepository
	jobs      repository.JobRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(companies repository.CompanyRepository, jobs repository.JobRepository) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, jobs: jobs}
}

// GetByID obtiene una empresa por ID. domain.ErrNotFound si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

// Jobs lista todos los empleos de la empresa, más recientes primero.
func (uc *CompanyUseCase) Jobs(ctx context.Context, companyID string) ([]*entity.Job, error) {
	return uc.jobs.List(ctx, repository.JobFilter{CompanyID: companyID})
}
