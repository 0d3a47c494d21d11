// Package loader agrupa en una sola consulta las búsquedas de empresas hechas durante un request.
package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

// DefaultWait ventana durante la que se acumulan claves antes de consultar.
const DefaultWait = 16 * time.Millisecond

// CompanyLoader carga empresas por id con deduplicación y caché.
// Se crea uno por request; nunca se comparte entre requests.
type CompanyLoader struct {
	dl *dataloader.Loader[string, *entity.Company]
}

// NewCompanyLoader construye un loader nuevo sobre repo. wait <= 0 usa DefaultWait.
func NewCompanyLoader(repo repository.CompanyRepository, wait time.Duration) *CompanyLoader {
	if wait <= 0 {
		wait = DefaultWait
	}
	batch := func(ctx context.Context, keys []string) []*dataloader.Result[*entity.Company] {
		return fetchCompanies(ctx, repo, keys)
	}
	return &CompanyLoader{
		dl: dataloader.NewBatchedLoader(batch, dataloader.WithWait[string, *entity.Company](wait)),
	}
}

// Load devuelve la empresa de id; (nil, nil) si no existe.
func (l *CompanyLoader) Load(ctx context.Context, id string) (*entity.Company, error) {
	return l.dl.Load(ctx, id)()
}

// LoadThunk encola id en el lote actual sin bloquear; el resultado se obtiene al llamar la función.
func (l *CompanyLoader) LoadThunk(ctx context.Context, id string) func() (*entity.Company, error) {
	return l.dl.Load(ctx, id)
}

// Prime guarda c en la caché del loader; no pisa una entrada existente.
func (l *CompanyLoader) Prime(ctx context.Context, c *entity.Company) {
	l.dl.Prime(ctx, c.ID, c)
}

// fetchCompanies consulta todas las claves de un lote y realinea el resultado por clave.
func fetchCompanies(ctx context.Context, repo repository.CompanyRepository, keys []string) []*dataloader.Result[*entity.Company] {
	results := make([]*dataloader.Result[*entity.Company], len(keys))
	list, err := repo.ListByIDs(ctx, keys)
	if err != nil {
		err = fmt.Errorf("load companies: %w", err)
		for i := range results {
			results[i] = &dataloader.Result[*entity.Company]{Error: err}
		}
		return results
	}
	byID := make(map[string]*entity.Company, len(list))
	for _, c := range list {
		byID[c.ID] = c
	}
	for i, k := range keys {
		results[i] = &dataloader.Result[*entity.Company]{Data: byID[k]}
	}
	return results
}
