package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
)

// SeedData filas a insertar con Seed.
type SeedData struct {
	Companies []entity.Company
	Users     []entity.User
	Jobs      []entity.Job
}

// Seed inserta los datos en una transacción. Las filas existentes (mismo id) se dejan intactas.
// Devuelve cuántas filas se insertaron.
func Seed(ctx context.Context, runner *TxRunner, data SeedData) (int64, error) {
	var inserted int64
	err := runner.Run(ctx, func(q Querier) error {
		for _, c := range data.Companies {
			tag, err := q.Exec(ctx, `
				INSERT INTO companies (id, name, description) VALUES ($1, $2, NULLIF($3, ''))
				ON CONFLICT (id) DO NOTHING`, c.ID, c.Name, c.Description)
			if err != nil {
				return fmt.Errorf("seed company %s: %w", c.ID, err)
			}
			inserted += tag.RowsAffected()
		}
		for _, u := range data.Users {
			tag, err := q.Exec(ctx, `
				INSERT INTO users (id, company_id, email, password) VALUES ($1, $2, $3, $4)
				ON CONFLICT (id) DO NOTHING`, u.ID, u.CompanyID, u.Email, u.Password)
			if err != nil {
				return fmt.Errorf("seed user %s: %w", u.Email, err)
			}
			inserted += tag.RowsAffected()
		}
		for _, j := range data.Jobs {
			tag, err := q.Exec(ctx, `
				INSERT INTO jobs (id, company_id, title, description, created_at) VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (id) DO NOTHING`, j.ID, j.CompanyID, j.Title, j.Description, j.CreatedAt)
			if err != nil {
				return fmt.Errorf("seed job %s: %w", j.ID, err)
			}
			inserted += tag.RowsAffected()
		}
		return nil
	})
	return inserted, err
}
