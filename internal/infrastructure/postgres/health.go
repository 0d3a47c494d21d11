package postgres

import (
	"context"
	"fmt"
	"time"
)

// Pinger lo cumple *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker comprueba la conectividad con la base de datos.
type HealthChecker struct {
	db Pinger
}

// NewHealthChecker construye el checker sobre el pool.
func NewHealthChecker(db Pinger) *HealthChecker {
	return &HealthChecker{db: db}
}

// Name identifica el componente en /ready.
func (h *HealthChecker) Name() string { return "postgres" }

// Check hace ping a la base.
func (h *HealthChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}
