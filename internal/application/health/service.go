package health

import (
	"context"
	"fmt"
)

// Checker verificación de una dependencia externa.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Service agrega checkers para el probe de readiness.
type Service struct {
	checkers []Checker
}

// NewService construye el servicio. Sin checkers siempre está listo (modo memoria).
func NewService(checkers ...Checker) *Service {
	return &Service{checkers: checkers}
}

// Ready devuelve el primer error encontrado, prefijado con el nombre del checker.
func (s *Service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return fmt.Errorf("%s: %w", ch.Name(), err)
		}
	}
	return nil
}
