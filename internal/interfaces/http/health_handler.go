package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
)

// readiness lo implementa *health.Service.
type readiness interface {
	Ready(ctx context.Context) error
}

// HealthHandler probes de liveness y readiness.
type HealthHandler struct {
	svc readiness
}

// NewHealthHandler construye el handler.
func NewHealthHandler(svc readiness) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Health godoc
// @Summary  Liveness
// @Tags     health
// @Produce  json
// @Success  200  {object}  dto.StatusResponse
// @Router   /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.StatusResponse{Status: "ok"})
}

// Ready godoc
// @Summary  Readiness (ping a dependencias)
// @Tags     health
// @Produce  json
// @Success  200  {object}  dto.StatusResponse
// @Failure  503  {object}  dto.StatusResponse
// @Router   /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.StatusResponse{Status: "not_ready", Details: err.Error()})
	}
	return c.JSON(dto.StatusResponse{Status: "ready"})
}
