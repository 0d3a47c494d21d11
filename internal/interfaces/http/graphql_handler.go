package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/interfaces/graph"
)

// GraphQLHandler transporte HTTP de la API GraphQL.
type GraphQLHandler struct {
	exec *graph.Executor
}

// NewGraphQLHandler construye el handler.
func NewGraphQLHandler(exec *graph.Executor) *GraphQLHandler {
	return &GraphQLHandler{exec: exec}
}

// Handle godoc
// @Summary      Ejecutar operación GraphQL
// @Description  Queries company, job, jobs; mutations createJob, updateJob, deleteJob (requieren Bearer).
// @Tags         graphql
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GraphQLRequest  true  "query, operationName, variables"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /graphql [post]
func (h *GraphQLHandler) Handle(c *fiber.Ctx) error {
	var in dto.GraphQLRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query es requerido"})
	}
	resp := h.exec.Exec(c.UserContext(), GetUser(c), in)
	return c.JSON(resp)
}
