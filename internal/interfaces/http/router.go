package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/jobboard-api/internal/application/auth"
	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/application/health"
	"github.com/jhoicas/jobboard-api/internal/interfaces/graph"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	GraphQL        *graph.Executor
	Health         *health.Service
	LoginRateRPS   float64
	LoginRateBurst int
}

// NewApp crea la app Fiber con los middlewares globales: recover, request id, CORS abierto y log de requests.
func NewApp(name string, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New())
	app.Use(RequestLogger(log))
	return app
}

// errorHandler responde los errores no manejados con dto.ErrorResponse.
func errorHandler(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	healthHandler := NewHealthHandler(deps.Health)
	app.Get("/health", healthHandler.Health)
	app.Get("/ready", healthHandler.Ready)

	// Login (público, limitado por IP)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/login", RateLimit(deps.LoginRateRPS, deps.LoginRateBurst), authHandler.Login)

	// GraphQL: autenticación opcional; cada mutación exige usuario.
	gqlHandler := NewGraphQLHandler(deps.GraphQL)
	app.Post("/graphql", AuthMiddleware(deps.AuthUC), LoadUser(deps.AuthUC), gqlHandler.Handle)
}
