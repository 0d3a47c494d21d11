package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/jobboard-api/internal/application/auth"
	"github.com/jhoicas/jobboard-api/internal/application/events"
	"github.com/jhoicas/jobboard-api/internal/application/health"
	"github.com/jhoicas/jobboard-api/internal/application/usecase"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
	"github.com/jhoicas/jobboard-api/internal/infrastructure/memory"
	"github.com/jhoicas/jobboard-api/internal/infrastructure/postgres"
	"github.com/jhoicas/jobboard-api/internal/infrastructure/rabbitmq"
	"github.com/jhoicas/jobboard-api/internal/infrastructure/seed"
	"github.com/jhoicas/jobboard-api/internal/interfaces/graph"
	httpRouter "github.com/jhoicas/jobboard-api/internal/interfaces/http"
	"github.com/jhoicas/jobboard-api/pkg/config"
	"github.com/jhoicas/jobboard-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		companyRepo repository.CompanyRepository
		userRepo    repository.UserRepository
		jobRepo     repository.JobRepository
		checkers    []health.Checker
	)
	switch cfg.App.Storage {
	case config.StorageMemory:
		store := memory.NewStore()
		seed.Demo().LoadInto(store)
		companyRepo, userRepo, jobRepo = store.Companies(), store.Users(), store.Jobs()
		log.Warn().Msg("almacenamiento en memoria: los cambios se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB, log.Zerolog())
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
		}
		companyRepo = postgres.NewCompanyRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
		jobRepo = postgres.NewJobRepository(pool)
		checkers = append(checkers, postgres.NewHealthChecker(pool))
	}

	var publisher events.JobEventPublisher = events.NoopPublisher{}
	if cfg.Events.Enabled() {
		p, err := rabbitmq.Dial(cfg.Events.AMQPURL, cfg.Events.Exchange, log.Zerolog())
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		defer p.Close()
		publisher = p
		checkers = append(checkers, p)
	}

	authUC := auth.NewAuthUseCase(userRepo, cfg.JWT.Secret)
	jobUC := usecase.NewJobUseCase(jobRepo, publisher)
	companyUC := usecase.NewCompanyUseCase(companyRepo, jobRepo)

	executor, err := graph.NewExecutor(graph.NewResolver(jobUC, companyUC), companyRepo, graph.Options{
		MaxParallelism: cfg.GraphQL.MaxParallelism,
		LoaderWait:     cfg.GraphQL.LoaderWait,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("schema GraphQL")
	}

	app := httpRouter.NewApp(cfg.App.Name, log.Zerolog())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Job Board API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		GraphQL:        executor,
		Health:         health.NewService(checkers...),
		LoginRateRPS:   cfg.HTTP.LoginRateRPS,
		LoginRateBurst: cfg.HTTP.LoginRateBurst,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
