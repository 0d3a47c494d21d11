// seed aplica las migraciones y carga el dataset de demostración en PostgreSQL.
// Los passwords se guardan como hash bcrypt. Las filas ya existentes no se modifican.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/jobboard-api/internal/infrastructure/postgres"
	"github.com/jhoicas/jobboard-api/internal/infrastructure/seed"
	"github.com/jhoicas/jobboard-api/pkg/config"
	"github.com/jhoicas/jobboard-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	demo := seed.Demo()
	users := demo.Users
	for i := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(users[i].Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Str("email", users[i].Email).Msg("hashear password")
		}
		users[i].Password = string(hash)
	}

	n, err := postgres.Seed(ctx, postgres.NewTxRunner(pool), postgres.SeedData{
		Companies: demo.Companies,
		Users:     users,
		Jobs:      demo.Jobs,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cargar dataset")
	}
	log.Info().Int64("filas", n).Msg("dataset de demostración cargado")
}
