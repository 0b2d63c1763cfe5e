// Siembra bodegas de ejemplo para entornos de desarrollo.
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repo := postgres.NewWarehouseRepository(pool)
	now := time.Now()
	seeds := []*entity.Warehouse{
		{ID: uuid.New().String(), Name: "Bodega Central", Address: "Calle 10 #5-51, Bogotá", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Bodega Norte", Address: "Av. Boyacá #170-22, Bogotá", CreatedAt: now, UpdatedAt: now},
	}
	for _, wh := range seeds {
		if err := repo.Create(ctx, wh); err != nil {
			log.Fatal().Err(err).Str("warehouse", wh.Name).Msg("sembrar bodega")
		}
		log.Info().Str("id", wh.ID).Str("name", wh.Name).Msg("bodega creada")
	}
}
