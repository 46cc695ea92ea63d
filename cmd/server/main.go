package main

import (
	"context"
	"os"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := context.Background()

	dataDir := os.Getenv("RESUME_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	// the snapshot lives in Postgres when a DSN is configured, in a
	// local JSON file otherwise
	var snapshots usecase.SnapshotStore
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pool, err := infra.NewSnapshotPool(ctx, dsn)
		if err != nil {
			log.Fatal().Err(err).Msg("connecting snapshot database")
		}
		if err := migration.RunMigrations(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("running migrations")
		}
		snapshots = repo.NewSnapshotRepo(pool)
	} else {
		snapshots = repo.NewFileStore(dataDir + "/resume.json")
	}

	store := usecase.NewStore(ctx, snapshots, log)

	renderer := infra.NewChromedpRenderer()
	notifier := infra.NewLogNotifier(log)
	exporter := usecase.NewExporter(renderer, notifier, dataDir, log)

	app := fiber.New()

	h := httpadapter.NewHandler(store, exporter, log)
	h.Register(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Info().Str("port", port).Msg("listening")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
