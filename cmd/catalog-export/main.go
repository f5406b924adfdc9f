// Command catalog-export writes the built-in catalogue as a YAML document
// and can import it into PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"freshvegies/internal/catalog"
	"freshvegies/internal/config"
	"freshvegies/internal/database"
	"freshvegies/internal/model"
	"freshvegies/internal/repository"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	in := flag.String("in", "", "catalogue file to read instead of the built-in seed (.yaml or .yaml.gz)")
	out := flag.String("out", "", "write the catalogue to this file (.gz for gzip); stdout when empty and -db is not set")
	toDB := flag.Bool("db", false, "import the catalogue into PostgreSQL using the DB_* environment")
	flag.Parse()

	logger := config.NewLogger(config.LoggerConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "console"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var source catalog.Source = catalog.SeedSource{}
	if *in != "" {
		source = catalog.NewFileSource(*in, logger)
	}

	shops, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}
	if err := catalog.Validate(shops); err != nil {
		return fmt.Errorf("invalid catalogue: %w", err)
	}

	switch {
	case *out != "":
		if err := catalog.WriteFile(*out, shops); err != nil {
			return err
		}
		logger.Info().Str("path", *out).Int("shops", len(shops)).Msg("catalogue written")
	case !*toDB:
		if err := catalog.Encode(os.Stdout, shops); err != nil {
			return err
		}
	}

	if *toDB {
		if err := importShops(ctx, shops, logger); err != nil {
			return err
		}
	}

	return nil
}

func importShops(ctx context.Context, shops []model.Shop, logger zerolog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.Database.AutoMigrate = true

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := repository.NewShopRepository(pool, logger).Import(ctx, shops); err != nil {
		return fmt.Errorf("failed to import catalogue: %w", err)
	}

	logger.Info().Str("database", cfg.Database.Database).Int("shops", len(shops)).Msg("catalogue imported")
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
