// Command update-recommendations recomputes the product similarity table once and exits.
// It is intended to be run on a schedule.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/app"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/command"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	result, err := run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "similarity recomputation failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "similarity recomputation completed successfully",
		"run_id", result.RunID,
		"collaborative_edges", result.CollaborativeEdges,
		"content_edges", result.ContentEdges)
}

func run(ctx context.Context) (command.UpdateRecommendationsResult, error) {
	if driver := app.GetEnvAsStringOrDefault("DATASTORE_DRIVER", "mysql"); driver != "mysql" {
		return command.UpdateRecommendationsResult{},
			fmt.Errorf("datastore driver [%s] does not persist edges between processes", driver)
	}

	dataset, err := app.SetupDatasetRepository(ctx)
	if err != nil {
		return command.UpdateRecommendationsResult{}, fmt.Errorf("setting up dataset repository: %w", err)
	}

	return app.NewUpdateRecommendations(dataset).Execute(ctx, command.UpdateRecommendationsRequest{})
}
