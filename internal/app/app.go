package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/command"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/datasources"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/datasources/memory"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/datasources/mysql"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/transport/web/router"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	dataset, err := SetupDatasetRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up dataset repository: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	commands, err := SetupCommands(dataset)
	if err != nil {
		return nil, fmt.Errorf("setting up commands: %w", err)
	}

	httpRouter, err := router.MakeRouter(
		commands,
		MustGetEnvAsString(ctx, "STOREFRONT_BASE_URL"),
		MustGetEnvAsDuration(ctx, "RSS_FEED_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

// SetupDatasetRepository connects to the datastore selected by DATASTORE_DRIVER.
func SetupDatasetRepository(ctx context.Context) (datasources.DatasetRepository, error) {
	switch driver := GetEnvAsStringOrDefault("DATASTORE_DRIVER", "mysql"); driver {
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		return mysql.New(db), nil
	case "memory":
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "using in-memory datastore, behavior and similarity data will not persist")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown datastore driver [%s]", driver)
	}
}

// SetupCommands builds every command the service exposes on top of one dataset.
func SetupCommands(dataset datasources.DatasetRepository) (router.Commands, error) {
	weights := domain.DefaultBehaviorWeights()

	trending := command.NewTrendingScorer(dataset, weights, DefaultTrendingScorerConfig())

	recommendProductsCmd, err := command.NewRecommendProducts(
		[]command.Strategy{
			command.NewUserCollaborativeFilter(dataset, weights, DefaultUserCollaborativeFilterConfig()),
			command.NewItemCollaborativeFilter(dataset, DefaultItemCollaborativeFilterConfig()),
			command.NewContentFilter(dataset, dataset, DefaultContentFilterConfig()),
			trending,
			command.NewFeaturedBoost(dataset, DefaultFeaturedBoostConfig()),
		},
		dataset,
		dataset,
		DefaultRecommendProductsConfig(),
	)
	if err != nil {
		return router.Commands{}, fmt.Errorf("creating recommendation engine: %w", err)
	}

	return router.Commands{
		RecommendProducts:     recommendProductsCmd,
		UpdateRecommendations: NewUpdateRecommendations(dataset),
		RecordBehavior:        command.NewRecordBehavior(dataset, dataset),
		ListTrendingProducts:  command.NewListTrendingProducts(trending, dataset),
	}, nil
}

// NewUpdateRecommendations builds the offline recomputation command with the default tuning.
func NewUpdateRecommendations(dataset datasources.DatasetRepository) *command.UpdateRecommendations {
	return command.NewUpdateRecommendations(
		dataset,
		dataset,
		dataset,
		domain.DefaultBehaviorWeights(),
		DefaultUpdateRecommendationsConfig(),
	)
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "admin_token":
			v, err := router.NewAdminTokenValidator(MustGetEnvAsString(ctx, "ADMIN_API_TOKEN_HASH"))
			if err != nil {
				return nil, fmt.Errorf("creating admin token validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
