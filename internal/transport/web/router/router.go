package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/command"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/transport/web/controller"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Commands groups the commands the HTTP API exposes.
type Commands struct {
	RecommendProducts     command.Command[command.RecommendProductsRequest, []domain.Product]
	UpdateRecommendations command.Command[command.UpdateRecommendationsRequest, command.UpdateRecommendationsResult]
	RecordBehavior        command.Command[command.RecordBehaviorRequest, domain.BehaviorEvent]
	ListTrendingProducts  command.Command[command.ListTrendingProductsRequest, []domain.Product]
}

func MakeRouter(
	commands Commands,
	storefrontBaseURL string,
	rssCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	corsMiddleware, err := newCORSMiddleware(storefrontBaseURL)
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/recommendations", controller.RecommendedProductsList{
		Command: commands.RecommendProducts,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/recommendations/update", requireAdminMiddleware(controller.RecommendationsUpdate{
		Command: commands.UpdateRecommendations,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/products/{product_id}/behaviors/{behavior_type}", controller.BehaviorRecord{
		Command: commands.RecordBehavior,
	}).Methods(http.MethodPost, http.MethodOptions)

	rssFeeds := []controller.TrendingRSS{
		{
			StorefrontBaseURL: storefrontBaseURL,
			FeedPath:          "/rss/trending",
			Command:           commands.ListTrendingProducts,
			CacheMaxAge:       rssCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed).Methods(http.MethodGet)
	}

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r, nil
}
