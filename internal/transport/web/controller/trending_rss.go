package controller

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/command"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

const trendingFeedSize = 20

// TrendingRSS serves the storefront's currently trending products as an RSS feed.
type TrendingRSS struct {
	StorefrontBaseURL string
	FeedPath          string
	Command           command.Command[command.ListTrendingProductsRequest, []domain.Product]
	CacheMaxAge       time.Duration
	Now               func() time.Time
}

func (c TrendingRSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	baseURL := strings.TrimSuffix(c.StorefrontBaseURL, "/")
	feed := &feeds.Feed{
		Title:       "Trending jewellery",
		Link:        &feeds.Link{Href: baseURL + c.FeedPath},
		Description: "Products shoppers are engaging with the most this week",
		Created:     now(),
	}

	products, err := c.Command.Execute(ctx, command.ListTrendingProductsRequest{Limit: trendingFeedSize})
	if err != nil {
		logger.ErrorContext(ctx, "unable to list trending products for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, p := range products {
		item := &feeds.Item{
			Id:          p.ID,
			IsPermaLink: "false",
			Title:       p.Name,
			Link:        &feeds.Link{Href: baseURL + "/products/" + p.Slug},
			Description: fmt.Sprintf("%s, %s, %.0f VND", p.Category, p.Material, p.Price),
			Created:     p.CreatedAt,
		}
		if len(p.Images) > 0 {
			item.Enclosure = &feeds.Enclosure{Url: p.Images[0], Type: "image/jpeg", Length: "0"}
		}
		feed.Items = append(feed.Items, item)
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
