package router

import (
	"fmt"
	"net/http"
	"net/url"
)

// newCORSMiddleware allows browser calls from the storefront's own origin only.
func newCORSMiddleware(storefrontBaseURL string) (func(http.Handler) http.Handler, error) {
	u, err := url.Parse(storefrontBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing storefront base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("storefront base URL [%s] must be absolute", storefrontBaseURL)
	}
	origin := u.Scheme + "://" + u.Host

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Add("Vary", "Origin")
			if r.Method == http.MethodOptions {
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}
