package router

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

const (
	auth0AuthHeaderPrefix = "Bearer auth0|"

	updateRecommendationsPermission = "update:recommendations"
)

// Auth0Claims are the custom claims read from Auth0 access tokens.
type Auth0Claims struct {
	Permissions []string `json:"permissions"`
}

func (c *Auth0Claims) Validate(context.Context) error {
	return nil
}

func (c *Auth0Claims) canUpdateRecommendations() bool {
	return slices.Contains(c.Permissions, updateRecommendationsPermission)
}

// NewAuth0Validator creates a validator for Auth0 JWT tokens. Shoppers are identified by the
// token subject; staff holding the update:recommendations permission are also admins.
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &Auth0Claims{}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, auth0AuthHeaderPrefix) {
			return nil, nil
		}

		token, err := jwtValidator.ValidateToken(r.Context(), authHeader[len(auth0AuthHeaderPrefix):])
		if err != nil {
			return nil, fmt.Errorf("invalid JWT token")
		}

		claims := token.(*validator.ValidatedClaims)
		result := &AuthResult{
			UserID: claims.RegisteredClaims.Subject,
			Method: domain.AuthMethodAuth0,
		}
		if custom, ok := claims.CustomClaims.(*Auth0Claims); ok {
			result.Admin = custom.canUpdateRecommendations()
		}

		return result, nil
	}, nil
}
