package httpgate

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// BearerAuthConfig configures the bearer-token guard.
type BearerAuthConfig struct {
	// Key is the HMAC key JWTs must be signed with.
	Key []byte

	// Issuer, when set, is the required iss claim.
	Issuer string

	// Audience, when set, is the required aud claim.
	Audience string
}

// BearerAuth guards a handler with JWT bearer-token validation. Detailed
// health bodies can leak topology, so deployments exposing them beyond the
// orchestrator typically put this in front of the gate:
//
//	http.Handle("/health", httpgate.BearerAuth(cfg)(gate))
func BearerAuth(config BearerAuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := extractBearer(r)
			if err != nil {
				unauthorized(w, err)
				return
			}
			if err := validateToken(token, config); err != nil {
				unauthorized(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractBearer pulls the token out of the Authorization header.
func extractBearer(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fmt.Errorf("missing Authorization header")
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", fmt.Errorf("Authorization header is not a bearer token")
	}
	return strings.TrimPrefix(header, prefix), nil
}

// validateToken verifies the token's signature and claims.
func validateToken(token string, config BearerAuthConfig) error {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
	}
	if config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(config.Issuer))
	}
	if config.Audience != "" {
		opts = append(opts, jwt.WithAudience(config.Audience))
	}

	_, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return config.Key, nil
	}, opts...)
	if err != nil {
		return fmt.Errorf("invalid token: %w", err)
	}
	return nil
}

func unauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="health"`)
	http.Error(w, err.Error(), http.StatusUnauthorized)
}
