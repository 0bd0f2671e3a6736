package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/stayease/booking-api/internal/api/metrics"
	"github.com/stayease/booking-api/internal/core/service"
)

const bearerPrefix = "Bearer "

// Auth validates the bearer token and injects the subject email and role
// claim into the request context. All failures map to 401; distinguishing a
// forged token from an expired one would only help an attacker.
func Auth(tokens *service.TokenProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			if !strings.HasPrefix(authHeader, bearerPrefix) {
				metrics.AuthFailuresTotal.WithLabelValues("bad_scheme").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			token := strings.TrimPrefix(authHeader, bearerPrefix)
			if !tokens.Validate(token) {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set("email", tokens.Subject(token))
			c.Set("role", tokens.RoleClaim(token))

			return next(c)
		}
	}
}
