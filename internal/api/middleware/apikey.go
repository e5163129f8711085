package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	apiKeyHeader = "X-API-Key"
	apiKeyQuery  = "api_key"
)

// APIKey returns Echo middleware enforcing a pre-shared key supplied
// via the X-API-Key header or api_key query parameter.
//
// An empty expected key disables the check entirely. That is the
// documented dev-mode behavior, not an oversight: webhook sources like
// tunnel testing have no way to set headers.
func APIKey(expected string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if expected == "" {
				return next(c)
			}

			provided := c.Request().Header.Get(apiKeyHeader)
			if provided == "" {
				provided = c.QueryParam(apiKeyQuery)
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"ok":    false,
					"error": "unauthorized",
				})
			}
			return next(c)
		}
	}
}
