package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/fairlens/fairlens/pkg/platform"
)

// jwtCookieName is the platform session cookie the dashboard forwards
// with every request; it is passed through to the platform unchanged.
const jwtCookieName = "jwt"

// CredentialService extracts platform credentials from a request. The
// server never holds platform credentials of its own.
type CredentialService interface {
	Credentials(c *echo.Context) (platform.Credentials, error)
}

// cookieCredentials reads the session cookie and pairs it with the
// configured platform base URL.
type cookieCredentials struct {
	baseURL string
}

func (s cookieCredentials) Credentials(c *echo.Context) (platform.Credentials, error) {
	if s.baseURL == "" {
		return platform.Credentials{}, echo.NewHTTPError(http.StatusServiceUnavailable, "platform base URL not configured")
	}
	cookie, err := c.Request().Cookie(jwtCookieName)
	if err != nil || cookie.Value == "" {
		return platform.Credentials{}, echo.NewHTTPError(http.StatusUnauthorized, "missing platform session cookie")
	}
	return platform.Credentials{
		BaseURL:  s.baseURL,
		JWTToken: cookie.Value,
	}, nil
}
