package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairlens/fairlens/pkg/platform"
)

func TestCookieCredentials(t *testing.T) {
	creds := cookieCredentials{baseURL: "https://platform.example.edu"}

	e := echo.New()
	e.GET("/probe", func(c *echo.Context) error {
		got, err := creds.Credentials(c)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, got)
	})

	t.Run("extracts jwt cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: "token-123"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got platform.Credentials
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "token-123", got.JWTToken)
		assert.Equal(t, "https://platform.example.edu", got.BaseURL)
	})

	t.Run("missing cookie is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unconfigured base URL is unavailable", func(t *testing.T) {
		empty := cookieCredentials{}
		e2 := echo.New()
		e2.GET("/probe", func(c *echo.Context) error {
			_, err := empty.Credentials(c)
			return err
		})
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: "token-123"})
		rec := httptest.NewRecorder()
		e2.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
