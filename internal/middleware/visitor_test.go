package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-counsel/internal/config"
	"career-counsel/internal/middleware"
	"career-counsel/internal/visitor"
)

var visitorCfg = config.VisitorConfig{
	Secret:     "test-secret",
	TTL:        time.Hour,
	CookieName: "cc_visitor",
}

func newVisitorApp(issuer *visitor.Issuer) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.Visitor(issuer, visitorCfg))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(middleware.VisitorID(c))
	})
	return app
}

func visitorCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == visitorCfg.CookieName {
			return c
		}
	}
	return nil
}

func TestVisitor(t *testing.T) {
	issuer := visitor.NewIssuer(visitorCfg.Secret, visitorCfg.TTL)
	app := newVisitorApp(issuer)

	t.Run("mints a visitor without a cookie", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		cookie := visitorCookie(resp)
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)

		id, err := issuer.Parse(cookie.Value)
		require.NoError(t, err)
		assert.Equal(t, id, string(body))
	})

	t.Run("keeps the visitor of a valid cookie", func(t *testing.T) {
		id, token, err := issuer.Issue()
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: visitorCfg.CookieName, Value: token})
		resp, err := app.Test(req)
		require.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, id, string(body))
		assert.Nil(t, visitorCookie(resp))
	})

	t.Run("replaces a cookie signed with another secret", func(t *testing.T) {
		_, forged, err := visitor.NewIssuer("other-secret", time.Hour).Issue()
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: visitorCfg.CookieName, Value: forged})
		resp, err := app.Test(req)
		require.NoError(t, err)

		cookie := visitorCookie(resp)
		require.NotNil(t, cookie)
		assert.NotEqual(t, forged, cookie.Value)
		body, _ := io.ReadAll(resp.Body)
		assert.NotEmpty(t, body)
	})
}
