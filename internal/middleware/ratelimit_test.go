package middleware

import (
	"net/http/httptest"
	"testing"

	"movie-catalog/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubmitApp(perMinute, burst int) *fiber.App {
	app := fiber.New(fiber.Config{ProxyHeader: fiber.HeaderXForwardedFor})
	app.Post("/submit", NewSubmitLimiter(perMinute, burst, testutil.NewLogger()), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func submit(t *testing.T, app *fiber.App, ip string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/submit", nil)
	req.Header.Set(fiber.HeaderXForwardedFor, ip)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestSubmitLimiterPerIP(t *testing.T) {
	app := newSubmitApp(10, 2)

	assert.Equal(t, fiber.StatusNoContent, submit(t, app, "10.0.0.1"))
	assert.Equal(t, fiber.StatusNoContent, submit(t, app, "10.0.0.1"))
	assert.Equal(t, fiber.StatusTooManyRequests, submit(t, app, "10.0.0.1"))
	assert.Equal(t, fiber.StatusNoContent, submit(t, app, "10.0.0.2"))
}

func TestSubmitLimiterDisabled(t *testing.T) {
	app := newSubmitApp(0, 0)
	for i := 0; i < 50; i++ {
		require.Equal(t, fiber.StatusNoContent, submit(t, app, "10.0.0.1"))
	}
}
