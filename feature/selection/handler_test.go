package selection

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"sports-catalog/core/server"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	svc := NewService(newTestStore(t), defaultLeagues, 10, zap.NewNop())
	feature := NewFeature(svc, server.Config{SessionHeader: "X-Session-ID"})

	assert.Equal(t, "selection", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func decode(t *testing.T, body io.Reader, out any) {
	t.Helper()
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

func TestHandler_PutThenGet(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("PUT", "/selection", strings.NewReader(`{"leagues":["Serie A","Ligue 1"]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "alice")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/selection", nil)
	req.Header.Set("X-Session-ID", "alice")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var sel Selection
	decode(t, resp.Body, &sel)
	assert.Equal(t, "alice", sel.Owner)
	assert.True(t, sel.Saved)
	assert.Equal(t, []string{"Serie A", "Ligue 1"}, sel.Leagues)

	// Another session still sees the defaults.
	resp, err = app.Test(httptest.NewRequest("GET", "/selection", nil))
	require.NoError(t, err)
	decode(t, resp.Body, &sel)
	assert.Equal(t, server.DefaultOwner, sel.Owner)
	assert.False(t, sel.Saved)
}

func TestHandler_PutInvalid(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed", body: `{"leagues":`},
		{name: "empty list", body: `{"leagues":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("PUT", "/selection", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}
