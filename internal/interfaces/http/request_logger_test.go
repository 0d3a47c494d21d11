package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/jobboard-api/internal/interfaces/http"
)

func TestRequestLogger_RequestIDEnLogYContexto(t *testing.T) {
	var buf bytes.Buffer
	app := apphttp.NewApp("test", zerolog.New(&buf))
	app.Get("/x", func(c *fiber.Ctx) error {
		zerolog.Ctx(c.UserContext()).Info().Msg("dentro del handler")
		return c.SendStatus(fiber.StatusTeapot)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	rid := resp.Header.Get(fiber.HeaderXRequestID)
	require.NotEmpty(t, rid)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(line, &entry))
		assert.Equal(t, rid, entry["request_id"])
	}

	var last map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[1], &last))
	assert.Equal(t, "warn", last["level"])
	assert.Equal(t, float64(fiber.StatusTeapot), last["status"])
	assert.Equal(t, "/x", last["path"])
}
