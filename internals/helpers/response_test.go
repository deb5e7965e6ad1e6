package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/probe", handler)
	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	return resp.StatusCode, payload
}

func TestSuccessEnvelope(t *testing.T) {
	status, payload := doRequest(t, func(c *fiber.Ctx) error {
		return Success(c, "Fetched", fiber.Map{"x": 1})
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "success", payload["status"])
	assert.Equal(t, "Fetched", payload["message"])
	assert.Equal(t, float64(200), payload["code"])
	assert.NotNil(t, payload["data"])
}

func TestFromFiberErrorKeepsStatusCode(t *testing.T) {
	status, payload := doRequest(t, func(c *fiber.Ctx) error {
		return FromFiberError(c, fiber.NewError(fiber.StatusNotFound, "School not found"))
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "error", payload["status"])
	assert.Equal(t, "School not found", payload["message"])
}

func TestFromFiberErrorFallsBackTo500(t *testing.T) {
	status, payload := doRequest(t, func(c *fiber.Ctx) error {
		return FromFiberError(c, errors.New("connection reset"))
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "connection reset", payload["message"])
}
