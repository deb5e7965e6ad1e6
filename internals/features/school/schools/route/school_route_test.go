package route

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
)

// The role gate must fire before any handler code: routes are mounted with
// a nil DB, so reaching a handler would panic instead of returning 403.
func TestStudentCannotDeleteSchool(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userRole", constants.RoleStudent)
		return c.Next()
	})
	SchoolRoutes(app.Group("/api/u"), nil)

	req := httptest.NewRequest("DELETE", "/api/u/schools/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("POST", "/api/u/schools/", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
