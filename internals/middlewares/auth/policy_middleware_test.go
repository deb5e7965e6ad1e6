package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
)

func policyApp(role string, policy fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("userRole", role)
		}
		return c.Next()
	})
	app.Get("/probe", policy, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func probe(t *testing.T, role string, policy fiber.Handler) int {
	t.Helper()
	app := policyApp(role, policy)
	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestPolicyMissingRoleIsUnauthorized(t *testing.T) {
	assert.Equal(t, fiber.StatusUnauthorized, probe(t, "", StudentOnly()))
}

func TestPolicyUnknownRoleIsForbidden(t *testing.T) {
	assert.Equal(t, fiber.StatusForbidden, probe(t, "janitor", StudentOnly()))
}

func TestPolicyMatrix(t *testing.T) {
	policies := []struct {
		name    string
		handler fiber.Handler
		allowed map[string]bool
	}{
		{"StudentOnly", StudentOnly(), map[string]bool{
			constants.RoleStudent: true, constants.RoleTeacher: true, constants.RoleStaff: true,
			constants.RolePrincipal: true, constants.RoleSuperAdmin: true, constants.RoleUser: false,
		}},
		{"TeacherOnly", TeacherOnly(), map[string]bool{
			constants.RoleStudent: false, constants.RoleTeacher: true, constants.RoleStaff: true,
			constants.RolePrincipal: true, constants.RoleSuperAdmin: true, constants.RoleUser: false,
		}},
		{"PrincipalOnly", PrincipalOnly(), map[string]bool{
			constants.RoleStudent: false, constants.RoleTeacher: false, constants.RoleStaff: true,
			constants.RolePrincipal: true, constants.RoleSuperAdmin: true, constants.RoleUser: false,
		}},
		{"StaffOnly", StaffOnly(), map[string]bool{
			constants.RoleStudent: false, constants.RoleTeacher: false, constants.RoleStaff: true,
			constants.RolePrincipal: false, constants.RoleSuperAdmin: true, constants.RoleUser: false,
		}},
		{"AdminOnly", AdminOnly(), map[string]bool{
			constants.RoleStudent: false, constants.RoleTeacher: false, constants.RoleStaff: false,
			constants.RolePrincipal: false, constants.RoleSuperAdmin: true, constants.RoleUser: false,
		}},
	}

	for _, pol := range policies {
		for role, allowed := range pol.allowed {
			status := probe(t, role, pol.handler)
			if allowed {
				assert.Equalf(t, fiber.StatusOK, status, "%s should pass %s", pol.name, role)
			} else {
				assert.Equalf(t, fiber.StatusForbidden, status, "%s should reject %s", pol.name, role)
			}
		}
	}
}

// Superadmin passes every named policy; a student passes only the widest.
func TestPolicySuperadminPassesEverywhere(t *testing.T) {
	for _, h := range []fiber.Handler{StudentOnly(), TeacherOnly(), PrincipalOnly(), StaffOnly(), AdminOnly()} {
		assert.Equal(t, fiber.StatusOK, probe(t, constants.RoleSuperAdmin, h))
	}
	assert.Equal(t, fiber.StatusOK, probe(t, constants.RoleStudent, StudentOnly()))
	for _, h := range []fiber.Handler{TeacherOnly(), PrincipalOnly(), StaffOnly(), AdminOnly()} {
		assert.Equal(t, fiber.StatusForbidden, probe(t, constants.RoleStudent, h))
	}
}
