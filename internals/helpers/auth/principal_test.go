package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
)

func resolveWith(t *testing.T, locals map[string]string) Principal {
	t.Helper()
	var got Principal
	app := fiber.New()
	app.Get("/probe", func(c *fiber.Ctx) error {
		for k, v := range locals {
			c.Locals(k, v)
		}
		got = ResolvePrincipal(c)
		return c.SendString("ok")
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePrincipalFullClaims(t *testing.T) {
	userID, schoolID, teacherID := uuid.New(), uuid.New(), uuid.New()
	p := resolveWith(t, map[string]string{
		LocUserID:    userID.String(),
		LocUserName:  "budi",
		LocUserRole:  constants.RoleTeacher,
		LocSchoolID:  schoolID.String(),
		LocTeacherID: teacherID.String(),
	})

	assert.Equal(t, userID, p.UserID)
	assert.Equal(t, "budi", p.UserName)
	assert.Equal(t, constants.RoleTeacher, p.Role)
	assert.Equal(t, schoolID, p.SchoolID)
	assert.Equal(t, teacherID, p.TeacherID)
	assert.True(t, p.HasSchool())
	assert.True(t, p.HasTeacher())
	assert.False(t, p.HasStudent())
	assert.False(t, p.IsSuperAdmin())
}

// Missing or malformed optional IDs resolve to uuid.Nil, never an error.
func TestResolvePrincipalOptionalClaimsDefaultToNil(t *testing.T) {
	p := resolveWith(t, map[string]string{
		LocUserID:   uuid.NewString(),
		LocUserRole: constants.RoleSuperAdmin,
	})
	assert.True(t, p.IsSuperAdmin())
	assert.Equal(t, uuid.Nil, p.SchoolID)
	assert.Equal(t, uuid.Nil, p.TeacherID)
	assert.Equal(t, uuid.Nil, p.StudentID)
	assert.Equal(t, uuid.Nil, p.GradeID)
	assert.False(t, p.HasSchool())
}

func TestResolvePrincipalMalformedUUIDIsNil(t *testing.T) {
	p := resolveWith(t, map[string]string{
		LocUserID:   uuid.NewString(),
		LocUserRole: constants.RoleStudent,
		LocSchoolID: "not-a-uuid",
	})
	assert.Equal(t, uuid.Nil, p.SchoolID)
}

func TestResolvePrincipalEmptyRoleDefaultsToUser(t *testing.T) {
	p := resolveWith(t, map[string]string{LocUserID: uuid.NewString()})
	assert.Equal(t, constants.RoleUser, p.Role)
}
