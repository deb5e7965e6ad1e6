package auth

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/constants"
)

// Policy gates an operation by role before any handler code runs.
// Attached per operation, not per entity: reads are usually looser than
// writes, and delete thresholds differ per entity on purpose.
func Policy(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok || role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		if constants.RoleAllowed(role, allowed) {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden: you are not authorized to access this resource",
		})
	}
}

// Named policies, strict hierarchy per the role table.
func StudentOnly() fiber.Handler   { return Policy(constants.StudentAndAbove...) }
func TeacherOnly() fiber.Handler   { return Policy(constants.TeacherAndAbove...) }
func PrincipalOnly() fiber.Handler { return Policy(constants.PrincipalAndAbove...) }
func StaffOnly() fiber.Handler     { return Policy(constants.StaffAndAbove...) }
func AdminOnly() fiber.Handler     { return Policy(constants.SuperAdminOnly...) }
