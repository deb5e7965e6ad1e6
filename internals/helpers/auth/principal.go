package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

// Locals keys written by the auth middleware after JWT verification.
const (
	LocUserID    = "user_id"
	LocUserName  = "user_name"
	LocUserRole  = "userRole"
	LocSchoolID  = "school_id"
	LocTeacherID = "teacher_id"
	LocStudentID = "student_id"
	LocGradeID   = "grade_id"
)

// Principal is the resolved identity of the caller for one request.
// Built fresh from verified token claims, never mutated, never persisted.
// Optional IDs are uuid.Nil when the claim is missing or malformed — that
// is not an error; an operation needing one must reject at point of use.
type Principal struct {
	UserID    uuid.UUID
	UserName  string
	Role      string
	SchoolID  uuid.UUID
	TeacherID uuid.UUID
	StudentID uuid.UUID
	GradeID   uuid.UUID
}

func (p Principal) IsSuperAdmin() bool { return p.Role == constants.RoleSuperAdmin }
func (p Principal) HasSchool() bool    { return p.SchoolID != uuid.Nil }
func (p Principal) HasTeacher() bool   { return p.TeacherID != uuid.Nil }
func (p Principal) HasStudent() bool   { return p.StudentID != uuid.Nil }

// ResolvePrincipal reads the claims the auth middleware stored in locals.
// Pure extraction, no I/O; never fails.
func ResolvePrincipal(c *fiber.Ctx) Principal {
	p := Principal{
		UserID:    localUUID(c, LocUserID),
		Role:      localString(c, LocUserRole),
		UserName:  localString(c, LocUserName),
		SchoolID:  localUUID(c, LocSchoolID),
		TeacherID: localUUID(c, LocTeacherID),
		StudentID: localUUID(c, LocStudentID),
		GradeID:   localUUID(c, LocGradeID),
	}
	if p.Role == "" {
		p.Role = constants.RoleUser
	}
	return p
}

func localString(c *fiber.Ctx, key string) string {
	if s, ok := c.Locals(key).(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func localUUID(c *fiber.Ctx, key string) uuid.UUID {
	s := localString(c, key)
	if s == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
