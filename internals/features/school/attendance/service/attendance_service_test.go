package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/attendance/dto"
	"sekolahku_backend/internals/features/school/attendance/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

func teacherPrincipal(schoolID uuid.UUID) helperAuth.Principal {
	return helperAuth.Principal{
		UserID:   uuid.New(),
		Role:     constants.RoleTeacher,
		SchoolID: schoolID,
	}
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T: %v", err, err)
	return fe.Code
}

func TestSaveOneRejectsInvalidStatus(t *testing.T) {
	svc := NewAttendanceService(nil)
	_, err := svc.SaveOne(context.Background(), teacherPrincipal(uuid.New()), &dto.AttendanceSaveItem{
		StudentID: uuid.New(),
		Date:      "2026-09-01",
		Status:    "vacation",
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestSaveOneRejectsMalformedDate(t *testing.T) {
	svc := NewAttendanceService(nil)
	_, err := svc.SaveOne(context.Background(), teacherPrincipal(uuid.New()), &dto.AttendanceSaveItem{
		StudentID: uuid.New(),
		Date:      "01/09/2026",
		Status:    model.AttendanceStatusPresent,
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestSaveOneRequiresSchoolClaimForInsert(t *testing.T) {
	svc := NewAttendanceService(nil)
	_, err := svc.SaveOne(context.Background(), teacherPrincipal(uuid.Nil), &dto.AttendanceSaveItem{
		StudentID: uuid.New(),
		Date:      "2026-09-01",
		Status:    model.AttendanceStatusPresent,
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
}

// A batch of failing items still yields one result per item.
func TestSaveBatchAlwaysCompletes(t *testing.T) {
	svc := NewAttendanceService(nil)
	studentA, studentB := uuid.New(), uuid.New()

	results := svc.SaveBatch(context.Background(), teacherPrincipal(uuid.New()), []dto.AttendanceSaveItem{
		{StudentID: studentA, Date: "2026-09-01", Status: "vacation"},
		{StudentID: studentB, Date: "bad-date", Status: model.AttendanceStatusPresent},
	})

	require.Len(t, results, 2)
	assert.Equal(t, studentA, results[0].StudentID)
	assert.False(t, results[0].Saved)
	assert.Equal(t, "Invalid attendance status", results[0].Error)
	assert.False(t, results[1].Saved)
	assert.NotEmpty(t, results[1].Error)
}

func TestIsValidAttendanceStatus(t *testing.T) {
	for _, s := range []string{
		model.AttendanceStatusPresent, model.AttendanceStatusAbsent,
		model.AttendanceStatusLate, model.AttendanceStatusExcused,
	} {
		assert.True(t, model.IsValidAttendanceStatus(s), s)
	}
	assert.False(t, model.IsValidAttendanceStatus(""))
	assert.False(t, model.IsValidAttendanceStatus("Present"), "statuses are lowercase")
}
