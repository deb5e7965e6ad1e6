package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/attendance/dto"
	"sekolahku_backend/internals/features/school/attendance/model"
	attendanceService "sekolahku_backend/internals/features/school/attendance/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/repository"
	"sekolahku_backend/internals/services/crud"
)

type AttendanceController struct {
	Service    *crud.Service[model.AttendanceModel]
	Attendance *attendanceService.AttendanceService
	Validate   *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	rules := crud.Rules[model.AttendanceModel]{
		EntityName:  "Attendance",
		IDOf:        func(m *model.AttendanceModel) uuid.UUID { return m.ID },
		SchoolIDOf:  func(m *model.AttendanceModel) uuid.UUID { return m.SchoolID },
		SetSchoolID: func(m *model.AttendanceModel, id uuid.UUID) { m.SchoolID = id },
	}
	return &AttendanceController{
		Service:    crud.NewService[model.AttendanceModel](repository.NewGorm[model.AttendanceModel](db, "Student"), rules),
		Attendance: attendanceService.NewAttendanceService(db),
		Validate:   validator.New(),
	}
}

// GET /api/u/attendance
func (ctl *AttendanceController) GetAll(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	rows, err := ctl.Service.List(c.UserContext(), p)
	if err != nil {
		log.Println("[ERROR] List attendance:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Attendance fetched successfully", dto.FromModels(rows))
}

// GET /api/u/attendance/students?grade_id=&date= — the marking roster
func (ctl *AttendanceController) Roster(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)

	gradeID, err := uuid.Parse(c.Query("grade_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid grade_id")
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	roster, err := ctl.Attendance.Roster(c.UserContext(), p, gradeID, date)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Attendance roster fetched successfully", roster)
}

// GET /api/u/attendance/:id
func (ctl *AttendanceController) GetByID(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attendance ID")
	}
	m, err := ctl.Service.GetByID(c.UserContext(), p, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Attendance fetched successfully", dto.FromModel(m))
}

// POST /api/u/attendance/save — best-effort batch, per-item results
func (ctl *AttendanceController) Save(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)

	var req dto.AttendanceSaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	results := ctl.Attendance.SaveBatch(c.UserContext(), p, req.Items)
	return helper.Success(c, "Attendance saved", results)
}

// DELETE /api/u/attendance/:id
func (ctl *AttendanceController) Delete(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attendance ID")
	}
	if err := ctl.Service.Delete(c.UserContext(), p, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Attendance deleted successfully", nil)
}
