package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/teachers/dto"
	"sekolahku_backend/internals/features/school/teachers/model"
	teacherService "sekolahku_backend/internals/features/school/teachers/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/repository"
	"sekolahku_backend/internals/services/crud"
)

type TeacherController struct {
	Service  *crud.Service[model.TeacherModel]
	Teachers *teacherService.TeacherService
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	rules := crud.Rules[model.TeacherModel]{
		EntityName:  "Teacher",
		IDOf:        func(m *model.TeacherModel) uuid.UUID { return m.ID },
		SchoolIDOf:  func(m *model.TeacherModel) uuid.UUID { return m.SchoolID },
		SetSchoolID: func(m *model.TeacherModel, id uuid.UUID) { m.SchoolID = id },
	}
	return &TeacherController{
		Service:  crud.NewService[model.TeacherModel](repository.NewGorm[model.TeacherModel](db, "User"), rules),
		Teachers: teacherService.NewTeacherService(db),
		Validate: validator.New(),
	}
}

// GET /api/u/teachers
func (ctl *TeacherController) GetAll(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	rows, err := ctl.Service.List(c.UserContext(), p)
	if err != nil {
		log.Println("[ERROR] List teachers:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Teachers fetched successfully", dto.FromModels(rows))
}

// GET /api/u/teachers/report — own footprint, requires teacher identity
func (ctl *TeacherController) Report(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	report, err := ctl.Teachers.Report(c.UserContext(), p)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Teacher report fetched successfully", report)
}

// GET /api/u/teachers/:id
func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}
	m, err := ctl.Service.GetByID(c.UserContext(), p, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Teacher fetched successfully", dto.FromModel(m))
}

// POST /api/u/teachers — teacher row + login account, one transaction
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)

	var req dto.TeacherCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Teachers.CreateWithUser(c.UserContext(), p, &req)
	if err != nil {
		log.Println("[ERROR] Create teacher:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Teacher created successfully", dto.FromModel(m))
}

// PUT /api/u/teachers/:id
func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var req dto.TeacherUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.Update(c.UserContext(), p, id, func(m *model.TeacherModel) error {
		req.ApplyTo(m)
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Teacher updated successfully", dto.FromModel(m))
}

// DELETE /api/u/teachers/:id
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}
	if err := ctl.Service.Delete(c.UserContext(), p, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Teacher deleted successfully", nil)
}
