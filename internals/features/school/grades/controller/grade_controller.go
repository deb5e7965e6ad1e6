package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/grades/dto"
	"sekolahku_backend/internals/features/school/grades/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/repository"
	"sekolahku_backend/internals/services/crud"
)

type GradeController struct {
	Service  *crud.Service[model.GradeModel]
	Validate *validator.Validate
}

func NewGradeController(db *gorm.DB) *GradeController {
	rules := crud.Rules[model.GradeModel]{
		EntityName:  "Grade",
		IDOf:        func(m *model.GradeModel) uuid.UUID { return m.ID },
		SchoolIDOf:  func(m *model.GradeModel) uuid.UUID { return m.SchoolID },
		SetSchoolID: func(m *model.GradeModel, id uuid.UUID) { m.SchoolID = id },
	}
	return &GradeController{
		Service:  crud.NewService[model.GradeModel](repository.NewGorm[model.GradeModel](db, "School"), rules),
		Validate: validator.New(),
	}
}

// GET /api/u/grades
func (ctl *GradeController) GetAll(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	rows, err := ctl.Service.List(c.UserContext(), p)
	if err != nil {
		log.Println("[ERROR] List grades:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Grades fetched successfully", dto.FromModels(rows))
}

// GET /api/u/grades/:id
func (ctl *GradeController) GetByID(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid grade ID")
	}
	m, err := ctl.Service.GetByID(c.UserContext(), p, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Grade fetched successfully", dto.FromModel(m))
}

// POST /api/u/grades
func (ctl *GradeController) Create(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)

	var req dto.GradeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.Service.Create(c.UserContext(), p, m); err != nil {
		log.Println("[ERROR] Create grade:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Grade created successfully", dto.FromModel(m))
}

// PUT /api/u/grades/:id
func (ctl *GradeController) Update(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid grade ID")
	}

	var req dto.GradeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.Update(c.UserContext(), p, id, func(m *model.GradeModel) error {
		req.ApplyTo(m)
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Grade updated successfully", dto.FromModel(m))
}

// DELETE /api/u/grades/:id
func (ctl *GradeController) Delete(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid grade ID")
	}
	if err := ctl.Service.Delete(c.UserContext(), p, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Grade deleted successfully", nil)
}
