package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/exams/dto"
	"sekolahku_backend/internals/features/school/exams/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/repository"
	"sekolahku_backend/internals/services/crud"
)

type ExamController struct {
	Service  *crud.Service[model.ExamModel]
	Validate *validator.Validate
}

func NewExamController(db *gorm.DB) *ExamController {
	rules := crud.Rules[model.ExamModel]{
		EntityName:  "Exam",
		IDOf:        func(m *model.ExamModel) uuid.UUID { return m.ID },
		SchoolIDOf:  func(m *model.ExamModel) uuid.UUID { return m.SchoolID },
		SetSchoolID: func(m *model.ExamModel, id uuid.UUID) { m.SchoolID = id },
	}
	return &ExamController{
		Service:  crud.NewService[model.ExamModel](repository.NewGorm[model.ExamModel](db, "Module"), rules),
		Validate: validator.New(),
	}
}

// GET /api/u/exams
func (ctl *ExamController) GetAll(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	rows, err := ctl.Service.List(c.UserContext(), p)
	if err != nil {
		log.Println("[ERROR] List exams:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Exams fetched successfully", dto.FromModels(rows))
}

// GET /api/u/exams/:id
func (ctl *ExamController) GetByID(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid exam ID")
	}
	m, err := ctl.Service.GetByID(c.UserContext(), p, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Exam fetched successfully", dto.FromModel(m))
}

// POST /api/u/exams
func (ctl *ExamController) Create(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)

	var req dto.ExamCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.Service.Create(c.UserContext(), p, m); err != nil {
		log.Println("[ERROR] Create exam:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Exam created successfully", dto.FromModel(m))
}

// PUT /api/u/exams/:id
func (ctl *ExamController) Update(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid exam ID")
	}

	var req dto.ExamUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.Update(c.UserContext(), p, id, func(m *model.ExamModel) error {
		req.ApplyTo(m)
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Exam updated successfully", dto.FromModel(m))
}

// DELETE /api/u/exams/:id — cascades to questions
func (ctl *ExamController) Delete(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid exam ID")
	}
	if err := ctl.Service.Delete(c.UserContext(), p, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Exam deleted successfully", nil)
}
