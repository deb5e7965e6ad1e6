package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/results/dto"
	"sekolahku_backend/internals/features/school/results/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/repository"
	"sekolahku_backend/internals/services/crud"
)

type ResultController struct {
	Service  *crud.Service[model.ResultModel]
	Validate *validator.Validate
}

func NewResultController(db *gorm.DB) *ResultController {
	rules := crud.Rules[model.ResultModel]{
		EntityName:  "Result",
		IDOf:        func(m *model.ResultModel) uuid.UUID { return m.ID },
		SchoolIDOf:  func(m *model.ResultModel) uuid.UUID { return m.SchoolID },
		SetSchoolID: func(m *model.ResultModel, id uuid.UUID) { m.SchoolID = id },
	}
	return &ResultController{
		Service:  crud.NewService[model.ResultModel](repository.NewGorm[model.ResultModel](db, "Exam", "Student"), rules),
		Validate: validator.New(),
	}
}

// GET /api/u/results
func (ctl *ResultController) GetAll(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	rows, err := ctl.Service.List(c.UserContext(), p)
	if err != nil {
		log.Println("[ERROR] List results:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Results fetched successfully", dto.FromModels(rows))
}

// GET /api/u/results/:id
func (ctl *ResultController) GetByID(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid result ID")
	}
	m, err := ctl.Service.GetByID(c.UserContext(), p, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Result fetched successfully", dto.FromModel(m))
}

// POST /api/u/results
func (ctl *ResultController) Create(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)

	var req dto.ResultCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.Service.Create(c.UserContext(), p, m); err != nil {
		log.Println("[ERROR] Create result:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Result created successfully", dto.FromModel(m))
}

// PUT /api/u/results/:id
func (ctl *ResultController) Update(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid result ID")
	}

	var req dto.ResultUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.Update(c.UserContext(), p, id, func(m *model.ResultModel) error {
		req.ApplyTo(m)
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Result updated successfully", dto.FromModel(m))
}

// DELETE /api/u/results/:id
func (ctl *ResultController) Delete(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid result ID")
	}
	if err := ctl.Service.Delete(c.UserContext(), p, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Result deleted successfully", nil)
}
