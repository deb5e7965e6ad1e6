package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/schools/dto"
	"sekolahku_backend/internals/features/school/schools/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/repository"
	"sekolahku_backend/internals/services/crud"
)

type SchoolController struct {
	DB       *gorm.DB
	Service  *crud.Service[model.SchoolModel]
	Validate *validator.Validate
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	rules := crud.Rules[model.SchoolModel]{
		EntityName: "School",
		IDOf:       func(m *model.SchoolModel) uuid.UUID { return m.ID },
		// the school row is its own tenant
		SchoolIDOf: func(m *model.SchoolModel) uuid.UUID { return m.ID },
	}
	return &SchoolController{
		DB:       db,
		Service:  crud.NewService[model.SchoolModel](repository.NewGorm[model.SchoolModel](db), rules),
		Validate: validator.New(),
	}
}

// GET /api/u/schools
func (ctl *SchoolController) GetAll(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	rows, err := ctl.Service.List(c.UserContext(), p)
	if err != nil {
		log.Println("[ERROR] List schools:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Schools fetched successfully", dto.FromModels(rows))
}

// GET /api/u/schools/:id
func (ctl *SchoolController) GetByID(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid school ID")
	}
	m, err := ctl.Service.GetByID(c.UserContext(), p, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "School fetched successfully", dto.FromModel(m))
}

// POST /api/u/schools
func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)

	var req dto.SchoolCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// advisory fast-path only; the unique index on school_code is the
	// actual guard and still answers 409 if two creates race past this
	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.SchoolModel{}).
		Where("school_code = ?", req.SchoolCode).
		Count(&count).Error; err == nil && count > 0 {
		return helper.Error(c, fiber.StatusConflict, "School code already in use")
	}

	m := req.ToModel()
	if err := ctl.Service.Create(c.UserContext(), p, m); err != nil {
		log.Println("[ERROR] Create school:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "School created successfully", dto.FromModel(m))
}

// PUT /api/a/schools/:id
func (ctl *SchoolController) Update(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid school ID")
	}

	var req dto.SchoolUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.Update(c.UserContext(), p, id, func(m *model.SchoolModel) error {
		req.ApplyTo(m)
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "School updated successfully", dto.FromModel(m))
}

// DELETE /api/a/schools/:id
func (ctl *SchoolController) Delete(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid school ID")
	}
	if err := ctl.Service.Delete(c.UserContext(), p, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "School deleted successfully", nil)
}
