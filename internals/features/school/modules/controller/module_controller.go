package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/modules/dto"
	"sekolahku_backend/internals/features/school/modules/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/repository"
	"sekolahku_backend/internals/services/crud"
)

type ModuleController struct {
	DB       *gorm.DB
	Service  *crud.Service[model.ModuleModel]
	Validate *validator.Validate
}

func NewModuleController(db *gorm.DB) *ModuleController {
	rules := crud.Rules[model.ModuleModel]{
		EntityName:  "Module",
		IDOf:        func(m *model.ModuleModel) uuid.UUID { return m.ID },
		SchoolIDOf:  func(m *model.ModuleModel) uuid.UUID { return m.SchoolID },
		SetSchoolID: func(m *model.ModuleModel, id uuid.UUID) { m.SchoolID = id },
	}
	return &ModuleController{
		DB:       db,
		Service:  crud.NewService[model.ModuleModel](repository.NewGorm[model.ModuleModel](db, "Grade"), rules),
		Validate: validator.New(),
	}
}

// GET /api/u/modules
func (ctl *ModuleController) GetAll(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	rows, err := ctl.Service.List(c.UserContext(), p)
	if err != nil {
		log.Println("[ERROR] List modules:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Modules fetched successfully", dto.FromModels(rows))
}

// GET /api/u/modules/:id
func (ctl *ModuleController) GetByID(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid module ID")
	}
	m, err := ctl.Service.GetByID(c.UserContext(), p, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Module fetched successfully", dto.FromModel(m))
}

// POST /api/u/modules
func (ctl *ModuleController) Create(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)

	var req dto.ModuleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// advisory duplicate-name check within the caller's school+grade; the
	// composite unique index is what actually prevents duplicates
	schoolID := p.SchoolID
	if p.IsSuperAdmin() && req.SchoolID != nil {
		schoolID = *req.SchoolID
	}
	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.ModuleModel{}).
		Where("school_id = ? AND grade_id = ? AND module_name = ?", schoolID, req.GradeID, req.ModuleName).
		Count(&count).Error; err == nil && count > 0 {
		return helper.Error(c, fiber.StatusConflict, "Module name already exists for this grade")
	}

	m := req.ToModel()
	if err := ctl.Service.Create(c.UserContext(), p, m); err != nil {
		log.Println("[ERROR] Create module:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Module created successfully", dto.FromModel(m))
}

// PUT /api/u/modules/:id
func (ctl *ModuleController) Update(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid module ID")
	}

	var req dto.ModuleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.Update(c.UserContext(), p, id, func(m *model.ModuleModel) error {
		req.ApplyTo(m)
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Module updated successfully", dto.FromModel(m))
}

// DELETE /api/u/modules/:id
func (ctl *ModuleController) Delete(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid module ID")
	}
	if err := ctl.Service.Delete(c.UserContext(), p, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Module deleted successfully", nil)
}
