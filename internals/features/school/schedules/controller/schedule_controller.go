package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/schedules/dto"
	"sekolahku_backend/internals/features/school/schedules/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/repository"
	"sekolahku_backend/internals/services/crud"
)

type ScheduleController struct {
	Service  *crud.Service[model.ScheduleModel]
	Validate *validator.Validate
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	rules := crud.Rules[model.ScheduleModel]{
		EntityName:  "Schedule",
		IDOf:        func(m *model.ScheduleModel) uuid.UUID { return m.ID },
		SchoolIDOf:  func(m *model.ScheduleModel) uuid.UUID { return m.SchoolID },
		SetSchoolID: func(m *model.ScheduleModel, id uuid.UUID) { m.SchoolID = id },
	}
	return &ScheduleController{
		Service:  crud.NewService[model.ScheduleModel](repository.NewGorm[model.ScheduleModel](db, "Grade", "Module", "Teacher"), rules),
		Validate: validator.New(),
	}
}

// GET /api/u/schedules
func (ctl *ScheduleController) GetAll(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	rows, err := ctl.Service.List(c.UserContext(), p)
	if err != nil {
		log.Println("[ERROR] List schedules:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Schedules fetched successfully", dto.FromModels(rows))
}

// GET /api/u/schedules/:id
func (ctl *ScheduleController) GetByID(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule ID")
	}
	m, err := ctl.Service.GetByID(c.UserContext(), p, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Schedule fetched successfully", dto.FromModel(m))
}

// POST /api/u/schedules
func (ctl *ScheduleController) Create(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)

	var req dto.ScheduleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.Service.Create(c.UserContext(), p, m); err != nil {
		log.Println("[ERROR] Create schedule:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Schedule created successfully", dto.FromModel(m))
}

// PUT /api/u/schedules/:id
func (ctl *ScheduleController) Update(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule ID")
	}

	var req dto.ScheduleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.Update(c.UserContext(), p, id, func(m *model.ScheduleModel) error {
		req.ApplyTo(m)
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Schedule updated successfully", dto.FromModel(m))
}

// DELETE /api/u/schedules/:id
func (ctl *ScheduleController) Delete(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid schedule ID")
	}
	if err := ctl.Service.Delete(c.UserContext(), p, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Schedule deleted successfully", nil)
}
