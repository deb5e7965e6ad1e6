package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	examModel "sekolahku_backend/internals/features/school/exams/model"
	"sekolahku_backend/internals/features/school/questions/dto"
	"sekolahku_backend/internals/features/school/questions/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/repository"
	"sekolahku_backend/internals/services/crud"
)

// QuestionController: questions carry no school_id of their own — tenant
// checks go through the preloaded exam.
type QuestionController struct {
	DB       *gorm.DB
	Service  *crud.Service[model.QuestionModel]
	Validate *validator.Validate
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	rules := crud.Rules[model.QuestionModel]{
		EntityName: "Question",
		IDOf:       func(m *model.QuestionModel) uuid.UUID { return m.ID },
		SchoolIDOf: func(m *model.QuestionModel) uuid.UUID {
			if m.Exam == nil {
				return uuid.Nil
			}
			return m.Exam.SchoolID
		},
		// SetSchoolID stays nil: the school follows the exam
	}
	return &QuestionController{
		DB:       db,
		Service:  crud.NewService[model.QuestionModel](repository.NewGorm[model.QuestionModel](db, "Exam"), rules),
		Validate: validator.New(),
	}
}

// checkExamTenant answers NotFound for a missing exam or one belonging to
// a foreign school, so question writes can never cross tenants.
func (ctl *QuestionController) checkExamTenant(c *fiber.Ctx, p helperAuth.Principal, examID uuid.UUID) error {
	var exam examModel.ExamModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&exam, "id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Exam not found")
		}
		return err
	}
	if !p.IsSuperAdmin() && (!p.HasSchool() || exam.SchoolID != p.SchoolID) {
		return fiber.NewError(fiber.StatusNotFound, "Exam not found")
	}
	return nil
}

// GET /api/u/questions
func (ctl *QuestionController) GetAll(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	rows, err := ctl.Service.List(c.UserContext(), p)
	if err != nil {
		log.Println("[ERROR] List questions:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Questions fetched successfully", dto.FromModels(rows))
}

// GET /api/u/questions/:id
func (ctl *QuestionController) GetByID(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid question ID")
	}
	m, err := ctl.Service.GetByID(c.UserContext(), p, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Question fetched successfully", dto.FromModel(m))
}

// POST /api/u/questions
func (ctl *QuestionController) Create(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)

	var req dto.QuestionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.checkExamTenant(c, p, req.ExamID); err != nil {
		return helper.FromFiberError(c, err)
	}

	m := req.ToModel()
	if err := ctl.Service.Create(c.UserContext(), p, m); err != nil {
		log.Println("[ERROR] Create question:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Question created successfully", dto.FromModel(m))
}

// PUT /api/u/questions/:id
func (ctl *QuestionController) Update(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	var req dto.QuestionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.Update(c.UserContext(), p, id, func(m *model.QuestionModel) error {
		req.ApplyTo(m)
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Question updated successfully", dto.FromModel(m))
}

// DELETE /api/u/questions/:id
func (ctl *QuestionController) Delete(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid question ID")
	}
	if err := ctl.Service.Delete(c.UserContext(), p, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Question deleted successfully", nil)
}
