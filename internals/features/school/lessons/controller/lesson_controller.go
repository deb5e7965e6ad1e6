package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/lessons/dto"
	"sekolahku_backend/internals/features/school/lessons/model"
	lessonService "sekolahku_backend/internals/features/school/lessons/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/repository"
	"sekolahku_backend/internals/services/crud"
)

type LessonController struct {
	Service     *crud.Service[model.LessonModel]
	Completions *lessonService.CompletionService
	Validate    *validator.Validate
}

func NewLessonController(db *gorm.DB) *LessonController {
	rules := crud.Rules[model.LessonModel]{
		EntityName:  "Lesson",
		IDOf:        func(m *model.LessonModel) uuid.UUID { return m.ID },
		SchoolIDOf:  func(m *model.LessonModel) uuid.UUID { return m.SchoolID },
		SetSchoolID: func(m *model.LessonModel, id uuid.UUID) { m.SchoolID = id },
		// ownership default: author is the creating principal's teacher
		// identity when the request doesn't name one
		BeforeCreate: func(p helperAuth.Principal, m *model.LessonModel) error {
			if m.CreatedByTeacherID == nil && p.HasTeacher() {
				tid := p.TeacherID
				m.CreatedByTeacherID = &tid
			}
			return nil
		},
	}
	return &LessonController{
		Service:     crud.NewService[model.LessonModel](repository.NewGorm[model.LessonModel](db, "Module", "CreatedByTeacher"), rules),
		Completions: lessonService.NewCompletionService(db),
		Validate:    validator.New(),
	}
}

// GET /api/u/lessons
func (ctl *LessonController) GetAll(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	rows, err := ctl.Service.List(c.UserContext(), p)
	if err != nil {
		log.Println("[ERROR] List lessons:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Lessons fetched successfully", dto.FromModels(rows))
}

// GET /api/u/lessons/:id
func (ctl *LessonController) GetByID(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid lesson ID")
	}
	m, err := ctl.Service.GetByID(c.UserContext(), p, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Lesson fetched successfully", dto.FromModel(m))
}

// POST /api/u/lessons
func (ctl *LessonController) Create(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)

	var req dto.LessonCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.Service.Create(c.UserContext(), p, m); err != nil {
		log.Println("[ERROR] Create lesson:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Lesson created successfully", dto.FromModel(m))
}

// PUT /api/u/lessons/:id
func (ctl *LessonController) Update(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid lesson ID")
	}

	var req dto.LessonUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.Update(c.UserContext(), p, id, func(m *model.LessonModel) error {
		req.ApplyTo(m)
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Lesson updated successfully", dto.FromModel(m))
}

// DELETE /api/u/lessons/:id
func (ctl *LessonController) Delete(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid lesson ID")
	}
	if err := ctl.Service.Delete(c.UserContext(), p, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Lesson deleted successfully", nil)
}

// POST /api/u/lessons/:id/complete — idempotent mark-as-complete for the
// caller's own student identity. A caller without a student_id claim is
// rejected, never silently matched against an empty ID.
func (ctl *LessonController) MarkComplete(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	if !p.HasStudent() {
		return helper.Error(c, fiber.StatusForbidden, "No student identity in token")
	}

	lessonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid lesson ID")
	}

	// lesson must exist and be visible to the caller
	if _, err := ctl.Service.GetByID(c.UserContext(), p, lessonID); err != nil {
		return helper.FromFiberError(c, err)
	}

	created, err := ctl.Completions.MarkComplete(c.UserContext(), lessonID, p.StudentID)
	if err != nil {
		log.Println("[ERROR] MarkComplete:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to mark lesson complete")
	}
	if !created {
		return helper.Success(c, "Lesson already completed", nil)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Lesson marked as complete", nil)
}
