package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/students/dto"
	"sekolahku_backend/internals/features/school/students/model"
	studentService "sekolahku_backend/internals/features/school/students/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/repository"
	"sekolahku_backend/internals/services/crud"
)

type StudentController struct {
	Service  *crud.Service[model.StudentModel]
	Students *studentService.StudentService
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	rules := crud.Rules[model.StudentModel]{
		EntityName:  "Student",
		IDOf:        func(m *model.StudentModel) uuid.UUID { return m.ID },
		SchoolIDOf:  func(m *model.StudentModel) uuid.UUID { return m.SchoolID },
		SetSchoolID: func(m *model.StudentModel, id uuid.UUID) { m.SchoolID = id },
	}
	return &StudentController{
		Service:  crud.NewService[model.StudentModel](repository.NewGorm[model.StudentModel](db, "Grade", "User"), rules),
		Students: studentService.NewStudentService(db),
		Validate: validator.New(),
	}
}

// GET /api/u/students?page=&per_page=
func (ctl *StudentController) GetAll(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	rows, err := ctl.Service.List(c.UserContext(), p)
	if err != nil {
		log.Println("[ERROR] List students:", err)
		return helper.FromFiberError(c, err)
	}

	// paging applied after tenant filtering
	pg := helper.ResolvePaging(c, 20, 100)
	total := len(rows)
	if pg.Offset >= total {
		rows = rows[:0]
	} else {
		end := pg.Offset + pg.Limit
		if end > total {
			end = total
		}
		rows = rows[pg.Offset:end]
	}

	return helper.Success(c, "Students fetched successfully", fiber.Map{
		"total":    total,
		"page":     pg.Page,
		"per_page": pg.PerPage,
		"students": dto.FromModels(rows),
	})
}

// GET /api/u/students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student ID")
	}
	m, err := ctl.Service.GetByID(c.UserContext(), p, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Student fetched successfully", dto.FromModel(m))
}

// POST /api/u/students — student row + login account, one transaction
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)

	var req dto.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Students.CreateWithUser(c.UserContext(), p, &req)
	if err != nil {
		log.Println("[ERROR] Create student:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student created successfully", dto.FromModel(m))
}

// POST /api/u/students/import — multipart CSV, best-effort per row
func (ctl *StudentController) Import(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing CSV file")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cannot open uploaded file")
	}
	defer f.Close()

	summary, err := ctl.Students.ImportCSV(c.UserContext(), p, f)
	if err != nil {
		log.Println("[ERROR] Import students:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Import failed")
	}
	return helper.Success(c, "Import finished", summary)
}

// PUT /api/u/students/:id
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var req dto.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.Update(c.UserContext(), p, id, func(m *model.StudentModel) error {
		req.ApplyTo(m)
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Student updated successfully", dto.FromModel(m))
}

// DELETE /api/u/students/:id
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student ID")
	}
	if err := ctl.Service.Delete(c.UserContext(), p, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Student deleted successfully", nil)
}
