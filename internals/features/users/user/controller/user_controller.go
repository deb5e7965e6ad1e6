package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authService "sekolahku_backend/internals/features/users/auth/service"
	"sekolahku_backend/internals/features/users/user/dto"
	"sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/repository"
	"sekolahku_backend/internals/services/crud"
)

type UserController struct {
	Service  *crud.Service[model.UserModel]
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	rules := crud.Rules[model.UserModel]{
		EntityName: "User",
		IDOf:       func(m *model.UserModel) uuid.UUID { return m.ID },
		SchoolIDOf: func(m *model.UserModel) uuid.UUID {
			if m.SchoolID == nil {
				return uuid.Nil
			}
			return *m.SchoolID
		},
		SetSchoolID: func(m *model.UserModel, id uuid.UUID) {
			school := id
			m.SchoolID = &school
		},
	}
	return &UserController{
		Service:  crud.NewService[model.UserModel](repository.NewGorm[model.UserModel](db), rules),
		Validate: validator.New(),
	}
}

// GET /api/u/users?page=&per_page=
func (ctl *UserController) GetAll(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	rows, err := ctl.Service.List(c.UserContext(), p)
	if err != nil {
		log.Println("[ERROR] List users:", err)
		return helper.FromFiberError(c, err)
	}

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

	return helper.Success(c, "Users fetched successfully", fiber.Map{
		"total":    total,
		"page":     pg.Page,
		"per_page": pg.PerPage,
		"users":    dto.FromModels(rows),
	})
}

// GET /api/u/users/:id
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	m, err := ctl.Service.GetByID(c.UserContext(), p, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "User fetched successfully", dto.FromModel(m))
}

// POST /api/u/users
func (ctl *UserController) Create(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)

	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		log.Println("[ERROR] Hash password:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	m := req.ToModel()
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	m.Password = hashed
	if err := ctl.Service.Create(c.UserContext(), p, m); err != nil {
		log.Println("[ERROR] Create user:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created successfully", dto.FromModel(m))
}

// PUT /api/u/users/:id
func (ctl *UserController) Update(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var hashed string
	if req.Password != nil {
		hashed, err = authService.HashPassword(*req.Password)
		if err != nil {
			log.Println("[ERROR] Hash password:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update user")
		}
	}

	m, err := ctl.Service.Update(c.UserContext(), p, id, func(m *model.UserModel) error {
		req.ApplyTo(m)
		if req.Email != nil {
			m.Email = strings.ToLower(strings.TrimSpace(m.Email))
		}
		if hashed != "" {
			m.Password = hashed
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "User updated successfully", dto.FromModel(m))
}

// DELETE /api/u/users/:id
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	if err := ctl.Service.Delete(c.UserContext(), p, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "User deleted successfully", nil)
}
