package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/users/auth/dto"
	authService "sekolahku_backend/internals/features/users/auth/service"
	userDTO "sekolahku_backend/internals/features/users/user/dto"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AuthController struct {
	Auth     *authService.AuthService
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		Auth:     authService.NewAuthService(db),
		Validate: validator.New(),
	}
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, user, err := ctl.Auth.Login(c.UserContext(), &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Login successful", dto.LoginResponse{
		Token: token,
		User:  userDTO.FromModel(user),
	})
}

// POST /api/auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString := bearerToken(c)
	if tokenString == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "No token provided")
	}
	if err := ctl.Auth.Logout(c.UserContext(), tokenString); err != nil {
		log.Println("[ERROR] Logout:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Logout successful", nil)
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)
	user, err := ctl.Auth.Me(c.UserContext(), p.UserID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Profile fetched successfully", userDTO.FromModel(user))
}

// PUT /api/auth/change-password
func (ctl *AuthController) ChangePassword(c *fiber.Ctx) error {
	p := helperAuth.ResolvePrincipal(c)

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.Auth.ChangePassword(c.UserContext(), p.UserID, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Password changed successfully", nil)
}

func bearerToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			return cookieTok
		}
		return ""
	}
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return ""
	}
	return strings.Trim(fields[1], "\"'")
}
