package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
	"sekolahku_backend/internals/features/users/auth/dto"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Login authenticates by email or user_name and issues a token whose
// claims carry the teacher/student linkage looked up here, once. The
// same message covers unknown identifier and wrong password.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (string, *userModel.UserModel, error) {
	identifier := strings.TrimSpace(req.Identifier)

	var user userModel.UserModel
	err := s.DB.WithContext(ctx).
		Where("email = ? OR user_name = ?", strings.ToLower(identifier), identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return "", nil, err
	}

	if !user.IsActive {
		return "", nil, fiber.NewError(fiber.StatusForbidden, "Account is disabled")
	}
	if !CheckPassword(user.Password, req.Password) {
		return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	identity, err := s.resolveIdentity(ctx, &user)
	if err != nil {
		return "", nil, err
	}

	token, err := GenerateToken(&user, identity)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// resolveIdentity looks up the teacher or student row linked to the
// account. A user with neither link (e.g. superadmin, staff) gets empty
// identity claims.
func (s *AuthService) resolveIdentity(ctx context.Context, user *userModel.UserModel) (IdentityClaims, error) {
	var identity IdentityClaims

	switch user.Role {
	case constants.RoleTeacher:
		var teacher teacherModel.TeacherModel
		err := s.DB.WithContext(ctx).Where("user_id = ?", user.ID).First(&teacher).Error
		if err == nil {
			identity.TeacherID = teacher.ID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return identity, err
		}
	case constants.RoleStudent:
		var student studentModel.StudentModel
		err := s.DB.WithContext(ctx).Where("user_id = ?", user.ID).First(&student).Error
		if err == nil {
			identity.StudentID = student.ID
			if student.GradeID != nil {
				identity.GradeID = *student.GradeID
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return identity, err
		}
	}
	return identity, nil
}

// Logout blacklists the presented token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	entry := authModel.TokenBlacklistModel{
		Token:     tokenString,
		ExpiredAt: TokenExpiry(tokenString),
	}
	if err := s.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		// a token blacklisted twice is already logged out
		if helper.IsUniqueViolation(err) {
			return nil
		}
		return err
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := s.DB.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}
	return &user, nil
}

// ChangePassword verifies the current password before rehashing. A wrong
// current password is an explicit 400, unlike login's generic message.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error {
	user, err := s.Me(ctx, userID)
	if err != nil {
		return err
	}
	if !CheckPassword(user.Password, req.CurrentPassword) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid current password")
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Where("id = ?", user.ID).
		Update("password", hashed).Error
}
