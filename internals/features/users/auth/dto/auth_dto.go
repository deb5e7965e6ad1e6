package dto

import (
	userDTO "sekolahku_backend/internals/features/users/user/dto"
)

// Identifier matches either the email or the user_name.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string               `json:"token"`
	User  userDTO.UserResponse `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
