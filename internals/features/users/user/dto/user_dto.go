package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/users/user/model"
)

type UserCreateRequest struct {
	UserName string     `json:"user_name" validate:"required,min=3,max=50"`
	FullName string     `json:"full_name" validate:"max=100"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=8"`
	Role     string     `json:"role" validate:"required,oneof=superadmin principal staff teacher student user"`
	SchoolID *uuid.UUID `json:"school_id"` // honored for superadmin only
	IsActive *bool      `json:"is_active"`
}

func (r *UserCreateRequest) ToModel() *model.UserModel {
	m := &model.UserModel{
		UserName: r.UserName,
		FullName: r.FullName,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
		SchoolID: r.SchoolID,
		IsActive: true,
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m
}

type UserUpdateRequest struct {
	UserName *string    `json:"user_name" validate:"omitempty,min=3,max=50"`
	FullName *string    `json:"full_name" validate:"omitempty,max=100"`
	Email    *string    `json:"email" validate:"omitempty,email"`
	Password *string    `json:"password" validate:"omitempty,min=8"`
	Role     *string    `json:"role" validate:"omitempty,oneof=superadmin principal staff teacher student user"`
	SchoolID *uuid.UUID `json:"school_id"`
	IsActive *bool      `json:"is_active"`
}

// ApplyTo copies the set fields onto the row. The password is handled by
// the controller so it is hashed before it ever reaches the model.
func (r *UserUpdateRequest) ApplyTo(m *model.UserModel) {
	if r.UserName != nil {
		m.UserName = *r.UserName
	}
	if r.FullName != nil {
		m.FullName = *r.FullName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	if r.SchoolID != nil {
		m.SchoolID = r.SchoolID
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserName  string     `json:"user_name"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	SchoolID  *uuid.UUID `json:"school_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromModel(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		UserName:  m.UserName,
		FullName:  m.FullName,
		Email:     m.Email,
		Role:      m.Role,
		SchoolID:  m.SchoolID,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func FromModels(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
