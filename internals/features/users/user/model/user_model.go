package model

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	FullName string    `gorm:"size:100" json:"full_name"`
	Email    string    `gorm:"size:255;uniqueIndex;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"size:250;not null" json:"-" validate:"required,min=8"`
	Role     string    `gorm:"size:20;not null;default:user" json:"role"`

	// superadmins belong to no school
	SchoolID *uuid.UUID `gorm:"type:uuid;index" json:"school_id,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

var validate = validator.New()

func (u *UserModel) Validate() error {
	return validate.Struct(u)
}
