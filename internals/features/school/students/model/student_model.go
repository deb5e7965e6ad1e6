package model

import (
	"time"

	"github.com/google/uuid"

	gradeModel "sekolahku_backend/internals/features/school/grades/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

const (
	StudentStatusActive   = "active"
	StudentStatusInactive = "inactive"
)

type StudentModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SchoolID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_students_school_code" json:"school_id"`

	StudentCode string     `gorm:"size:30;not null;uniqueIndex:uq_students_school_code" json:"student_code"`
	FullName    string     `gorm:"size:100;not null" json:"full_name"`
	Gender      string     `gorm:"size:10" json:"gender"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	Address     string     `gorm:"size:255" json:"address"`
	Phone       string     `gorm:"size:20" json:"phone"`
	Status      string     `gorm:"size:20;not null;default:active" json:"status"`

	GradeID *uuid.UUID             `gorm:"type:uuid;index" json:"grade_id,omitempty"`
	Grade   *gradeModel.GradeModel `gorm:"foreignKey:GradeID;constraint:OnDelete:SET NULL" json:"grade,omitempty"`

	// the login account created together with the student row
	UserID *uuid.UUID           `gorm:"type:uuid;index" json:"user_id,omitempty"`
	User   *userModel.UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
