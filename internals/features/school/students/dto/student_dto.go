package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/students/model"
)

type StudentCreateRequest struct {
	SchoolID    *uuid.UUID `json:"school_id"` // honored for superadmin only
	StudentCode string     `json:"student_code" validate:"required,max=30"`
	FullName    string     `json:"full_name" validate:"required,max=100"`
	Gender      string     `json:"gender" validate:"omitempty,oneof=male female"`
	BirthDate   *time.Time `json:"birth_date"`
	Address     string     `json:"address" validate:"max=255"`
	Phone       string     `json:"phone" validate:"max=20"`
	GradeID     *uuid.UUID `json:"grade_id"`

	// login account created together with the student (same transaction)
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

func (r *StudentCreateRequest) ToModel() *model.StudentModel {
	m := &model.StudentModel{
		StudentCode: r.StudentCode,
		FullName:    r.FullName,
		Gender:      r.Gender,
		BirthDate:   r.BirthDate,
		Address:     r.Address,
		Phone:       r.Phone,
		GradeID:     r.GradeID,
		Status:      model.StudentStatusActive,
	}
	if r.SchoolID != nil {
		m.SchoolID = *r.SchoolID
	}
	return m
}

type StudentUpdateRequest struct {
	SchoolID    *uuid.UUID `json:"school_id"` // superadmin only
	StudentCode *string    `json:"student_code" validate:"omitempty,max=30"`
	FullName    *string    `json:"full_name" validate:"omitempty,max=100"`
	Gender      *string    `json:"gender" validate:"omitempty,oneof=male female"`
	BirthDate   *time.Time `json:"birth_date"`
	Address     *string    `json:"address" validate:"omitempty,max=255"`
	Phone       *string    `json:"phone" validate:"omitempty,max=20"`
	GradeID     *uuid.UUID `json:"grade_id"`
	Status      *string    `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *StudentUpdateRequest) ApplyTo(m *model.StudentModel) {
	if r.SchoolID != nil {
		m.SchoolID = *r.SchoolID
	}
	if r.StudentCode != nil {
		m.StudentCode = *r.StudentCode
	}
	if r.FullName != nil {
		m.FullName = *r.FullName
	}
	if r.Gender != nil {
		m.Gender = *r.Gender
	}
	if r.BirthDate != nil {
		m.BirthDate = r.BirthDate
	}
	if r.Address != nil {
		m.Address = *r.Address
	}
	if r.Phone != nil {
		m.Phone = *r.Phone
	}
	if r.GradeID != nil {
		m.GradeID = r.GradeID
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}

type StudentResponse struct {
	ID          uuid.UUID  `json:"id"`
	SchoolID    uuid.UUID  `json:"school_id"`
	StudentCode string     `json:"student_code"`
	FullName    string     `json:"full_name"`
	Gender      string     `json:"gender"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	Address     string     `json:"address"`
	Phone       string     `json:"phone"`
	Status      string     `json:"status"`
	GradeID     *uuid.UUID `json:"grade_id,omitempty"`
	GradeLevel  int        `json:"grade_level,omitempty"`
	Section     string     `json:"section,omitempty"`
	Email       string     `json:"email,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromModel(m *model.StudentModel) StudentResponse {
	resp := StudentResponse{
		ID:          m.ID,
		SchoolID:    m.SchoolID,
		StudentCode: m.StudentCode,
		FullName:    m.FullName,
		Gender:      m.Gender,
		BirthDate:   m.BirthDate,
		Address:     m.Address,
		Phone:       m.Phone,
		Status:      m.Status,
		GradeID:     m.GradeID,
		CreatedAt:   m.CreatedAt,
	}
	if m.Grade != nil {
		resp.GradeLevel = m.Grade.GradeLevel
		resp.Section = m.Grade.Section
	}
	if m.User != nil {
		resp.Email = m.User.Email
	}
	return resp
}

func FromModels(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

// ImportRowResult reports the outcome of one CSV line; failures are
// collected, not fatal.
type ImportRowResult struct {
	Line    int    `json:"line"`
	Code    string `json:"student_code,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type ImportSummary struct {
	Total    int               `json:"total"`
	Created  int               `json:"created"`
	Failed   int               `json:"failed"`
	Skipped  int               `json:"skipped"`
	RowStats []ImportRowResult `json:"rows"`
}
