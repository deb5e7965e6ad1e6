package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/teachers/model"
)

type TeacherCreateRequest struct {
	SchoolID   *uuid.UUID `json:"school_id"` // honored for superadmin only
	EmployeeID string     `json:"employee_id" validate:"required,max=30"`
	FullName   string     `json:"full_name" validate:"required,max=100"`
	Gender     string     `json:"gender" validate:"omitempty,oneof=male female"`
	Phone      string     `json:"phone" validate:"max=20"`
	Specialty  string     `json:"specialty" validate:"max=100"`

	// login account created together with the teacher (same transaction)
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

func (r *TeacherCreateRequest) ToModel() *model.TeacherModel {
	m := &model.TeacherModel{
		EmployeeID: r.EmployeeID,
		FullName:   r.FullName,
		Gender:     r.Gender,
		Phone:      r.Phone,
		Specialty:  r.Specialty,
	}
	if r.SchoolID != nil {
		m.SchoolID = *r.SchoolID
	}
	return m
}

type TeacherUpdateRequest struct {
	SchoolID   *uuid.UUID `json:"school_id"` // superadmin only
	EmployeeID *string    `json:"employee_id" validate:"omitempty,max=30"`
	FullName   *string    `json:"full_name" validate:"omitempty,max=100"`
	Gender     *string    `json:"gender" validate:"omitempty,oneof=male female"`
	Phone      *string    `json:"phone" validate:"omitempty,max=20"`
	Specialty  *string    `json:"specialty" validate:"omitempty,max=100"`
}

func (r *TeacherUpdateRequest) ApplyTo(m *model.TeacherModel) {
	if r.SchoolID != nil {
		m.SchoolID = *r.SchoolID
	}
	if r.EmployeeID != nil {
		m.EmployeeID = *r.EmployeeID
	}
	if r.FullName != nil {
		m.FullName = *r.FullName
	}
	if r.Gender != nil {
		m.Gender = *r.Gender
	}
	if r.Phone != nil {
		m.Phone = *r.Phone
	}
	if r.Specialty != nil {
		m.Specialty = *r.Specialty
	}
}

type TeacherResponse struct {
	ID         uuid.UUID `json:"id"`
	SchoolID   uuid.UUID `json:"school_id"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Gender     string    `json:"gender"`
	Phone      string    `json:"phone"`
	Specialty  string    `json:"specialty"`
	Email      string    `json:"email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromModel(m *model.TeacherModel) TeacherResponse {
	resp := TeacherResponse{
		ID:         m.ID,
		SchoolID:   m.SchoolID,
		EmployeeID: m.EmployeeID,
		FullName:   m.FullName,
		Gender:     m.Gender,
		Phone:      m.Phone,
		Specialty:  m.Specialty,
		CreatedAt:  m.CreatedAt,
	}
	if m.User != nil {
		resp.Email = m.User.Email
	}
	return resp
}

func FromModels(ms []model.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

// TeacherReport summarizes the caller's own teaching footprint.
type TeacherReport struct {
	TeacherID     uuid.UUID `json:"teacher_id"`
	FullName      string    `json:"full_name"`
	LessonCount   int64     `json:"lesson_count"`
	ScheduleCount int64     `json:"schedule_count"`
}
