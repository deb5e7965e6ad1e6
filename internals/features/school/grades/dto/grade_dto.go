package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/grades/model"
)

type GradeCreateRequest struct {
	SchoolID     *uuid.UUID `json:"school_id"` // superadmin only; others get their own school
	GradeLevel   int        `json:"grade_level" validate:"required,min=1,max=13"`
	Section      string     `json:"section" validate:"required,max=10"`
	AcademicYear string     `json:"academic_year" validate:"required,max=20"`
}

func (r *GradeCreateRequest) ToModel() *model.GradeModel {
	m := &model.GradeModel{
		GradeLevel:   r.GradeLevel,
		Section:      r.Section,
		AcademicYear: r.AcademicYear,
	}
	if r.SchoolID != nil {
		m.SchoolID = *r.SchoolID
	}
	return m
}

type GradeUpdateRequest struct {
	SchoolID     *uuid.UUID `json:"school_id"` // superadmin only
	GradeLevel   *int       `json:"grade_level" validate:"omitempty,min=1,max=13"`
	Section      *string    `json:"section" validate:"omitempty,max=10"`
	AcademicYear *string    `json:"academic_year" validate:"omitempty,max=20"`
}

func (r *GradeUpdateRequest) ApplyTo(m *model.GradeModel) {
	if r.SchoolID != nil {
		m.SchoolID = *r.SchoolID
	}
	if r.GradeLevel != nil {
		m.GradeLevel = *r.GradeLevel
	}
	if r.Section != nil {
		m.Section = *r.Section
	}
	if r.AcademicYear != nil {
		m.AcademicYear = *r.AcademicYear
	}
}

type GradeResponse struct {
	ID           uuid.UUID `json:"id"`
	SchoolID     uuid.UUID `json:"school_id"`
	GradeLevel   int       `json:"grade_level"`
	Section      string    `json:"section"`
	AcademicYear string    `json:"academic_year"`
	SchoolName   string    `json:"school_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromModel(m *model.GradeModel) GradeResponse {
	resp := GradeResponse{
		ID:           m.ID,
		SchoolID:     m.SchoolID,
		GradeLevel:   m.GradeLevel,
		Section:      m.Section,
		AcademicYear: m.AcademicYear,
		CreatedAt:    m.CreatedAt,
	}
	if m.School != nil {
		resp.SchoolName = m.School.SchoolName
	}
	return resp
}

func FromModels(ms []model.GradeModel) []GradeResponse {
	out := make([]GradeResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
