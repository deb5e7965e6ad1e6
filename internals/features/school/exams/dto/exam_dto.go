package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/exams/model"
)

type ExamCreateRequest struct {
	SchoolID *uuid.UUID `json:"school_id"` // honored for superadmin only
	Title    string     `json:"title" validate:"required,max=150"`
	ExamDate *time.Time `json:"exam_date"`
	MaxScore int        `json:"max_score" validate:"min=1"`
	ModuleID *uuid.UUID `json:"module_id"`
	GradeID  *uuid.UUID `json:"grade_id"`
}

func (r *ExamCreateRequest) ToModel() *model.ExamModel {
	m := &model.ExamModel{
		Title:    r.Title,
		ExamDate: r.ExamDate,
		MaxScore: r.MaxScore,
		ModuleID: r.ModuleID,
		GradeID:  r.GradeID,
	}
	if m.MaxScore == 0 {
		m.MaxScore = 100
	}
	if r.SchoolID != nil {
		m.SchoolID = *r.SchoolID
	}
	return m
}

type ExamUpdateRequest struct {
	SchoolID *uuid.UUID `json:"school_id"`
	Title    *string    `json:"title" validate:"omitempty,max=150"`
	ExamDate *time.Time `json:"exam_date"`
	MaxScore *int       `json:"max_score" validate:"omitempty,min=1"`
	ModuleID *uuid.UUID `json:"module_id"`
	GradeID  *uuid.UUID `json:"grade_id"`
}

func (r *ExamUpdateRequest) ApplyTo(m *model.ExamModel) {
	if r.SchoolID != nil {
		m.SchoolID = *r.SchoolID
	}
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.ExamDate != nil {
		m.ExamDate = r.ExamDate
	}
	if r.MaxScore != nil {
		m.MaxScore = *r.MaxScore
	}
	if r.ModuleID != nil {
		m.ModuleID = r.ModuleID
	}
	if r.GradeID != nil {
		m.GradeID = r.GradeID
	}
}

type ExamResponse struct {
	ID         uuid.UUID  `json:"id"`
	SchoolID   uuid.UUID  `json:"school_id"`
	Title      string     `json:"title"`
	ExamDate   *time.Time `json:"exam_date,omitempty"`
	MaxScore   int        `json:"max_score"`
	ModuleID   *uuid.UUID `json:"module_id,omitempty"`
	GradeID    *uuid.UUID `json:"grade_id,omitempty"`
	ModuleName string     `json:"module_name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromModel(m *model.ExamModel) ExamResponse {
	resp := ExamResponse{
		ID:        m.ID,
		SchoolID:  m.SchoolID,
		Title:     m.Title,
		ExamDate:  m.ExamDate,
		MaxScore:  m.MaxScore,
		ModuleID:  m.ModuleID,
		GradeID:   m.GradeID,
		CreatedAt: m.CreatedAt,
	}
	if m.Module != nil {
		resp.ModuleName = m.Module.ModuleName
	}
	return resp
}

func FromModels(ms []model.ExamModel) []ExamResponse {
	out := make([]ExamResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
