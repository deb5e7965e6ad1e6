package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/modules/model"
)

type ModuleCreateRequest struct {
	SchoolID    *uuid.UUID `json:"school_id"` // honored for superadmin only
	GradeID     uuid.UUID  `json:"grade_id" validate:"required"`
	ModuleName  string     `json:"module_name" validate:"required,max=100"`
	Description string     `json:"description"`
}

func (r *ModuleCreateRequest) ToModel() *model.ModuleModel {
	m := &model.ModuleModel{
		GradeID:     r.GradeID,
		ModuleName:  r.ModuleName,
		Description: r.Description,
	}
	if r.SchoolID != nil {
		m.SchoolID = *r.SchoolID
	}
	return m
}

type ModuleUpdateRequest struct {
	SchoolID    *uuid.UUID `json:"school_id"`
	GradeID     *uuid.UUID `json:"grade_id"`
	ModuleName  *string    `json:"module_name" validate:"omitempty,max=100"`
	Description *string    `json:"description"`
}

func (r *ModuleUpdateRequest) ApplyTo(m *model.ModuleModel) {
	if r.SchoolID != nil {
		m.SchoolID = *r.SchoolID
	}
	if r.GradeID != nil {
		m.GradeID = *r.GradeID
	}
	if r.ModuleName != nil {
		m.ModuleName = *r.ModuleName
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
}

type ModuleResponse struct {
	ID          uuid.UUID `json:"id"`
	SchoolID    uuid.UUID `json:"school_id"`
	GradeID     uuid.UUID `json:"grade_id"`
	ModuleName  string    `json:"module_name"`
	Description string    `json:"description"`
	GradeLevel  int       `json:"grade_level,omitempty"`
	Section     string    `json:"section,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromModel(m *model.ModuleModel) ModuleResponse {
	resp := ModuleResponse{
		ID:          m.ID,
		SchoolID:    m.SchoolID,
		GradeID:     m.GradeID,
		ModuleName:  m.ModuleName,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
	if m.Grade != nil {
		resp.GradeLevel = m.Grade.GradeLevel
		resp.Section = m.Grade.Section
	}
	return resp
}

func FromModels(ms []model.ModuleModel) []ModuleResponse {
	out := make([]ModuleResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
