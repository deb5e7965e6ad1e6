package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/schools/model"
)

type SchoolCreateRequest struct {
	SchoolCode string `json:"school_code" validate:"required,max=20"`
	SchoolName string `json:"school_name" validate:"required,max=100"`
	Address    string `json:"address" validate:"max=255"`
	Phone      string `json:"phone" validate:"max=20"`
	Email      string `json:"email" validate:"omitempty,email"`
}

func (r *SchoolCreateRequest) ToModel() *model.SchoolModel {
	return &model.SchoolModel{
		SchoolCode: r.SchoolCode,
		SchoolName: r.SchoolName,
		Address:    r.Address,
		Phone:      r.Phone,
		Email:      r.Email,
	}
}

type SchoolUpdateRequest struct {
	SchoolCode *string `json:"school_code" validate:"omitempty,max=20"`
	SchoolName *string `json:"school_name" validate:"omitempty,max=100"`
	Address    *string `json:"address" validate:"omitempty,max=255"`
	Phone      *string `json:"phone" validate:"omitempty,max=20"`
	Email      *string `json:"email" validate:"omitempty,email"`
}

func (r *SchoolUpdateRequest) ApplyTo(m *model.SchoolModel) {
	if r.SchoolCode != nil {
		m.SchoolCode = *r.SchoolCode
	}
	if r.SchoolName != nil {
		m.SchoolName = *r.SchoolName
	}
	if r.Address != nil {
		m.Address = *r.Address
	}
	if r.Phone != nil {
		m.Phone = *r.Phone
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
}

type SchoolResponse struct {
	ID         uuid.UUID `json:"id"`
	SchoolCode string    `json:"school_code"`
	SchoolName string    `json:"school_name"`
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromModel(m *model.SchoolModel) SchoolResponse {
	return SchoolResponse{
		ID:         m.ID,
		SchoolCode: m.SchoolCode,
		SchoolName: m.SchoolName,
		Address:    m.Address,
		Phone:      m.Phone,
		Email:      m.Email,
		CreatedAt:  m.CreatedAt,
	}
}

func FromModels(ms []model.SchoolModel) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
