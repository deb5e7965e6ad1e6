package model

import (
	"time"

	"github.com/google/uuid"
)

// SchoolModel is the tenant root: every other business table hangs off a
// school_id referencing this table.
type SchoolModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SchoolCode string    `gorm:"size:20;uniqueIndex;not null" json:"school_code"`
	SchoolName string    `gorm:"size:100;not null" json:"school_name"`
	Address    string    `gorm:"size:255" json:"address"`
	Phone      string    `gorm:"size:20" json:"phone"`
	Email      string    `gorm:"size:255" json:"email"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SchoolModel) TableName() string {
	return "schools"
}
