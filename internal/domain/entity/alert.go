package entity

import (
	"time"

	"github.com/google/uuid"
)

// Alert is an emergency notice raised for a patient.
type Alert struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Address   string    `gorm:"type:text" json:"address,omitempty"`
	Phone     string    `gorm:"type:varchar(32)" json:"phone,omitempty"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Alert) TableName() string {
	return "alerts"
}
