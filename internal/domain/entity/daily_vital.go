package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyVital is a routine measurement taken for a single patient.
type DailyVital struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PulseRate     decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"pulse_rate"`
	BloodPressure decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"blood_pressure"`
	Weight        decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"weight"`
	Temperature   decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"temperature"`
	RespRate      decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"resp_rate"`
	UpdateDate    time.Time       `gorm:"not null;index" json:"update_date"`
	PatientID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DailyVital) TableName() string {
	return "daily_vitals"
}
