package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDailyVitalRequest struct {
	PulseRate     *float64 `json:"pulseRate" validate:"required,gte=0,lte=9999.99"`
	BloodPressure *float64 `json:"bloodPressure" validate:"required,gte=0,lte=9999.99"`
	Weight        *float64 `json:"weight" validate:"required,gte=0,lte=9999.99"`
	Temperature   *float64 `json:"temperature" validate:"required,gte=0,lte=9999.99"`
	RespRate      *float64 `json:"respRate" validate:"required,gte=0,lte=9999.99"`
	Patient       string   `json:"patient" validate:"required,uuid"`
}

type UpdateDailyVitalRequest struct {
	ID            uuid.UUID `json:"id"`
	PulseRate     *float64  `json:"pulseRate" validate:"omitempty,gte=0,lte=9999.99"`
	BloodPressure *float64  `json:"bloodPressure" validate:"omitempty,gte=0,lte=9999.99"`
	Weight        *float64  `json:"weight" validate:"omitempty,gte=0,lte=9999.99"`
	Temperature   *float64  `json:"temperature" validate:"omitempty,gte=0,lte=9999.99"`
	RespRate      *float64  `json:"respRate" validate:"omitempty,gte=0,lte=9999.99"`
	Patient       *string   `json:"patient" validate:"omitempty,uuid"`
}

func (r *UpdateDailyVitalRequest) HasChanges() bool {
	return r.PulseRate != nil || r.BloodPressure != nil || r.Weight != nil ||
		r.Temperature != nil || r.RespRate != nil || r.Patient != nil
}

// Response DTOs

type DailyVitalResponse struct {
	ID            uuid.UUID       `json:"id"`
	PulseRate     decimal.Decimal `json:"pulse_rate"`
	BloodPressure decimal.Decimal `json:"blood_pressure"`
	Weight        decimal.Decimal `json:"weight"`
	Temperature   decimal.Decimal `json:"temperature"`
	RespRate      decimal.Decimal `json:"resp_rate"`
	UpdateDate    time.Time       `json:"update_date"`
	Patient       uuid.UUID       `json:"patient"`
}
