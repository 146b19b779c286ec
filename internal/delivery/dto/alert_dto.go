package dto

import "github.com/google/uuid"

// Request DTOs

type CreateAlertRequest struct {
	Message string  `json:"message" validate:"required"`
	Address *string `json:"address"`
	Phone   *string `json:"phone" validate:"omitempty,max=32"`
	Patient string  `json:"patient" validate:"required,uuid"`
}

type UpdateAlertRequest struct {
	ID      uuid.UUID `json:"id"`
	Message *string   `json:"message" validate:"omitempty,min=1"`
	Address *string   `json:"address"`
	Phone   *string   `json:"phone" validate:"omitempty,max=32"`
	Patient *string   `json:"patient" validate:"omitempty,uuid"`
}

func (r *UpdateAlertRequest) HasChanges() bool {
	return r.Message != nil || r.Address != nil || r.Phone != nil || r.Patient != nil
}

// Response DTOs

type AlertResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
	Address string    `json:"address,omitempty"`
	Phone   string    `json:"phone,omitempty"`
	Patient uuid.UUID `json:"patient"`
}
