package dto

import "github.com/google/uuid"

// Request DTOs

type CreateTipRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type UpdateTipRequest struct {
	ID          uuid.UUID `json:"id"`
	Title       *string   `json:"title" validate:"omitempty,min=1"`
	Description *string   `json:"description" validate:"omitempty,min=1"`
}

func (r *UpdateTipRequest) HasChanges() bool {
	return r.Title != nil || r.Description != nil
}

// Response DTOs

type TipResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}
