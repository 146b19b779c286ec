package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateUserRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required"`
	Roles       []string `json:"roles" validate:"omitempty,dive,oneof=Patient Nurse Admin"`
	FirstName   string   `json:"firstName" validate:"required"`
	LastName    string   `json:"lastName" validate:"required"`
	Active      *bool    `json:"active"`
	Gender      *string  `json:"gender" validate:"omitempty,oneof=M F"`
	DateOfBirth *string  `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateUserRequest struct {
	ID          uuid.UUID `json:"id"`
	Email       *string   `json:"email" validate:"omitempty,email"`
	Password    *string   `json:"password" validate:"omitempty,min=1"`
	Roles       []string  `json:"roles" validate:"omitempty,dive,oneof=Patient Nurse Admin"`
	FirstName   *string   `json:"firstName" validate:"omitempty,min=1"`
	LastName    *string   `json:"lastName" validate:"omitempty,min=1"`
	Active      *bool     `json:"active"`
	Gender      *string   `json:"gender" validate:"omitempty,oneof=M F"`
	DateOfBirth *string   `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
}

// HasChanges reports whether any field besides the id was supplied.
func (r *UpdateUserRequest) HasChanges() bool {
	return r.Email != nil || r.Password != nil || r.Roles != nil || r.FirstName != nil ||
		r.LastName != nil || r.Active != nil || r.Gender != nil || r.DateOfBirth != nil
}

// Response DTOs

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Roles       []string  `json:"roles"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Active      bool      `json:"active"`
	Gender      *string   `json:"gender,omitempty"`
	DateOfBirth *string   `json:"date_of_birth,omitempty"` // Format: YYYY-MM-DD
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
