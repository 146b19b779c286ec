package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User is a patient or staff member. Patients are referenced by vitals, daily vitals and alerts.
type User struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email       string                      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string                      `gorm:"type:text;not null" json:"-"`
	Roles       datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"roles"`
	FirstName   string                      `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName    string                      `gorm:"type:varchar(255);not null" json:"last_name"`
	Active      *bool                       `gorm:"not null;default:true" json:"active"`
	Gender      *string                     `gorm:"type:char(1)" json:"gender,omitempty"`
	DateOfBirth *time.Time                  `gorm:"type:date" json:"date_of_birth,omitempty"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsActive() bool {
	return u.Active == nil || *u.Active
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
