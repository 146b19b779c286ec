package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateVitalRequest carries the 13 model features. Patient and Patients are merged.
type CreateVitalRequest struct {
	Age      *int     `json:"age" validate:"required,gte=0"`
	Sex      *int     `json:"sex" validate:"required,oneof=0 1"`
	Cp       *int     `json:"cp" validate:"required"`
	Trestbps *float64 `json:"trestbps" validate:"required"`
	Chol     *float64 `json:"chol" validate:"required"`
	Fbs      *int     `json:"fbs" validate:"required,oneof=0 1"`
	Restecg  *int     `json:"restecg" validate:"required"`
	Thalach  *float64 `json:"thalach" validate:"required"`
	Exang    *int     `json:"exang" validate:"required,oneof=0 1"`
	Oldpeak  *float64 `json:"oldpeak" validate:"required"`
	Slope    *int     `json:"slope" validate:"required"`
	Ca       *int     `json:"ca" validate:"required"`
	Thal     *int     `json:"thal" validate:"required"`
	Num      *int     `json:"num" validate:"omitempty,oneof=0 1"`
	Patient  *string  `json:"patient" validate:"omitempty,uuid"`
	Patients []string `json:"patients" validate:"omitempty,dive,uuid"`
}

type UpdateVitalRequest struct {
	ID       uuid.UUID `json:"id"`
	Age      *int      `json:"age" validate:"omitempty,gte=0"`
	Sex      *int      `json:"sex" validate:"omitempty,oneof=0 1"`
	Cp       *int      `json:"cp"`
	Trestbps *float64  `json:"trestbps"`
	Chol     *float64  `json:"chol"`
	Fbs      *int      `json:"fbs" validate:"omitempty,oneof=0 1"`
	Restecg  *int      `json:"restecg"`
	Thalach  *float64  `json:"thalach"`
	Exang    *int      `json:"exang" validate:"omitempty,oneof=0 1"`
	Oldpeak  *float64  `json:"oldpeak"`
	Slope    *int      `json:"slope"`
	Ca       *int      `json:"ca"`
	Thal     *int      `json:"thal"`
	Num      *int      `json:"num" validate:"omitempty,oneof=0 1"`
	Patient  *string   `json:"patient" validate:"omitempty,uuid"`
	Patients []string  `json:"patients" validate:"omitempty,dive,uuid"`
}

func (r *UpdateVitalRequest) HasChanges() bool {
	return r.Age != nil || r.Sex != nil || r.Cp != nil || r.Trestbps != nil || r.Chol != nil ||
		r.Fbs != nil || r.Restecg != nil || r.Thalach != nil || r.Exang != nil || r.Oldpeak != nil ||
		r.Slope != nil || r.Ca != nil || r.Thal != nil || r.Num != nil || r.HasPatients()
}

// HasPatients reports whether the request replaces the patient list.
func (r *UpdateVitalRequest) HasPatients() bool {
	return r.Patient != nil || r.Patients != nil
}

// Response DTOs

type VitalResponse struct {
	ID         uuid.UUID   `json:"id"`
	Age        int         `json:"age"`
	Sex        int         `json:"sex"`
	Cp         int         `json:"cp"`
	Trestbps   float64     `json:"trestbps"`
	Chol       float64     `json:"chol"`
	Fbs        int         `json:"fbs"`
	Restecg    int         `json:"restecg"`
	Thalach    float64     `json:"thalach"`
	Exang      int         `json:"exang"`
	Oldpeak    float64     `json:"oldpeak"`
	Slope      int         `json:"slope"`
	Ca         int         `json:"ca"`
	Thal       int         `json:"thal"`
	Num        *int        `json:"num,omitempty"`
	UpdateDate time.Time   `json:"update_date"`
	Patients   []uuid.UUID `json:"patients"`
}

type PredictionResponse struct {
	Vital VitalResponse `json:"vital"`
	Label int           `json:"label"`
	Score float64       `json:"score"`
}
