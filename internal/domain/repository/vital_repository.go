package repository

import (
	"context"

	"health-monitor-api/internal/domain/entity"

	"github.com/google/uuid"
)

type VitalRepository interface {
	Create(ctx context.Context, vital *entity.Vital) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vital, error)
	// FindAll lists vitals, restricted to one patient when patientID is set.
	FindAll(ctx context.Context, patientID *uuid.UUID) ([]entity.Vital, error)
	// FindLatestByPatient returns the most recently updated vital linked to the patient.
	FindLatestByPatient(ctx context.Context, patientID uuid.UUID) (*entity.Vital, error)
	// Update saves the scalar columns, and the patient links too when replacePatients is set.
	Update(ctx context.Context, vital *entity.Vital, replacePatients bool) error
	UpdateLabel(ctx context.Context, id uuid.UUID, num int) error
	Delete(ctx context.Context, id uuid.UUID) error
}
