package repository

import (
	"context"

	"health-monitor-api/internal/domain/entity"

	"github.com/google/uuid"
)

type AlertRepository interface {
	Create(ctx context.Context, alert *entity.Alert) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error)
	FindAll(ctx context.Context, patientID *uuid.UUID) ([]entity.Alert, error)
	Update(ctx context.Context, alert *entity.Alert) error
	Delete(ctx context.Context, id uuid.UUID) error
}
