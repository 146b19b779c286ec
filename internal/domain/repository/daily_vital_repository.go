package repository

import (
	"context"

	"health-monitor-api/internal/domain/entity"

	"github.com/google/uuid"
)

type DailyVitalRepository interface {
	Create(ctx context.Context, dailyVital *entity.DailyVital) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DailyVital, error)
	FindAll(ctx context.Context, patientID *uuid.UUID) ([]entity.DailyVital, error)
	Update(ctx context.Context, dailyVital *entity.DailyVital) error
	Delete(ctx context.Context, id uuid.UUID) error
}
