package repository

import (
	"context"

	"health-monitor-api/internal/domain/entity"

	"github.com/google/uuid"
)

type TipRepository interface {
	Create(ctx context.Context, tip *entity.Tip) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tip, error)
	FindAll(ctx context.Context) ([]entity.Tip, error)
	Update(ctx context.Context, tip *entity.Tip) error
	Delete(ctx context.Context, id uuid.UUID) error
}
