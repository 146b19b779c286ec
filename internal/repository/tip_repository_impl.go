package repository

import (
	"context"
	"errors"

	"health-monitor-api/internal/domain/entity"
	domainRepo "health-monitor-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type tipRepository struct {
	db *gorm.DB
}

func NewTipRepository(db *gorm.DB) domainRepo.TipRepository {
	return &tipRepository{db: db}
}

func (r *tipRepository) Create(ctx context.Context, tip *entity.Tip) error {
	return r.db.WithContext(ctx).Create(tip).Error
}

func (r *tipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tip, error) {
	var tip entity.Tip
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tip, nil
}

func (r *tipRepository) FindAll(ctx context.Context) ([]entity.Tip, error) {
	var tips []entity.Tip
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}

func (r *tipRepository) Update(ctx context.Context, tip *entity.Tip) error {
	return r.db.WithContext(ctx).Save(tip).Error
}

func (r *tipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Tip{}).Error
}
