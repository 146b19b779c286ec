package repository

import (
	"context"
	"errors"

	"health-monitor-api/internal/domain/entity"
	domainRepo "health-monitor-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) domainRepo.AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	var alert entity.Alert
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&alert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &alert, nil
}

func (r *alertRepository) FindAll(ctx context.Context, patientID *uuid.UUID) ([]entity.Alert, error) {
	var alerts []entity.Alert
	query := r.db.WithContext(ctx)
	if patientID != nil {
		query = query.Where("patient_id = ?", *patientID)
	}
	if err := query.Order("created_at DESC").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepository) Update(ctx context.Context, alert *entity.Alert) error {
	return r.db.WithContext(ctx).Save(alert).Error
}

func (r *alertRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Alert{}).Error
}
