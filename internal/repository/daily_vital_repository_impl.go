package repository

import (
	"context"
	"errors"

	"health-monitor-api/internal/domain/entity"
	domainRepo "health-monitor-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type dailyVitalRepository struct {
	db *gorm.DB
}

func NewDailyVitalRepository(db *gorm.DB) domainRepo.DailyVitalRepository {
	return &dailyVitalRepository{db: db}
}

func (r *dailyVitalRepository) Create(ctx context.Context, dailyVital *entity.DailyVital) error {
	return r.db.WithContext(ctx).Create(dailyVital).Error
}

func (r *dailyVitalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DailyVital, error) {
	var dailyVital entity.DailyVital
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dailyVital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dailyVital, nil
}

func (r *dailyVitalRepository) FindAll(ctx context.Context, patientID *uuid.UUID) ([]entity.DailyVital, error) {
	var dailyVitals []entity.DailyVital
	query := r.db.WithContext(ctx)
	if patientID != nil {
		query = query.Where("patient_id = ?", *patientID)
	}
	if err := query.Order("update_date DESC").Find(&dailyVitals).Error; err != nil {
		return nil, err
	}
	return dailyVitals, nil
}

func (r *dailyVitalRepository) Update(ctx context.Context, dailyVital *entity.DailyVital) error {
	return r.db.WithContext(ctx).Save(dailyVital).Error
}

func (r *dailyVitalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.DailyVital{}).Error
}
