package repository

import (
	"context"
	"errors"

	"health-monitor-api/internal/domain/entity"
	domainRepo "health-monitor-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vitalRepository struct {
	db *gorm.DB
}

func NewVitalRepository(db *gorm.DB) domainRepo.VitalRepository {
	return &vitalRepository{db: db}
}

func (r *vitalRepository) Create(ctx context.Context, vital *entity.Vital) error {
	return r.db.WithContext(ctx).Create(vital).Error
}

func (r *vitalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vital, error) {
	var vital entity.Vital
	err := r.db.WithContext(ctx).Preload("Patients").Where("id = ?", id).First(&vital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vital, nil
}

func (r *vitalRepository) FindAll(ctx context.Context, patientID *uuid.UUID) ([]entity.Vital, error) {
	var vitals []entity.Vital
	query := r.db.WithContext(ctx).Preload("Patients")
	if patientID != nil {
		query = query.Where("id IN (?)", r.db.Model(&entity.VitalPatient{}).Select("vital_id").Where("user_id = ?", *patientID))
	}
	if err := query.Order("update_date DESC").Find(&vitals).Error; err != nil {
		return nil, err
	}
	return vitals, nil
}

func (r *vitalRepository) FindLatestByPatient(ctx context.Context, patientID uuid.UUID) (*entity.Vital, error) {
	var vital entity.Vital
	err := r.db.WithContext(ctx).
		Preload("Patients").
		Joins("JOIN vital_patients ON vital_patients.vital_id = vitals.id").
		Where("vital_patients.user_id = ?", patientID).
		Order("vitals.update_date DESC").
		First(&vital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vital, nil
}

func (r *vitalRepository) Update(ctx context.Context, vital *entity.Vital, replacePatients bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Patients").Save(vital).Error; err != nil {
			return err
		}
		if !replacePatients {
			return nil
		}
		if err := tx.Where("vital_id = ?", vital.ID).Delete(&entity.VitalPatient{}).Error; err != nil {
			return err
		}
		if len(vital.Patients) == 0 {
			return nil
		}
		return tx.Create(&vital.Patients).Error
	})
}

func (r *vitalRepository) UpdateLabel(ctx context.Context, id uuid.UUID, num int) error {
	return r.db.WithContext(ctx).Model(&entity.Vital{}).Where("id = ?", id).Update("num", num).Error
}

func (r *vitalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vital_id = ?", id).Delete(&entity.VitalPatient{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Vital{}).Error
	})
}
