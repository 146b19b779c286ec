package usecase

import (
	"context"
	"time"

	"health-monitor-api/internal/converter"
	"health-monitor-api/internal/delivery/dto"
	"health-monitor-api/internal/domain/entity"
	"health-monitor-api/internal/domain/repository"
	"health-monitor-api/internal/service"
	"health-monitor-api/pkg/apperror"
	"health-monitor-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type VitalUsecase interface {
	CreateVital(ctx context.Context, req *dto.CreateVitalRequest) (*dto.VitalResponse, error)
	GetVitals(ctx context.Context, patientID *uuid.UUID) ([]dto.VitalResponse, error)
	UpdateVital(ctx context.Context, req *dto.UpdateVitalRequest) (*dto.VitalResponse, error)
	DeleteVital(ctx context.Context, id uuid.UUID) (*dto.VitalResponse, error)
}

type vitalUsecase struct {
	log          *logrus.Logger
	validator    *validator.CustomValidator
	vitalRepo    repository.VitalRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewVitalUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	vitalRepo repository.VitalRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) VitalUsecase {
	return &vitalUsecase{
		log:          log,
		validator:    validator,
		vitalRepo:    vitalRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *vitalUsecase) CreateVital(ctx context.Context, req *dto.CreateVitalRequest) (*dto.VitalResponse, error) {
	if err := u.validator.Check(req); err != nil {
		return nil, err
	}

	patientIDs, err := mergePatients(req.Patient, req.Patients)
	if err != nil {
		return nil, err
	}
	if len(patientIDs) == 0 {
		return nil, fieldError("patients", "patients is required")
	}
	if err := ensurePatientsExist(ctx, u.log, u.userRepo, patientIDs...); err != nil {
		return nil, err
	}

	vital := &entity.Vital{
		ID:         uuid.New(),
		Age:        *req.Age,
		Sex:        *req.Sex,
		Cp:         *req.Cp,
		Trestbps:   *req.Trestbps,
		Chol:       *req.Chol,
		Fbs:        *req.Fbs,
		Restecg:    *req.Restecg,
		Thalach:    *req.Thalach,
		Exang:      *req.Exang,
		Oldpeak:    *req.Oldpeak,
		Slope:      *req.Slope,
		Ca:         *req.Ca,
		Thal:       *req.Thal,
		Num:        req.Num,
		UpdateDate: time.Now(),
	}
	vital.SetPatients(patientIDs)

	if err := u.vitalRepo.Create(ctx, vital); err != nil {
		u.log.Warnf("Failed to create vital: %+v", err)
		return nil, apperror.Dependency("failed to create vital", err)
	}

	response := converter.VitalToResponse(vital)
	if err := u.auditService.LogCreate(ctx, ActorFrom(ctx), entity.AuditActionVitalCreate, "vital", vital.ID.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *vitalUsecase) GetVitals(ctx context.Context, patientID *uuid.UUID) ([]dto.VitalResponse, error) {
	vitals, err := u.vitalRepo.FindAll(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find vitals: %+v", err)
		return nil, apperror.Dependency("failed to find vitals", err)
	}
	if len(vitals) == 0 {
		return nil, ErrNoVitalsFound
	}

	return converter.VitalsToResponses(vitals), nil
}

func (u *vitalUsecase) UpdateVital(ctx context.Context, req *dto.UpdateVitalRequest) (*dto.VitalResponse, error) {
	if err := u.validator.Check(req); err != nil {
		return nil, err
	}
	if !req.HasChanges() {
		return nil, ErrNoUpdateFields
	}

	vital, err := u.findVital(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	oldValue := converter.VitalToResponse(vital)

	if req.HasPatients() {
		patientIDs, err := mergePatients(req.Patient, req.Patients)
		if err != nil {
			return nil, err
		}
		if len(patientIDs) == 0 {
			return nil, fieldError("patients", "patients must not be empty")
		}
		if err := ensurePatientsExist(ctx, u.log, u.userRepo, patientIDs...); err != nil {
			return nil, err
		}
		vital.SetPatients(patientIDs)
	}

	applyVitalChanges(vital, req)
	vital.UpdateDate = time.Now()

	if err := u.vitalRepo.Update(ctx, vital, req.HasPatients()); err != nil {
		u.log.Warnf("Failed to update vital: %+v", err)
		return nil, apperror.Dependency("failed to update vital", err)
	}

	response := converter.VitalToResponse(vital)
	if err := u.auditService.LogUpdate(ctx, ActorFrom(ctx), entity.AuditActionVitalUpdate, "vital", vital.ID.String(), oldValue, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *vitalUsecase) DeleteVital(ctx context.Context, id uuid.UUID) (*dto.VitalResponse, error) {
	vital, err := u.findVital(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.vitalRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete vital: %+v", err)
		return nil, apperror.Dependency("failed to delete vital", err)
	}

	response := converter.VitalToResponse(vital)
	if err := u.auditService.LogDelete(ctx, ActorFrom(ctx), entity.AuditActionVitalDelete, "vital", id.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *vitalUsecase) findVital(ctx context.Context, id uuid.UUID) (*entity.Vital, error) {
	vital, err := u.vitalRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find vital by id: %+v", err)
		return nil, apperror.Dependency("failed to find vital", err)
	}
	if vital == nil {
		return nil, ErrVitalNotFound
	}
	return vital, nil
}

func applyVitalChanges(vital *entity.Vital, req *dto.UpdateVitalRequest) {
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}

	setInt(&vital.Age, req.Age)
	setInt(&vital.Sex, req.Sex)
	setInt(&vital.Cp, req.Cp)
	setFloat(&vital.Trestbps, req.Trestbps)
	setFloat(&vital.Chol, req.Chol)
	setInt(&vital.Fbs, req.Fbs)
	setInt(&vital.Restecg, req.Restecg)
	setFloat(&vital.Thalach, req.Thalach)
	setInt(&vital.Exang, req.Exang)
	setFloat(&vital.Oldpeak, req.Oldpeak)
	setInt(&vital.Slope, req.Slope)
	setInt(&vital.Ca, req.Ca)
	setInt(&vital.Thal, req.Thal)
	if req.Num != nil {
		vital.Num = req.Num
	}
}
