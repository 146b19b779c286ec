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
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// measurement rounds to the numeric(6,2) column scale.
func measurement(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

type DailyVitalUsecase interface {
	CreateDailyVital(ctx context.Context, req *dto.CreateDailyVitalRequest) (*dto.DailyVitalResponse, error)
	GetDailyVitals(ctx context.Context, patientID *uuid.UUID) ([]dto.DailyVitalResponse, error)
	UpdateDailyVital(ctx context.Context, req *dto.UpdateDailyVitalRequest) (*dto.DailyVitalResponse, error)
	DeleteDailyVital(ctx context.Context, id uuid.UUID) (*dto.DailyVitalResponse, error)
}

type dailyVitalUsecase struct {
	log            *logrus.Logger
	validator      *validator.CustomValidator
	dailyVitalRepo repository.DailyVitalRepository
	userRepo       repository.UserRepository
	auditService   service.AuditService
}

func NewDailyVitalUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	dailyVitalRepo repository.DailyVitalRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) DailyVitalUsecase {
	return &dailyVitalUsecase{
		log:            log,
		validator:      validator,
		dailyVitalRepo: dailyVitalRepo,
		userRepo:       userRepo,
		auditService:   auditService,
	}
}

func (u *dailyVitalUsecase) CreateDailyVital(ctx context.Context, req *dto.CreateDailyVitalRequest) (*dto.DailyVitalResponse, error) {
	if err := u.validator.Check(req); err != nil {
		return nil, err
	}

	patientID, err := parsePatient(req.Patient)
	if err != nil {
		return nil, err
	}
	if err := ensurePatientsExist(ctx, u.log, u.userRepo, patientID); err != nil {
		return nil, err
	}

	dailyVital := &entity.DailyVital{
		PulseRate:     measurement(*req.PulseRate),
		BloodPressure: measurement(*req.BloodPressure),
		Weight:        measurement(*req.Weight),
		Temperature:   measurement(*req.Temperature),
		RespRate:      measurement(*req.RespRate),
		UpdateDate:    time.Now(),
		PatientID:     patientID,
	}

	if err := u.dailyVitalRepo.Create(ctx, dailyVital); err != nil {
		u.log.Warnf("Failed to create daily vital: %+v", err)
		return nil, apperror.Dependency("failed to create daily vital", err)
	}

	response := converter.DailyVitalToResponse(dailyVital)
	if err := u.auditService.LogCreate(ctx, ActorFrom(ctx), entity.AuditActionDailyVitalCreate, "daily_vital", dailyVital.ID.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *dailyVitalUsecase) GetDailyVitals(ctx context.Context, patientID *uuid.UUID) ([]dto.DailyVitalResponse, error) {
	dailyVitals, err := u.dailyVitalRepo.FindAll(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find daily vitals: %+v", err)
		return nil, apperror.Dependency("failed to find daily vitals", err)
	}
	if len(dailyVitals) == 0 {
		return nil, ErrNoDailyVitalsFound
	}

	return converter.DailyVitalsToResponses(dailyVitals), nil
}

func (u *dailyVitalUsecase) UpdateDailyVital(ctx context.Context, req *dto.UpdateDailyVitalRequest) (*dto.DailyVitalResponse, error) {
	if err := u.validator.Check(req); err != nil {
		return nil, err
	}
	if !req.HasChanges() {
		return nil, ErrNoUpdateFields
	}

	dailyVital, err := u.findDailyVital(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	oldValue := converter.DailyVitalToResponse(dailyVital)

	if req.Patient != nil {
		patientID, err := parsePatient(*req.Patient)
		if err != nil {
			return nil, err
		}
		if err := ensurePatientsExist(ctx, u.log, u.userRepo, patientID); err != nil {
			return nil, err
		}
		dailyVital.PatientID = patientID
	}

	set := func(dst *decimal.Decimal, src *float64) {
		if src != nil {
			*dst = measurement(*src)
		}
	}
	set(&dailyVital.PulseRate, req.PulseRate)
	set(&dailyVital.BloodPressure, req.BloodPressure)
	set(&dailyVital.Weight, req.Weight)
	set(&dailyVital.Temperature, req.Temperature)
	set(&dailyVital.RespRate, req.RespRate)
	dailyVital.UpdateDate = time.Now()

	if err := u.dailyVitalRepo.Update(ctx, dailyVital); err != nil {
		u.log.Warnf("Failed to update daily vital: %+v", err)
		return nil, apperror.Dependency("failed to update daily vital", err)
	}

	response := converter.DailyVitalToResponse(dailyVital)
	if err := u.auditService.LogUpdate(ctx, ActorFrom(ctx), entity.AuditActionDailyVitalUpdate, "daily_vital", dailyVital.ID.String(), oldValue, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *dailyVitalUsecase) DeleteDailyVital(ctx context.Context, id uuid.UUID) (*dto.DailyVitalResponse, error) {
	dailyVital, err := u.findDailyVital(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.dailyVitalRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete daily vital: %+v", err)
		return nil, apperror.Dependency("failed to delete daily vital", err)
	}

	response := converter.DailyVitalToResponse(dailyVital)
	if err := u.auditService.LogDelete(ctx, ActorFrom(ctx), entity.AuditActionDailyVitalDelete, "daily_vital", id.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *dailyVitalUsecase) findDailyVital(ctx context.Context, id uuid.UUID) (*entity.DailyVital, error) {
	dailyVital, err := u.dailyVitalRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find daily vital by id: %+v", err)
		return nil, apperror.Dependency("failed to find daily vital", err)
	}
	if dailyVital == nil {
		return nil, ErrDailyVitalNotFound
	}
	return dailyVital, nil
}
