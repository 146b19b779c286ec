package usecase

import (
	"context"

	"health-monitor-api/internal/converter"
	"health-monitor-api/internal/delivery/dto"
	"health-monitor-api/internal/domain/entity"
	"health-monitor-api/internal/domain/repository"
	"health-monitor-api/internal/infrastructure/messaging"
	"health-monitor-api/internal/service"
	"health-monitor-api/pkg/apperror"
	"health-monitor-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AlertUsecase interface {
	CreateAlert(ctx context.Context, req *dto.CreateAlertRequest) (*dto.AlertResponse, error)
	GetAlerts(ctx context.Context, patientID *uuid.UUID) ([]dto.AlertResponse, error)
	UpdateAlert(ctx context.Context, req *dto.UpdateAlertRequest) (*dto.AlertResponse, error)
	DeleteAlert(ctx context.Context, id uuid.UUID) (*dto.AlertResponse, error)
}

type alertUsecase struct {
	log          *logrus.Logger
	validator    *validator.CustomValidator
	alertRepo    repository.AlertRepository
	userRepo     repository.UserRepository
	publisher    messaging.Publisher
	auditService service.AuditService
}

func NewAlertUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	alertRepo repository.AlertRepository,
	userRepo repository.UserRepository,
	publisher messaging.Publisher,
	auditService service.AuditService,
) AlertUsecase {
	return &alertUsecase{
		log:          log,
		validator:    validator,
		alertRepo:    alertRepo,
		userRepo:     userRepo,
		publisher:    publisher,
		auditService: auditService,
	}
}

func (u *alertUsecase) CreateAlert(ctx context.Context, req *dto.CreateAlertRequest) (*dto.AlertResponse, error) {
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

	alert := &entity.Alert{
		Message:   req.Message,
		PatientID: patientID,
	}
	if req.Address != nil {
		alert.Address = *req.Address
	}
	if req.Phone != nil {
		alert.Phone = *req.Phone
	}

	if err := u.alertRepo.Create(ctx, alert); err != nil {
		u.log.Warnf("Failed to create alert: %+v", err)
		return nil, apperror.Dependency("failed to create alert", err)
	}

	event := messaging.AlertEvent{
		Type:      messaging.EventAlertCreated,
		AlertID:   alert.ID,
		PatientID: alert.PatientID,
		Message:   alert.Message,
		Address:   alert.Address,
		Phone:     alert.Phone,
		CreatedAt: alert.CreatedAt,
	}
	if err := u.publisher.PublishAlert(ctx, event); err != nil {
		u.log.Warnf("Failed to publish alert %s: %+v", alert.ID, err)
	}

	response := converter.AlertToResponse(alert)
	if err := u.auditService.LogCreate(ctx, ActorFrom(ctx), entity.AuditActionAlertCreate, "alert", alert.ID.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *alertUsecase) GetAlerts(ctx context.Context, patientID *uuid.UUID) ([]dto.AlertResponse, error) {
	alerts, err := u.alertRepo.FindAll(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find alerts: %+v", err)
		return nil, apperror.Dependency("failed to find alerts", err)
	}
	if len(alerts) == 0 {
		return nil, ErrNoAlertsFound
	}

	return converter.AlertsToResponses(alerts), nil
}

func (u *alertUsecase) UpdateAlert(ctx context.Context, req *dto.UpdateAlertRequest) (*dto.AlertResponse, error) {
	if err := u.validator.Check(req); err != nil {
		return nil, err
	}
	if !req.HasChanges() {
		return nil, ErrNoUpdateFields
	}

	alert, err := u.findAlert(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	oldValue := converter.AlertToResponse(alert)

	if req.Patient != nil {
		patientID, err := parsePatient(*req.Patient)
		if err != nil {
			return nil, err
		}
		if err := ensurePatientsExist(ctx, u.log, u.userRepo, patientID); err != nil {
			return nil, err
		}
		alert.PatientID = patientID
	}
	if req.Message != nil {
		alert.Message = *req.Message
	}
	if req.Address != nil {
		alert.Address = *req.Address
	}
	if req.Phone != nil {
		alert.Phone = *req.Phone
	}

	if err := u.alertRepo.Update(ctx, alert); err != nil {
		u.log.Warnf("Failed to update alert: %+v", err)
		return nil, apperror.Dependency("failed to update alert", err)
	}

	response := converter.AlertToResponse(alert)
	if err := u.auditService.LogUpdate(ctx, ActorFrom(ctx), entity.AuditActionAlertUpdate, "alert", alert.ID.String(), oldValue, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *alertUsecase) DeleteAlert(ctx context.Context, id uuid.UUID) (*dto.AlertResponse, error) {
	alert, err := u.findAlert(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.alertRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete alert: %+v", err)
		return nil, apperror.Dependency("failed to delete alert", err)
	}

	response := converter.AlertToResponse(alert)
	if err := u.auditService.LogDelete(ctx, ActorFrom(ctx), entity.AuditActionAlertDelete, "alert", id.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *alertUsecase) findAlert(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	alert, err := u.alertRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find alert by id: %+v", err)
		return nil, apperror.Dependency("failed to find alert", err)
	}
	if alert == nil {
		return nil, ErrAlertNotFound
	}
	return alert, nil
}
