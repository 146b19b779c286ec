package usecase

import (
	"context"

	"health-monitor-api/internal/converter"
	"health-monitor-api/internal/delivery/dto"
	"health-monitor-api/internal/domain/entity"
	"health-monitor-api/internal/domain/repository"
	"health-monitor-api/internal/infrastructure/ml"
	"health-monitor-api/internal/service"
	"health-monitor-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PositiveThreshold is the score above which a vital is labelled 1.
const PositiveThreshold = 0.5

type PredictionUsecase interface {
	Predict(ctx context.Context, userID uuid.UUID) (*dto.PredictionResponse, error)
}

type predictionUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	vitalRepo    repository.VitalRepository
	predictor    ml.Predictor
	auditService service.AuditService
}

func NewPredictionUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	vitalRepo repository.VitalRepository,
	predictor ml.Predictor,
	auditService service.AuditService,
) PredictionUsecase {
	return &predictionUsecase{
		log:          log,
		userRepo:     userRepo,
		vitalRepo:    vitalRepo,
		predictor:    predictor,
		auditService: auditService,
	}
}

// Predict scores the user's most recent vital and writes the label back onto it.
func (u *predictionUsecase) Predict(ctx context.Context, userID uuid.UUID) (*dto.PredictionResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by id: %+v", err)
		return nil, apperror.Dependency("failed to find user", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	vital, err := u.vitalRepo.FindLatestByPatient(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find latest vital: %+v", err)
		return nil, apperror.Dependency("failed to find vital", err)
	}
	if vital == nil {
		return nil, ErrVitalRecordNotFound
	}

	output, err := u.predictor.Predict(ctx, vital.Features())
	if err != nil {
		u.log.Warnf("Failed to run prediction for vital %s: %+v", vital.ID, err)
		return nil, apperror.Dependency("failed to run prediction", err)
	}

	score, err := ml.Score(output)
	if err != nil {
		u.log.Warnf("Failed to interpret prediction for vital %s: %+v", vital.ID, err)
		return nil, apperror.Dependency("failed to interpret prediction", err)
	}

	label := 0
	if score > PositiveThreshold {
		label = 1
	}

	if err := u.vitalRepo.UpdateLabel(ctx, vital.ID, label); err != nil {
		u.log.Warnf("Failed to save prediction label: %+v", err)
		return nil, apperror.Dependency("failed to save prediction", err)
	}
	vital.Num = &label

	if err := u.auditService.LogAction(ctx, ActorFrom(ctx), entity.AuditActionVitalPredict, map[string]interface{}{
		"vital_id":   vital.ID.String(),
		"patient_id": userID.String(),
		"label":      label,
		"score":      score,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.PredictionResponse{
		Vital: *converter.VitalToResponse(vital),
		Label: label,
		Score: score,
	}, nil
}
