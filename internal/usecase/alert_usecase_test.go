package usecase

import (
	"context"
	"errors"
	"testing"

	"health-monitor-api/internal/delivery/dto"
	"health-monitor-api/internal/domain/entity"
	"health-monitor-api/internal/infrastructure/messaging"
	"health-monitor-api/pkg/apperror"
	"health-monitor-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAlertUsecase(alertRepo *MockAlertRepository, userRepo *MockUserRepository, publisher *recordingPublisher) AlertUsecase {
	return NewAlertUsecase(testLogger(), validator.NewValidator(), alertRepo, userRepo, publisher, &recordingAudit{})
}

func TestCreateAlert_PublishesEvent(t *testing.T) {
	alertRepo := new(MockAlertRepository)
	userRepo := new(MockUserRepository)
	publisher := &recordingPublisher{}
	uc := newAlertUsecase(alertRepo, userRepo, publisher)
	ctx := context.Background()
	patient := uuid.New()

	userRepo.On("CountByIDs", ctx, []uuid.UUID{patient}).Return(int64(1), nil)
	alertRepo.On("Create", ctx, mock.AnythingOfType("*entity.Alert")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Alert).ID = uuid.New()
	}).Return(nil)

	resp, err := uc.CreateAlert(ctx, &dto.CreateAlertRequest{
		Message: "Fell in bathroom",
		Address: ptr("12 Elm St"),
		Patient: patient.String(),
	})

	require.NoError(t, err)
	assert.Equal(t, patient, resp.Patient)
	assert.Equal(t, "12 Elm St", resp.Address)
	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.Equal(t, messaging.EventAlertCreated, event.Type)
	assert.Equal(t, resp.ID, event.AlertID)
	assert.Equal(t, patient, event.PatientID)
}

func TestCreateAlert_PublishFailureIsTolerated(t *testing.T) {
	alertRepo := new(MockAlertRepository)
	userRepo := new(MockUserRepository)
	publisher := &recordingPublisher{err: errors.New("broker unreachable")}
	uc := newAlertUsecase(alertRepo, userRepo, publisher)
	ctx := context.Background()
	patient := uuid.New()

	userRepo.On("CountByIDs", ctx, []uuid.UUID{patient}).Return(int64(1), nil)
	alertRepo.On("Create", ctx, mock.AnythingOfType("*entity.Alert")).Return(nil)

	resp, err := uc.CreateAlert(ctx, &dto.CreateAlertRequest{Message: "Chest pain", Patient: patient.String()})

	require.NoError(t, err)
	assert.Equal(t, "Chest pain", resp.Message)
	alertRepo.AssertExpectations(t)
}

func TestCreateAlert_UnknownPatient(t *testing.T) {
	alertRepo := new(MockAlertRepository)
	userRepo := new(MockUserRepository)
	publisher := &recordingPublisher{}
	uc := newAlertUsecase(alertRepo, userRepo, publisher)
	ctx := context.Background()
	patient := uuid.New()

	userRepo.On("CountByIDs", ctx, []uuid.UUID{patient}).Return(int64(0), nil)

	_, err := uc.CreateAlert(ctx, &dto.CreateAlertRequest{Message: "Chest pain", Patient: patient.String()})

	assert.ErrorIs(t, err, ErrPatientNotFound)
	alertRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, publisher.events)
}

func TestCreateAlert_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		req     *dto.CreateAlertRequest
		missing string
	}{
		{"no message", &dto.CreateAlertRequest{Patient: uuid.NewString()}, "message"},
		{"no patient", &dto.CreateAlertRequest{Message: "Chest pain"}, "patient"},
		{"malformed patient", &dto.CreateAlertRequest{Message: "Chest pain", Patient: "bed-4"}, "patient"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alertRepo := new(MockAlertRepository)
			userRepo := new(MockUserRepository)
			publisher := &recordingPublisher{}
			uc := newAlertUsecase(alertRepo, userRepo, publisher)

			_, err := uc.CreateAlert(context.Background(), tt.req)

			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
			assert.Contains(t, apperror.FieldsOf(err), tt.missing)
			alertRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			userRepo.AssertNotCalled(t, "CountByIDs", mock.Anything, mock.Anything)
			assert.Empty(t, publisher.events)
		})
	}
}

func TestUpdateAlert_OnlyIDIsRejected(t *testing.T) {
	alertRepo := new(MockAlertRepository)
	uc := newAlertUsecase(alertRepo, new(MockUserRepository), &recordingPublisher{})

	_, err := uc.UpdateAlert(context.Background(), &dto.UpdateAlertRequest{ID: uuid.New()})

	assert.ErrorIs(t, err, ErrNoUpdateFields)
}

func TestUpdateAlert_ChangesMessage(t *testing.T) {
	alertRepo := new(MockAlertRepository)
	uc := newAlertUsecase(alertRepo, new(MockUserRepository), &recordingPublisher{})
	ctx := context.Background()
	id := uuid.New()

	existing := &entity.Alert{ID: id, Message: "Chest pain", PatientID: uuid.New()}
	alertRepo.On("FindByID", ctx, id).Return(existing, nil)
	alertRepo.On("Update", ctx, existing).Return(nil)

	resp, err := uc.UpdateAlert(ctx, &dto.UpdateAlertRequest{ID: id, Message: ptr("Resolved")})

	require.NoError(t, err)
	assert.Equal(t, "Resolved", resp.Message)
	assert.Equal(t, existing.PatientID, resp.Patient)
}

func TestGetAlerts_Empty(t *testing.T) {
	alertRepo := new(MockAlertRepository)
	uc := newAlertUsecase(alertRepo, new(MockUserRepository), &recordingPublisher{})
	ctx := context.Background()

	alertRepo.On("FindAll", ctx, (*uuid.UUID)(nil)).Return([]entity.Alert{}, nil)

	_, err := uc.GetAlerts(ctx, nil)

	assert.ErrorIs(t, err, ErrNoAlertsFound)
}

func TestUpdateAlert_NotFound(t *testing.T) {
	alertRepo := new(MockAlertRepository)
	uc := newAlertUsecase(alertRepo, new(MockUserRepository), &recordingPublisher{})
	ctx := context.Background()
	id := uuid.New()

	alertRepo.On("FindByID", ctx, id).Return(nil, nil)

	_, err := uc.UpdateAlert(ctx, &dto.UpdateAlertRequest{ID: id, Message: ptr("Resolved")})

	assert.ErrorIs(t, err, ErrAlertNotFound)
	alertRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
