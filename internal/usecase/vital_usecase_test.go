package usecase

import (
	"context"
	"testing"

	"health-monitor-api/internal/delivery/dto"
	"health-monitor-api/internal/domain/entity"
	"health-monitor-api/pkg/apperror"
	"health-monitor-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func completeVitalRequest() *dto.CreateVitalRequest {
	return &dto.CreateVitalRequest{
		Age:      ptr(63),
		Sex:      ptr(1),
		Cp:       ptr(1),
		Trestbps: ptr(145.0),
		Chol:     ptr(233.0),
		Fbs:      ptr(1),
		Restecg:  ptr(2),
		Thalach:  ptr(150.0),
		Exang:    ptr(0),
		Oldpeak:  ptr(2.3),
		Slope:    ptr(3),
		Ca:       ptr(0),
		Thal:     ptr(6),
	}
}

func newVitalUsecase(vitalRepo *MockVitalRepository, userRepo *MockUserRepository) VitalUsecase {
	return NewVitalUsecase(testLogger(), validator.NewValidator(), vitalRepo, userRepo, &recordingAudit{})
}

func TestCreateVital_MergesPatients(t *testing.T) {
	vitalRepo := new(MockVitalRepository)
	userRepo := new(MockUserRepository)
	uc := newVitalUsecase(vitalRepo, userRepo)
	ctx := context.Background()

	a, b := uuid.New(), uuid.New()
	req := completeVitalRequest()
	req.Patient = ptr(a.String())
	req.Patients = []string{b.String(), a.String()}

	userRepo.On("CountByIDs", ctx, []uuid.UUID{a, b}).Return(int64(2), nil)
	vitalRepo.On("Create", ctx, mock.AnythingOfType("*entity.Vital")).Return(nil)

	resp, err := uc.CreateVital(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, resp.Patients)
	assert.Equal(t, 63, resp.Age)
	assert.Nil(t, resp.Num)

	created := vitalRepo.Calls[0].Arguments.Get(1).(*entity.Vital)
	assert.NotEqual(t, uuid.Nil, created.ID)
	for _, link := range created.Patients {
		assert.Equal(t, created.ID, link.VitalID)
	}
	assert.False(t, created.UpdateDate.IsZero())
}

func TestCreateVital_ZeroFeaturesAreAccepted(t *testing.T) {
	vitalRepo := new(MockVitalRepository)
	userRepo := new(MockUserRepository)
	uc := newVitalUsecase(vitalRepo, userRepo)
	ctx := context.Background()

	patient := uuid.New()
	req := completeVitalRequest()
	req.Sex = ptr(0)
	req.Oldpeak = ptr(0.0)
	req.Patients = []string{patient.String()}

	userRepo.On("CountByIDs", ctx, []uuid.UUID{patient}).Return(int64(1), nil)
	vitalRepo.On("Create", ctx, mock.AnythingOfType("*entity.Vital")).Return(nil)

	resp, err := uc.CreateVital(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Sex)
	assert.Equal(t, 0.0, resp.Oldpeak)
}

func TestCreateVital_MissingFeature(t *testing.T) {
	vitalRepo := new(MockVitalRepository)
	uc := newVitalUsecase(vitalRepo, new(MockUserRepository))

	req := completeVitalRequest()
	req.Age = nil
	req.Patients = []string{uuid.NewString()}

	_, err := uc.CreateVital(context.Background(), req)

	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Contains(t, apperror.FieldsOf(err), "age")
	vitalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateVital_RequiresPatients(t *testing.T) {
	vitalRepo := new(MockVitalRepository)
	uc := newVitalUsecase(vitalRepo, new(MockUserRepository))

	_, err := uc.CreateVital(context.Background(), completeVitalRequest())

	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Contains(t, apperror.FieldsOf(err), "patients")
	vitalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateVital_UnknownPatient(t *testing.T) {
	vitalRepo := new(MockVitalRepository)
	userRepo := new(MockUserRepository)
	uc := newVitalUsecase(vitalRepo, userRepo)
	ctx := context.Background()

	patient := uuid.New()
	req := completeVitalRequest()
	req.Patients = []string{patient.String()}

	userRepo.On("CountByIDs", ctx, []uuid.UUID{patient}).Return(int64(0), nil)

	_, err := uc.CreateVital(ctx, req)

	assert.ErrorIs(t, err, ErrPatientNotFound)
	vitalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetVitals_FilterByPatient(t *testing.T) {
	vitalRepo := new(MockVitalRepository)
	uc := newVitalUsecase(vitalRepo, new(MockUserRepository))
	ctx := context.Background()
	patient := uuid.New()

	vitalRepo.On("FindAll", ctx, &patient).Return([]entity.Vital{}, nil)

	_, err := uc.GetVitals(ctx, &patient)

	assert.ErrorIs(t, err, ErrNoVitalsFound)
}

func TestUpdateVital_ScalarOnlyKeepsPatients(t *testing.T) {
	vitalRepo := new(MockVitalRepository)
	uc := newVitalUsecase(vitalRepo, new(MockUserRepository))
	ctx := context.Background()

	id, patient := uuid.New(), uuid.New()
	existing := &entity.Vital{ID: id, Age: 50, Chol: 200}
	existing.SetPatients([]uuid.UUID{patient})

	vitalRepo.On("FindByID", ctx, id).Return(existing, nil)
	vitalRepo.On("Update", ctx, existing, false).Return(nil)

	resp, err := uc.UpdateVital(ctx, &dto.UpdateVitalRequest{ID: id, Chol: ptr(180.5)})

	require.NoError(t, err)
	assert.Equal(t, 180.5, resp.Chol)
	assert.Equal(t, 50, resp.Age)
	assert.Equal(t, []uuid.UUID{patient}, resp.Patients)
	vitalRepo.AssertExpectations(t)
}

func TestUpdateVital_ReplacesPatients(t *testing.T) {
	vitalRepo := new(MockVitalRepository)
	userRepo := new(MockUserRepository)
	uc := newVitalUsecase(vitalRepo, userRepo)
	ctx := context.Background()

	id, oldPatient, newPatient := uuid.New(), uuid.New(), uuid.New()
	existing := &entity.Vital{ID: id}
	existing.SetPatients([]uuid.UUID{oldPatient})

	vitalRepo.On("FindByID", ctx, id).Return(existing, nil)
	userRepo.On("CountByIDs", ctx, []uuid.UUID{newPatient}).Return(int64(1), nil)
	vitalRepo.On("Update", ctx, existing, true).Return(nil)

	resp, err := uc.UpdateVital(ctx, &dto.UpdateVitalRequest{ID: id, Patients: []string{newPatient.String()}})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{newPatient}, resp.Patients)
	vitalRepo.AssertExpectations(t)
}

func TestUpdateVital_OnlyIDIsRejected(t *testing.T) {
	vitalRepo := new(MockVitalRepository)
	uc := newVitalUsecase(vitalRepo, new(MockUserRepository))

	_, err := uc.UpdateVital(context.Background(), &dto.UpdateVitalRequest{ID: uuid.New()})

	assert.ErrorIs(t, err, ErrNoUpdateFields)
	vitalRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestDeleteVital_NotFound(t *testing.T) {
	vitalRepo := new(MockVitalRepository)
	uc := newVitalUsecase(vitalRepo, new(MockUserRepository))
	ctx := context.Background()
	id := uuid.New()

	vitalRepo.On("FindByID", ctx, id).Return(nil, nil)

	_, err := uc.DeleteVital(ctx, id)

	assert.ErrorIs(t, err, ErrVitalNotFound)
	vitalRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
