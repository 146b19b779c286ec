package usecase

import (
	"context"
	"sync"

	"health-monitor-api/internal/domain/entity"
	"health-monitor-api/internal/infrastructure/messaging"
	"health-monitor-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVitalRepository is a mock implementation of VitalRepository.
type MockVitalRepository struct {
	mock.Mock
}

func (m *MockVitalRepository) Create(ctx context.Context, vital *entity.Vital) error {
	args := m.Called(ctx, vital)
	return args.Error(0)
}

func (m *MockVitalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vital, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Vital), args.Error(1)
}

func (m *MockVitalRepository) FindAll(ctx context.Context, patientID *uuid.UUID) ([]entity.Vital, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Vital), args.Error(1)
}

func (m *MockVitalRepository) FindLatestByPatient(ctx context.Context, patientID uuid.UUID) (*entity.Vital, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Vital), args.Error(1)
}

func (m *MockVitalRepository) Update(ctx context.Context, vital *entity.Vital, replacePatients bool) error {
	args := m.Called(ctx, vital, replacePatients)
	return args.Error(0)
}

func (m *MockVitalRepository) UpdateLabel(ctx context.Context, id uuid.UUID, num int) error {
	args := m.Called(ctx, id, num)
	return args.Error(0)
}

func (m *MockVitalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDailyVitalRepository is a mock implementation of DailyVitalRepository.
type MockDailyVitalRepository struct {
	mock.Mock
}

func (m *MockDailyVitalRepository) Create(ctx context.Context, dailyVital *entity.DailyVital) error {
	args := m.Called(ctx, dailyVital)
	return args.Error(0)
}

func (m *MockDailyVitalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DailyVital, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DailyVital), args.Error(1)
}

func (m *MockDailyVitalRepository) FindAll(ctx context.Context, patientID *uuid.UUID) ([]entity.DailyVital, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DailyVital), args.Error(1)
}

func (m *MockDailyVitalRepository) Update(ctx context.Context, dailyVital *entity.DailyVital) error {
	args := m.Called(ctx, dailyVital)
	return args.Error(0)
}

func (m *MockDailyVitalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTipRepository is a mock implementation of TipRepository.
type MockTipRepository struct {
	mock.Mock
}

func (m *MockTipRepository) Create(ctx context.Context, tip *entity.Tip) error {
	args := m.Called(ctx, tip)
	return args.Error(0)
}

func (m *MockTipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tip), args.Error(1)
}

func (m *MockTipRepository) FindAll(ctx context.Context) ([]entity.Tip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Tip), args.Error(1)
}

func (m *MockTipRepository) Update(ctx context.Context, tip *entity.Tip) error {
	args := m.Called(ctx, tip)
	return args.Error(0)
}

func (m *MockTipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAlertRepository is a mock implementation of AlertRepository.
type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Alert), args.Error(1)
}

func (m *MockAlertRepository) FindAll(ctx context.Context, patientID *uuid.UUID) ([]entity.Alert, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Alert), args.Error(1)
}

func (m *MockAlertRepository) Update(ctx context.Context, alert *entity.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAuditLogRepository is a mock implementation of AuditLogRepository.
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindAll(ctx context.Context, limit int) ([]entity.AuditLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AuditLog), args.Error(1)
}

func (m *MockAuditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuditLog), args.Error(1)
}

// recordingAudit captures audit actions without touching a repository.
type recordingAudit struct {
	mu      sync.Mutex
	actions []string
	actors  []*uuid.UUID
	err     error
}

func (a *recordingAudit) record(userID *uuid.UUID, action string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.actions = append(a.actions, action)
	a.actors = append(a.actors, userID)
	return a.err
}

func (a *recordingAudit) LogCreate(_ context.Context, userID *uuid.UUID, action, _, _ string, _ interface{}) error {
	return a.record(userID, action)
}

func (a *recordingAudit) LogUpdate(_ context.Context, userID *uuid.UUID, action, _, _ string, _, _ interface{}) error {
	return a.record(userID, action)
}

func (a *recordingAudit) LogDelete(_ context.Context, userID *uuid.UUID, action, _, _ string, _ interface{}) error {
	return a.record(userID, action)
}

func (a *recordingAudit) LogAction(_ context.Context, userID *uuid.UUID, action string, _ map[string]interface{}) error {
	return a.record(userID, action)
}

var _ service.AuditService = (*recordingAudit)(nil)

// memoryTipCache is an in-process TipCache.
type memoryTipCache struct {
	tips        []entity.Tip
	getErr      error
	invalidated int
	sets        int
}

func (c *memoryTipCache) Get(context.Context) ([]entity.Tip, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	if c.tips == nil {
		return nil, service.ErrCacheMiss
	}
	return c.tips, nil
}

func (c *memoryTipCache) Set(_ context.Context, tips []entity.Tip) error {
	c.sets++
	c.tips = tips
	return nil
}

func (c *memoryTipCache) Invalidate(context.Context) error {
	c.invalidated++
	c.tips = nil
	return nil
}

// recordingPublisher captures published alert events.
type recordingPublisher struct {
	events []messaging.AlertEvent
	err    error
}

func (p *recordingPublisher) PublishAlert(_ context.Context, event messaging.AlertEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

// predictorFunc adapts a function to ml.Predictor.
type predictorFunc func(ctx context.Context, features []float64) ([]float64, error)

func (f predictorFunc) Predict(ctx context.Context, features []float64) ([]float64, error) {
	return f(ctx, features)
}

func ptr[T any](v T) *T {
	return &v
}
