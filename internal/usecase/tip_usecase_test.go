package usecase

import (
	"context"
	"errors"
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

func newTipUsecase(repo *MockTipRepository, cache *memoryTipCache) TipUsecase {
	return NewTipUsecase(testLogger(), validator.NewValidator(), repo, cache, &recordingAudit{})
}

func TestGetTips_CacheHitSkipsDatabase(t *testing.T) {
	repo := new(MockTipRepository)
	cache := &memoryTipCache{tips: []entity.Tip{{ID: uuid.New(), Title: "Hydrate", Description: "Drink water"}}}
	uc := newTipUsecase(repo, cache)

	tips, err := uc.GetTips(context.Background())

	require.NoError(t, err)
	require.Len(t, tips, 1)
	assert.Equal(t, "Hydrate", tips[0].Title)
	repo.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestGetTips_MissLoadsAndFillsCache(t *testing.T) {
	repo := new(MockTipRepository)
	cache := &memoryTipCache{}
	uc := newTipUsecase(repo, cache)
	ctx := context.Background()

	repo.On("FindAll", ctx).Return([]entity.Tip{{ID: uuid.New(), Title: "Walk", Description: "Walk daily"}}, nil).Once()

	first, err := uc.GetTips(ctx)
	require.NoError(t, err)
	second, err := uc.GetTips(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets)
	repo.AssertExpectations(t)
}

func TestGetTips_CacheErrorFallsBackToDatabase(t *testing.T) {
	repo := new(MockTipRepository)
	cache := &memoryTipCache{getErr: errors.New("redis: connection refused")}
	uc := newTipUsecase(repo, cache)
	ctx := context.Background()

	repo.On("FindAll", ctx).Return([]entity.Tip{{ID: uuid.New(), Title: "Sleep", Description: "Eight hours"}}, nil)

	tips, err := uc.GetTips(ctx)

	require.NoError(t, err)
	assert.Len(t, tips, 1)
}

func TestGetTips_Empty(t *testing.T) {
	repo := new(MockTipRepository)
	cache := &memoryTipCache{}
	uc := newTipUsecase(repo, cache)
	ctx := context.Background()

	repo.On("FindAll", ctx).Return([]entity.Tip{}, nil)

	_, err := uc.GetTips(ctx)

	assert.ErrorIs(t, err, ErrNoTipsFound)
	assert.Zero(t, cache.sets)
}

func TestCreateTip_InvalidatesCache(t *testing.T) {
	repo := new(MockTipRepository)
	cache := &memoryTipCache{tips: []entity.Tip{{Title: "stale"}}}
	uc := newTipUsecase(repo, cache)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*entity.Tip")).Return(nil)

	resp, err := uc.CreateTip(ctx, &dto.CreateTipRequest{Title: "Stretch", Description: "Every morning"})

	require.NoError(t, err)
	assert.Equal(t, "Stretch", resp.Title)
	assert.Equal(t, 1, cache.invalidated)
	assert.Nil(t, cache.tips)
}

func TestCreateTip_AuditFailureDoesNotFailMutation(t *testing.T) {
	repo := new(MockTipRepository)
	cache := &memoryTipCache{}
	audit := &recordingAudit{err: errors.New("audit_logs: connection reset")}
	uc := NewTipUsecase(testLogger(), validator.NewValidator(), repo, cache, audit)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*entity.Tip")).Return(nil)

	resp, err := uc.CreateTip(ctx, &dto.CreateTipRequest{Title: "Hydrate", Description: "Two litres a day"})

	require.NoError(t, err)
	assert.Equal(t, "Hydrate", resp.Title)
	assert.Equal(t, []string{entity.AuditActionTipCreate}, audit.actions)
	repo.AssertExpectations(t)
}

func TestCreateTip_EmptyTitle(t *testing.T) {
	repo := new(MockTipRepository)
	cache := &memoryTipCache{}
	uc := newTipUsecase(repo, cache)

	_, err := uc.CreateTip(context.Background(), &dto.CreateTipRequest{Description: "Every morning"})

	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Contains(t, apperror.FieldsOf(err), "title")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Zero(t, cache.invalidated)
}

func TestUpdateTip(t *testing.T) {
	repo := new(MockTipRepository)
	cache := &memoryTipCache{}
	uc := newTipUsecase(repo, cache)
	ctx := context.Background()
	id := uuid.New()

	existing := &entity.Tip{ID: id, Title: "Walk", Description: "Walk daily"}
	repo.On("FindByID", ctx, id).Return(existing, nil)
	repo.On("Update", ctx, existing).Return(nil)

	resp, err := uc.UpdateTip(ctx, &dto.UpdateTipRequest{ID: id, Description: ptr("Walk 30 minutes daily")})

	require.NoError(t, err)
	assert.Equal(t, "Walk", resp.Title)
	assert.Equal(t, "Walk 30 minutes daily", resp.Description)
	assert.Equal(t, 1, cache.invalidated)
}

func TestDeleteTip_NotFound(t *testing.T) {
	repo := new(MockTipRepository)
	cache := &memoryTipCache{}
	uc := newTipUsecase(repo, cache)
	ctx := context.Background()
	id := uuid.New()

	repo.On("FindByID", ctx, id).Return(nil, nil)

	_, err := uc.DeleteTip(ctx, id)

	assert.ErrorIs(t, err, ErrTipNotFound)
	assert.Zero(t, cache.invalidated)
}

func TestUpdateTip_NotFound(t *testing.T) {
	repo := new(MockTipRepository)
	cache := &memoryTipCache{}
	uc := newTipUsecase(repo, cache)
	ctx := context.Background()
	id := uuid.New()

	repo.On("FindByID", ctx, id).Return(nil, nil)

	_, err := uc.UpdateTip(ctx, &dto.UpdateTipRequest{ID: id, Title: ptr("Sleep")})

	assert.ErrorIs(t, err, ErrTipNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Zero(t, cache.invalidated)
}
