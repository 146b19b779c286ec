package usecase

import (
	"context"
	"errors"

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

type TipUsecase interface {
	CreateTip(ctx context.Context, req *dto.CreateTipRequest) (*dto.TipResponse, error)
	GetTips(ctx context.Context) ([]dto.TipResponse, error)
	UpdateTip(ctx context.Context, req *dto.UpdateTipRequest) (*dto.TipResponse, error)
	DeleteTip(ctx context.Context, id uuid.UUID) (*dto.TipResponse, error)
}

type tipUsecase struct {
	log          *logrus.Logger
	validator    *validator.CustomValidator
	tipRepo      repository.TipRepository
	tipCache     service.TipCache
	auditService service.AuditService
}

func NewTipUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	tipRepo repository.TipRepository,
	tipCache service.TipCache,
	auditService service.AuditService,
) TipUsecase {
	return &tipUsecase{
		log:          log,
		validator:    validator,
		tipRepo:      tipRepo,
		tipCache:     tipCache,
		auditService: auditService,
	}
}

func (u *tipUsecase) CreateTip(ctx context.Context, req *dto.CreateTipRequest) (*dto.TipResponse, error) {
	if err := u.validator.Check(req); err != nil {
		return nil, err
	}

	tip := &entity.Tip{
		Title:       req.Title,
		Description: req.Description,
	}

	if err := u.tipRepo.Create(ctx, tip); err != nil {
		u.log.Warnf("Failed to create tip: %+v", err)
		return nil, apperror.Dependency("failed to create tip", err)
	}
	u.invalidateCache(ctx)

	response := converter.TipToResponse(tip)
	if err := u.auditService.LogCreate(ctx, ActorFrom(ctx), entity.AuditActionTipCreate, "tip", tip.ID.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *tipUsecase) GetTips(ctx context.Context) ([]dto.TipResponse, error) {
	tips, err := u.tipCache.Get(ctx)
	if err == nil && len(tips) > 0 {
		return converter.TipsToResponses(tips), nil
	}
	if err != nil && !errors.Is(err, service.ErrCacheMiss) {
		u.log.Warnf("Failed to read tip cache: %+v", err)
	}

	tips, err = u.tipRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find tips: %+v", err)
		return nil, apperror.Dependency("failed to find tips", err)
	}
	if len(tips) == 0 {
		return nil, ErrNoTipsFound
	}

	if err := u.tipCache.Set(ctx, tips); err != nil {
		u.log.Warnf("Failed to write tip cache: %+v", err)
	}

	return converter.TipsToResponses(tips), nil
}

func (u *tipUsecase) UpdateTip(ctx context.Context, req *dto.UpdateTipRequest) (*dto.TipResponse, error) {
	if err := u.validator.Check(req); err != nil {
		return nil, err
	}
	if !req.HasChanges() {
		return nil, ErrNoUpdateFields
	}

	tip, err := u.findTip(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	oldValue := converter.TipToResponse(tip)

	if req.Title != nil {
		tip.Title = *req.Title
	}
	if req.Description != nil {
		tip.Description = *req.Description
	}

	if err := u.tipRepo.Update(ctx, tip); err != nil {
		u.log.Warnf("Failed to update tip: %+v", err)
		return nil, apperror.Dependency("failed to update tip", err)
	}
	u.invalidateCache(ctx)

	response := converter.TipToResponse(tip)
	if err := u.auditService.LogUpdate(ctx, ActorFrom(ctx), entity.AuditActionTipUpdate, "tip", tip.ID.String(), oldValue, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *tipUsecase) DeleteTip(ctx context.Context, id uuid.UUID) (*dto.TipResponse, error) {
	tip, err := u.findTip(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.tipRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete tip: %+v", err)
		return nil, apperror.Dependency("failed to delete tip", err)
	}
	u.invalidateCache(ctx)

	response := converter.TipToResponse(tip)
	if err := u.auditService.LogDelete(ctx, ActorFrom(ctx), entity.AuditActionTipDelete, "tip", id.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *tipUsecase) findTip(ctx context.Context, id uuid.UUID) (*entity.Tip, error) {
	tip, err := u.tipRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find tip by id: %+v", err)
		return nil, apperror.Dependency("failed to find tip", err)
	}
	if tip == nil {
		return nil, ErrTipNotFound
	}
	return tip, nil
}

func (u *tipUsecase) invalidateCache(ctx context.Context) {
	if err := u.tipCache.Invalidate(ctx); err != nil {
		u.log.Warnf("Failed to invalidate tip cache: %+v", err)
	}
}
