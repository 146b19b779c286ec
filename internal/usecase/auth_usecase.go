package usecase

import (
	"context"

	"health-monitor-api/internal/converter"
	"health-monitor-api/internal/delivery/dto"
	"health-monitor-api/internal/domain/entity"
	"health-monitor-api/internal/domain/repository"
	"health-monitor-api/internal/service"
	"health-monitor-api/pkg/apperror"
	"health-monitor-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	IsSignedIn(ctx context.Context, token string) (*dto.AuthResponse, error)
	Logout(ctx context.Context) (*dto.AuthResponse, error)
}

type authUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	jwtService   *jwt.JWTService
	auditService service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		userRepo:     userRepo,
		jwtService:   jwtService,
		auditService: auditService,
	}
}

func failedLogin(message string) *dto.AuthResponse {
	return &dto.AuthResponse{Status: dto.StatusError, Message: message}
}

// Login never returns an error for bad credentials; the payload status reports it.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, apperror.Dependency("failed to find user", err)
	}
	if user == nil {
		return failedLogin(msgInvalidCredentials), nil
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return failedLogin(msgInvalidCredentials), nil
	}
	if !user.IsActive() {
		return failedLogin(msgInactiveUser), nil
	}

	token, tokenID, err := u.jwtService.GenerateToken(user.ID, user.Email, []string(user.Roles))
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, apperror.Dependency("failed to generate token", err)
	}

	if err := u.auditService.LogAction(ctx, &user.ID, entity.AuditActionUserLogin, map[string]interface{}{
		"token_id": tokenID,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.AuthResponse{
		Status:    dto.StatusSuccess,
		Message:   "login successful",
		Token:     &token,
		User:      converter.UserToResponse(user),
		ExpiresIn: int64(u.jwtService.GetExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) IsSignedIn(ctx context.Context, token string) (*dto.AuthResponse, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		u.log.Debugf("Rejected session token: %+v", err)
		return nil, ErrUnauthorized
	}

	user, err := u.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by id: %+v", err)
		return nil, apperror.Dependency("failed to find user", err)
	}
	if user == nil || !user.IsActive() {
		return nil, ErrUnauthorized
	}

	return &dto.AuthResponse{
		Status:  dto.StatusSuccess,
		Message: "signed in",
		User:    converter.UserToResponse(user),
	}, nil
}

// Logout only reports success; the caller clears the cookie. Issued tokens stay valid until they expire.
func (u *authUsecase) Logout(ctx context.Context) (*dto.AuthResponse, error) {
	if actor := ActorFrom(ctx); actor != nil {
		if err := u.auditService.LogAction(ctx, actor, entity.AuditActionUserLogout, nil); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
	}

	return &dto.AuthResponse{
		Status:  dto.StatusSuccess,
		Message: "logged out",
	}, nil
}
