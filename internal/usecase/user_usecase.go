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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

type UserUsecase interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetAllUsers(ctx context.Context) ([]dto.UserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
}

type userUsecase struct {
	log          *logrus.Logger
	validator    *validator.CustomValidator
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewUserUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) UserUsecase {
	return &userUsecase{
		log:          log,
		validator:    validator,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *userUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := u.validator.Check(req); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, apperror.Dependency("failed to find user", err)
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, apperror.Dependency("failed to hash password", err)
	}

	roles := req.Roles
	if len(roles) == 0 {
		roles = entity.DefaultRoles()
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	user := &entity.User{
		Email:     req.Email,
		Password:  string(hashedPassword),
		Roles:     datatypes.JSONSlice[string](roles),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Active:    &active,
		Gender:    req.Gender,
	}

	if req.DateOfBirth != nil {
		dob, err := time.Parse(converter.DateLayout, *req.DateOfBirth)
		if err != nil {
			return nil, fieldError("dateOfBirth", "dateOfBirth must match the format 2006-01-02")
		}
		user.DateOfBirth = &dob
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, apperror.Dependency("failed to create user", err)
	}

	response := converter.UserToResponse(user)
	if err := u.auditService.LogCreate(ctx, ActorFrom(ctx), entity.AuditActionUserCreate, "user", user.ID.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *userUsecase) GetAllUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, apperror.Dependency("failed to find users", err)
	}
	if len(users) == 0 {
		return nil, ErrNoUsersFound
	}

	return converter.UsersToResponses(users), nil
}

func (u *userUsecase) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := u.validator.Check(req); err != nil {
		return nil, err
	}
	if !req.HasChanges() {
		return nil, ErrNoUpdateFields
	}

	user, err := u.findUser(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	oldValue := converter.UserToResponse(user)

	if req.Email != nil && *req.Email != user.Email {
		existing, err := u.userRepo.FindByEmail(ctx, *req.Email)
		if err != nil {
			u.log.Warnf("Failed to find user by email: %+v", err)
			return nil, apperror.Dependency("failed to find user", err)
		}
		if existing != nil && existing.ID != user.ID {
			return nil, ErrEmailAlreadyExists
		}
		user.Email = *req.Email
	}

	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, apperror.Dependency("failed to hash password", err)
		}
		user.Password = string(hashedPassword)
	}

	if req.Roles != nil {
		user.Roles = datatypes.JSONSlice[string](req.Roles)
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Active != nil {
		user.Active = req.Active
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse(converter.DateLayout, *req.DateOfBirth)
		if err != nil {
			return nil, fieldError("dateOfBirth", "dateOfBirth must match the format 2006-01-02")
		}
		user.DateOfBirth = &dob
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, apperror.Dependency("failed to update user", err)
	}

	response := converter.UserToResponse(user)
	if err := u.auditService.LogUpdate(ctx, ActorFrom(ctx), entity.AuditActionUserUpdate, "user", user.ID.String(), oldValue, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return nil, apperror.Dependency("failed to delete user", err)
	}

	response := converter.UserToResponse(user)
	if err := u.auditService.LogDelete(ctx, ActorFrom(ctx), entity.AuditActionUserDelete, "user", id.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *userUsecase) findUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by id: %+v", err)
		return nil, apperror.Dependency("failed to find user", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
