package user

import (
	"context"
	"errors"

	"go-payroll/internal/shared/contextutil"
	usererrors "go-payroll/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock

type Service interface {
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	ToggleStatus(ctx context.Context, actorID string, id string, isActive bool) error
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	ForceResetPassword(ctx context.Context, userID, newPassword string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) ToggleStatus(ctx context.Context, actorID string, id string, isActive bool) error {
	if !isActive && actorID == id {
		return usererrors.ErrCannotDeactivateSelf
	}
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	if err := s.repo.UpdateStatus(ctx, id, isActive); err != nil {
		return err
	}

	s.logger.Info("user status changed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("actor_id", actorID),
		zap.String("user_id", id),
		zap.Bool("is_active", isActive),
	)
	return nil
}

func (s *service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	u, err := s.find(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(currentPassword)); err != nil {
		return usererrors.ErrWrongPassword
	}
	if currentPassword == newPassword {
		return usererrors.ErrSamePassword
	}

	return s.setPassword(ctx, userID, newPassword)
}

func (s *service) ForceResetPassword(ctx context.Context, userID, newPassword string) error {
	if _, err := s.find(ctx, userID); err != nil {
		return err
	}
	return s.setPassword(ctx, userID, newPassword)
}

func (s *service) setPassword(ctx context.Context, userID, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return err
	}

	if err := s.repo.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		return err
	}

	s.logger.Info("user password changed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("user_id", userID),
	)
	return nil
}

func (s *service) find(ctx context.Context, id string) (*Account, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrUserNotFound.Withf("user %s not found", id)
		}
		return nil, err
	}
	return u, nil
}

func mapToResponse(u Account) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if u.EmployeeID != nil {
		resp.EmployeeID = u.EmployeeID.String()
	}
	if u.Employee != nil {
		resp.EmployeeCode = u.Employee.EmployeeCode
		resp.FullName = u.Employee.FirstName
		if u.Employee.LastName != "" {
			resp.FullName += " " + u.Employee.LastName
		}
	}
	return resp
}
