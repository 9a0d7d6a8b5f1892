package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-payroll/internal/auth/errors"
	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	defaultAccessTTL = 15 * time.Minute
	refreshTTL       = 7 * 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)

	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)

	GetMe(ctx context.Context, userID string) (*AuthResponse, error)

	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	secret       []byte
	accessTTL    time.Duration
	logger       *zap.Logger
}

func NewService(
	repo Repository,
	employeeRepo employee.Repository,
	jwtSecret string,
	accessTTL time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	return &service{
		repo:         repo,
		employeeRepo: employeeRepo,
		secret:       []byte(jwtSecret),
		accessTTL:    accessTTL,
		logger:       l,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error) {
	// 1. Ambil user
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	// 2. Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrUserInactive
	}

	// 3. Generate token (UserID + EmployeeID + Role)
	accessToken, refreshToken, err = s.issuePair(user)
	if err != nil {
		s.logger.Error("login sign token failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("user logged in",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
	)

	return accessToken, refreshToken, mapToResponse(user), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	claims, err := s.parse(refreshToken)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	if typ, _ := claims["token_type"].(string); typ != tokenTypeRefresh {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidUserID
	}

	// Role dibaca ulang dari DB supaya perubahan role langsung berlaku
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}
	if !user.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrUserInactive
	}

	newAccess, newRefresh, err := s.issuePair(user)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccess, newRefresh, mapToResponse(user), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapToResponse(u)
	return &resp, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		role = RoleEmployee
	}
	if role != RoleAdmin && role != RoleEmployee {
		return AuthResponse{}, autherrors.ErrInvalidRole
	}
	if role == RoleEmployee && req.EmployeeID == "" {
		return AuthResponse{}, autherrors.ErrEmployeeRequired
	}

	var employeeID *uuid.UUID
	if req.EmployeeID != "" {
		eID, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return AuthResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		// Pastikan employee exist
		if _, err := s.employeeRepo.FindByID(ctx, eID.String()); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return AuthResponse{}, employeeerrors.ErrEmployeeNotFound.Withf("employee %s not found", req.EmployeeID)
			}
			return AuthResponse{}, err
		}
		employeeID = &eID
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	user := &User{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Name:       req.Name,
		Password:   string(hashed),
		Role:       role,
		IsActive:   true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResponse{}, mapCreateError(err)
	}

	s.logger.Info("user registered",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("user_id", user.ID.String()),
		zap.String("role", role),
	)

	return mapToResponse(user), nil
}

func (s *service) issuePair(user *User) (string, string, error) {
	employeeID := ""
	if user.EmployeeID != nil {
		employeeID = user.EmployeeID.String()
	}

	access, err := s.generateToken(user.ID.String(), employeeID, user.Role, tokenTypeAccess, s.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.generateToken(user.ID.String(), employeeID, user.Role, tokenTypeRefresh, refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// reusable token generator
func (s *service) generateToken(userID, employeeID, role, tokenType string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"role":       role,
		"token_type": tokenType,
		"exp":        time.Now().Add(expiry).Unix(),
	}
	if employeeID != "" {
		claims["employee_id"] = employeeID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *service) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}

func mapCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_user_email":
			return autherrors.ErrEmailAlreadyRegistered
		case "uq_user_employee":
			return autherrors.ErrEmployeeAlreadyLinked
		}
	}
	return err
}

func mapToResponse(user *User) AuthResponse {
	resp := AuthResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
	if user.EmployeeID != nil {
		resp.EmployeeID = user.EmployeeID.String()
	}
	return resp
}
