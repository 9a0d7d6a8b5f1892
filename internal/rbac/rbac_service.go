package rbac

import (
	"context"
	"errors"
	"sync"

	"go-payroll/internal/auth"
	"go-payroll/internal/domain"
	rbacerrors "go-payroll/internal/rbac/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/casbin/casbin/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ADMIN can do everything EMPLOYEE can.
var roleInheritance = [][2]string{
	{auth.RoleAdmin, auth.RoleEmployee},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(req domain.EnforceRequest) (bool, error)
	ListPermissions(ctx context.Context) ([]domain.PermissionResponse, error)
	Grant(ctx context.Context, req domain.GrantPermissionRequest) (domain.PermissionResponse, error)
	Revoke(ctx context.Context, req domain.GrantPermissionRequest) error
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	loaded   bool
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadPolicy(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadPolicyUnlocked(ctx)
}

func (s *service) loadPolicyUnlocked(ctx context.Context) error {
	s.enforcer.ClearPolicy()

	for _, g := range roleInheritance {
		if _, err := s.enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.ListRolePermissions(ctx)
	if err != nil {
		return err
	}

	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.Role, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.loaded = true
	s.logger.Info("rbac policy loaded",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		if err := s.loadPolicyUnlocked(context.Background()); err != nil {
			s.logger.Error("rbac policy load failed", zap.Error(err))
			return false, rbacerrors.ErrPolicyLoadFailed
		}
	}

	role, resource, action := normalize(req.Role, req.Resource, req.Action)

	allowed, err := s.enforcer.Enforce(role, resource, action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", role),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}

func (s *service) ListPermissions(ctx context.Context) ([]domain.PermissionResponse, error) {
	rows, err := s.repo.ListRolePermissions(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.PermissionResponse, 0, len(rows))
	for _, rp := range rows {
		res = append(res, mapToResponse(rp))
	}
	return res, nil
}

func (s *service) Grant(ctx context.Context, req domain.GrantPermissionRequest) (domain.PermissionResponse, error) {
	role, resource, action := normalize(req.Role, req.Resource, req.Action)
	rp := &RolePermission{Role: role, Resource: resource, Action: action}

	if err := s.repo.Create(ctx, rp); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.PermissionResponse{}, rbacerrors.ErrPermissionExists.Withf(
				"%s already has %s:%s", role, resource, action)
		}
		return domain.PermissionResponse{}, err
	}

	if err := s.LoadPolicy(ctx); err != nil {
		return domain.PermissionResponse{}, err
	}

	s.logger.Info("permission granted",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("role", role),
		zap.String("permission", resource+":"+action),
	)
	return mapToResponse(*rp), nil
}

func (s *service) Revoke(ctx context.Context, req domain.GrantPermissionRequest) error {
	role, resource, action := normalize(req.Role, req.Resource, req.Action)

	affected, err := s.repo.Delete(ctx, role, resource, action)
	if err != nil {
		return err
	}
	if affected == 0 {
		return rbacerrors.ErrPermissionNotFound.Withf("%s does not have %s:%s", role, resource, action)
	}

	if err := s.LoadPolicy(ctx); err != nil {
		return err
	}

	s.logger.Info("permission revoked",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("role", role),
		zap.String("permission", resource+":"+action),
	)
	return nil
}
