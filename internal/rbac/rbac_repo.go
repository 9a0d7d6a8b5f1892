package rbac

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	ListRolePermissions(ctx context.Context) ([]RolePermission, error)
	Create(ctx context.Context, rp *RolePermission) error
	Delete(ctx context.Context, role, resource, action string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListRolePermissions(ctx context.Context) ([]RolePermission, error) {
	var result []RolePermission
	err := r.db.WithContext(ctx).
		Order("role, resource, action").
		Find(&result).Error
	return result, err
}

func (r *repository) Create(ctx context.Context, rp *RolePermission) error {
	return r.db.WithContext(ctx).Create(rp).Error
}

func (r *repository) Delete(ctx context.Context, role, resource, action string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("role = ? AND resource = ? AND action = ?", role, resource, action).
		Delete(&RolePermission{})
	return res.RowsAffected, res.Error
}
