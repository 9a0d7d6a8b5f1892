package user

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	UpdateStatus(ctx context.Context, id string, isActive bool) error
	UpdatePassword(ctx context.Context, id string, hashed string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Account, error) {
	var users []Account
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("email ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Account, error) {
	var u Account
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, isActive bool) error {
	return r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", id).
		Update("is_active", isActive).Error
}

func (r *repository) UpdatePassword(ctx context.Context, id string, hashed string) error {
	return r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", id).
		Update("password", hashed).Error
}
