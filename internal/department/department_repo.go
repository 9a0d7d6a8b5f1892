package department

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context) ([]Department, error)
	FindByID(ctx context.Context, id string) (*Department, error)
	FindByName(ctx context.Context, name string) (*Department, error)
	CountEmployees(ctx context.Context, id string) (int64, error)
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) session(ctx context.Context) *gorm.DB {
	return connection.Session(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.session(ctx).Create(dept).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	var depts []Department
	err := r.session(ctx).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := r.session(ctx).First(&dept, "id = ?", id).Error
	return &dept, err
}

// FindByName matches case-insensitively.
func (r *repository) FindByName(ctx context.Context, name string) (*Department, error) {
	var dept Department
	err := r.session(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&dept).Error
	return &dept, err
}

func (r *repository) CountEmployees(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.session(ctx).
		Table("employees").
		Where("department_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.session(ctx).Save(dept).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.session(ctx).
		Where("id = ?", id).
		Delete(&Department{}).Error
}
