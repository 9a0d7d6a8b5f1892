package employee

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	DepartmentExists(ctx context.Context, departmentID string) (bool, error)
	Update(ctx context.Context, empl *Employee) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.session(ctx).Omit("Department").Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.session(ctx).
		Preload("Department").
		Order("employee_code ASC").
		Find(&empls).Error
	return empls, err
}

// FindOptions loads only what a picker needs.
func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.session(ctx).
		Select("id", "employee_code", "first_name", "last_name").
		Order("first_name ASC, last_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.session(ctx).
		Preload("Department").
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) DepartmentExists(ctx context.Context, departmentID string) (bool, error) {
	var count int64
	err := r.session(ctx).
		Table("departments").
		Where("id = ?", departmentID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.session(ctx).Omit("Department").Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.session(ctx).Delete(&Employee{}, "id = ?", id).Error
}
