package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/shared/connection"
	"go-payroll/internal/shared/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const periodDescOrder = "year DESC, month DESC"

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByID(ctx context.Context, id string) (*SalaryRecord, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*SalaryRecord, error)
	ExistsByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (bool, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]SalaryRecord, error)
	FindPageByEmployee(ctx context.Context, employeeID string, page, pageSize int) ([]SalaryRecord, int64, error)
	FindAllByPeriod(ctx context.Context, month, year int) ([]SalaryRecord, error)
	FindAllByYear(ctx context.Context, year int) ([]SalaryRecord, error)
	FindByProcessed(ctx context.Context, processed bool) ([]SalaryRecord, error)
	FindUnprocessedByPeriod(ctx context.Context, month, year int) ([]SalaryRecord, error)
	Upsert(ctx context.Context, record *SalaryRecord) error
	Update(ctx context.Context, record *SalaryRecord) error
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

func (r *repository) FindByID(ctx context.Context, id string) (*SalaryRecord, error) {
	var record SalaryRecord
	err := r.session(ctx).
		Preload("Employee").
		First(&record, "id = ?", id).Error
	return &record, err
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*SalaryRecord, error) {
	var record SalaryRecord
	err := r.session(ctx).
		Preload("Employee").
		Scopes(scope.Employee(employeeID), scope.Period(month, year)).
		First(&record).Error
	return &record, err
}

func (r *repository) ExistsByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	var count int64
	err := r.session(ctx).
		Model(&SalaryRecord{}).
		Scopes(scope.Employee(employeeID), scope.Period(month, year)).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := r.session(ctx).
		Preload("Employee").
		Scopes(scope.Employee(employeeID)).
		Order(periodDescOrder).
		Find(&records).Error
	return records, err
}

func (r *repository) FindPageByEmployee(ctx context.Context, employeeID string, page, pageSize int) ([]SalaryRecord, int64, error) {
	var total int64
	if err := r.session(ctx).
		Model(&SalaryRecord{}).
		Scopes(scope.Employee(employeeID)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []SalaryRecord
	err := r.session(ctx).
		Preload("Employee").
		Scopes(scope.Employee(employeeID), scope.Paginate(page, pageSize)).
		Order(periodDescOrder).
		Find(&records).Error
	return records, total, err
}

func (r *repository) FindAllByPeriod(ctx context.Context, month, year int) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := r.session(ctx).
		Preload("Employee").
		Scopes(scope.Period(month, year)).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindAllByYear(ctx context.Context, year int) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := r.session(ctx).
		Preload("Employee").
		Where("year = ?", year).
		Order("month DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByProcessed(ctx context.Context, processed bool) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := r.session(ctx).
		Preload("Employee").
		Where("processed = ?", processed).
		Order(periodDescOrder).
		Find(&records).Error
	return records, err
}

func (r *repository) FindUnprocessedByPeriod(ctx context.Context, month, year int) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := r.session(ctx).
		Scopes(scope.Period(month, year)).
		Where("processed = ?", false).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Find(&records).Error
	return records, err
}

// Upsert inserts the record or, when (employee_id, month, year) already
// exists, overwrites its inputs and derived amounts in the same statement.
// The existing row keeps its id, created_at and processed flag.
func (r *repository) Upsert(ctx context.Context, record *SalaryRecord) error {
	return r.session(ctx).
		Omit("Employee").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "month"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"basic_salary", "allowances", "deductions", "tax_percent",
				"gross_salary", "tax_amount", "net_salary", "updated_at",
			}),
		}).
		Create(record).Error
}

func (r *repository) Update(ctx context.Context, record *SalaryRecord) error {
	record.UpdatedAt = time.Now().UTC()
	return r.session(ctx).
		Omit("Employee").
		Save(record).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.session(ctx).
		Delete(&SalaryRecord{}, "id = ?", id).Error
}
