package payroll_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-payroll/internal/payroll"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gdb, mock
}

var salaryColumns = []string{
	"id", "employee_id", "month", "year", "basic_salary", "allowances", "deductions",
	"tax_percent", "gross_salary", "tax_amount", "net_salary", "processed", "created_at", "updated_at",
}

func TestRepository_FindAllByEmployee_OrdersByPeriodDesc(t *testing.T) {
	gdb, mock := newGormMock(t)
	employeeID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(salaryColumns)
	for _, p := range [][2]int{{3, 2024}, {1, 2024}, {12, 2023}} {
		rows.AddRow(uuid.NewString(), employeeID.String(), p[0], p[1], "1000.00", "0.00", "0.00", "0.00",
			"1000.00", "0.00", "1000.00", false, now, now)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "salary_records" WHERE employee_id = $1 ORDER BY year DESC, month DESC`)).
		WithArgs(employeeID.String()).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "employees" WHERE "employees"."id" = $1`)).
		WithArgs(employeeID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_code", "first_name", "last_name"}).
			AddRow(employeeID.String(), "EMP0001", "Asha", "Rao"))

	records, err := payroll.NewRepository(gdb).FindAllByEmployee(context.Background(), employeeID.String())

	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, 3, records[0].Month)
	assert.Equal(t, "1000", records[0].NetSalary.String())
	if assert.NotNil(t, records[2].Employee) {
		assert.Equal(t, "Asha Rao", records[2].Employee.FullName())
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExistsByEmployeeAndPeriod(t *testing.T) {
	gdb, mock := newGormMock(t)
	employeeID := uuid.New().String()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "salary_records" WHERE employee_id = $1 AND (month = $2 AND year = $3)`)).
		WithArgs(employeeID, 3, 2024).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := payroll.NewRepository(gdb).ExistsByEmployeeAndPeriod(context.Background(), employeeID, 3, 2024)

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert_UsesPeriodConflictTarget(t *testing.T) {
	gdb, mock := newGormMock(t)
	record := scenarioOneRecord()
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "salary_records" .* ON CONFLICT \("employee_id","month","year"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := payroll.NewRepository(gdb).Upsert(context.Background(), &record)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_InsideCallerTransaction(t *testing.T) {
	gdb, mock := newGormMock(t)
	sqlDB, err := gdb.DB()
	assert.NoError(t, err)
	id := uuid.New().String()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "salary_records" WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := sqlDB.Begin()
	assert.NoError(t, err)

	err = payroll.NewRepository(gdb).WithTx(tx).Delete(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID_NotFound(t *testing.T) {
	gdb, mock := newGormMock(t)
	id := uuid.New().String()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "salary_records" WHERE id = $1`)).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows(salaryColumns))

	_, err := payroll.NewRepository(gdb).FindByID(context.Background(), id)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
