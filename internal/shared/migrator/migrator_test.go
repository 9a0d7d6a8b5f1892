package migrator_test

import (
	"io"
	"strings"
	"testing"

	"go-payroll/migrations"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
)

func TestEmbeddedMigrations_Sequence(t *testing.T) {
	src, err := iofs.New(migrations.FS, ".")
	if !assert.NoError(t, err) {
		return
	}
	defer src.Close()

	first, err := src.First()
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, uint(1), first)

	versions := []uint{first}
	for v := first; ; {
		next, err := src.Next(v)
		if err != nil {
			break
		}
		versions = append(versions, next)
		v = next
	}
	assert.Equal(t, []uint{1, 2, 3}, versions)

	for _, v := range versions {
		_, _, err := src.ReadDown(v)
		assert.NoError(t, err, "version %d needs a down migration", v)
	}
}

func TestEmbeddedMigrations_SchemaConstraints(t *testing.T) {
	src, err := iofs.New(migrations.FS, ".")
	if !assert.NoError(t, err) {
		return
	}
	defer src.Close()

	r, _, err := src.ReadUp(1)
	if !assert.NoError(t, err) {
		return
	}
	body, err := io.ReadAll(r)
	if !assert.NoError(t, err) {
		return
	}
	r.Close()

	schema := string(body)
	for _, name := range []string{
		"uq_salary_employee_period",
		"fk_salary_records_employee",
		"fk_employees_department",
		"uq_department_name",
		"uq_employee_code",
		"uq_user_email",
		"uq_user_employee",
	} {
		assert.True(t, strings.Contains(schema, name), "missing %s", name)
	}
}
