package department_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/department"
	departmenterrors "go-payroll/internal/department/errors"
	"go-payroll/internal/shared/apperror"

	departmentMock "go-payroll/internal/department/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   department.Service
	repo      *departmentMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := departmentMock.NewMockRepository(ctrl)

	svc := department.NewService(db, repo, dbRedis)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func assertAppCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, code, appErr.Code)
	}
}

func TestDepartmentService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("cache hit skips the database", func(t *testing.T) {
		cached := []department.DepartmentResponse{
			{ID: "dep-1", Name: "Engineering"},
			{ID: "dep-2", Name: "Finance"},
		}
		payload, _ := json.Marshal(cached)
		deps.redismock.ExpectGet(department.DepartmentAllKey).SetVal(string(payload))

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		id := uuid.New()
		deps.redismock.ExpectGet(department.DepartmentAllKey).RedisNil()
		deps.repo.EXPECT().
			FindAll(ctx).
			Return([]department.Department{{ID: id, Name: "Finance"}}, nil).
			Times(1)

		expected := []department.DepartmentResponse{{ID: id.String(), Name: "Finance"}}
		payload, _ := json.Marshal(expected)
		deps.redismock.ExpectSet(department.DepartmentAllKey, payload, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		deps.redismock.ExpectGet(department.DepartmentAllKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return(nil, errors.New("db connection error"))

		resp, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByName(ctx, "Finance").Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, d *department.Department) error {
				assert.Equal(t, "Finance", d.Name)
				assert.Equal(t, "Money things", d.Description)
				assert.NotEqual(t, uuid.Nil, d.ID)
				return nil
			})
		deps.redismock.ExpectDel(department.DepartmentAllKey).SetVal(1)

		resp, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: " Finance ", Description: "Money things"})

		assert.NoError(t, err)
		assert.Equal(t, "Finance", resp.Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("duplicate name is invalid state", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByName(ctx, "Finance").Return(&department.Department{ID: uuid.New(), Name: "finance"}, nil)

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Finance"})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNameTaken)
		assertAppCode(t, err, apperror.CodeInvalidState)
	})

	t.Run("repo error rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByName(ctx, "HR").Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db error"))

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "HR"})

		assert.EqualError(t, err, "db error")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	targetID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps.repo.EXPECT().FindByID(ctx, targetID.String()).Return(&department.Department{ID: targetID, Name: "HR"}, nil)

		resp, err := deps.service.GetByID(ctx, targetID.String())

		assert.NoError(t, err)
		assert.Equal(t, targetID.String(), resp.ID)
	})

	t.Run("not found carries the id", func(t *testing.T) {
		deps.repo.EXPECT().FindByID(ctx, targetID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, targetID.String())

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
		assert.Contains(t, err.Error(), targetID.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := deps.service.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, departmenterrors.ErrInvalidDepartmentID)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()

	t.Run("keeping its own name is allowed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := &department.Department{ID: targetID, Name: "HR"}
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, targetID.String()).Return(existing, nil)
		deps.repo.EXPECT().FindByName(ctx, "HR").Return(existing, nil)
		deps.repo.EXPECT().Update(ctx, existing).Return(nil)
		deps.redismock.ExpectDel(department.DepartmentAllKey).SetVal(1)

		resp, err := deps.service.Update(ctx, targetID.String(), department.UpdateDepartmentRequest{Name: "HR", Description: "People"})

		assert.NoError(t, err)
		assert.Equal(t, "People", resp.Description)
	})

	t.Run("taking another department's name fails", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, targetID.String()).Return(&department.Department{ID: targetID, Name: "HR"}, nil)
		deps.repo.EXPECT().FindByName(ctx, "Finance").Return(&department.Department{ID: uuid.New(), Name: "Finance"}, nil)

		_, err := deps.service.Update(ctx, targetID.String(), department.UpdateDepartmentRequest{Name: "Finance"})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNameTaken)
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()

	t.Run("refused while employees reference it", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, targetID.String()).Return(&department.Department{ID: targetID}, nil)
		deps.repo.EXPECT().CountEmployees(ctx, targetID.String()).Return(int64(3), nil)

		err := deps.service.Delete(ctx, targetID.String())

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentInUse)
		assertAppCode(t, err, apperror.CodeInvalidState)
	})

	t.Run("empty department is removed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, targetID.String()).Return(&department.Department{ID: targetID}, nil)
		deps.repo.EXPECT().CountEmployees(ctx, targetID.String()).Return(int64(0), nil)
		deps.repo.EXPECT().Delete(ctx, targetID.String()).Return(nil)
		deps.redismock.ExpectDel(department.DepartmentAllKey).SetVal(1)

		err := deps.service.Delete(ctx, targetID.String())

		assert.NoError(t, err)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("unknown department", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, targetID.String()).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, targetID.String())

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}
