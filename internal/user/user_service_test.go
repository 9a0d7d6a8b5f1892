package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/user"
	usererrors "go-payroll/internal/user/errors"
	userMock "go-payroll/internal/user/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func hashed(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := userMock.NewMockRepository(ctrl)
	svc := user.NewService(repo)

	empID := uuid.New()
	rows := []user.Account{
		{
			ID:         uuid.New(),
			EmployeeID: &empID,
			Name:       "Asha",
			Email:      "asha@corp.in",
			Role:       "EMPLOYEE",
			IsActive:   true,
			CreatedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			Employee:   &user.AccountEmployee{ID: empID, EmployeeCode: "EMP-0001", FirstName: "Asha", LastName: "Rao"},
		},
		{ID: uuid.New(), Name: "Root", Email: "admin@corp.in", Role: "ADMIN", IsActive: true},
	}
	repo.EXPECT().FindAll(gomock.Any()).Return(rows, nil)

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, empID.String(), res[0].EmployeeID)
	assert.Equal(t, "EMP-0001", res[0].EmployeeCode)
	assert.Equal(t, "Asha Rao", res[0].FullName)
	assert.Equal(t, "2024-01-02 03:04:05", res[0].CreatedAt)
	assert.Empty(t, res[1].EmployeeID)
}

func TestService_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := user.NewService(userMock.NewMockRepository(ctrl))
		_, err := svc.GetByID(context.Background(), "not-a-uuid")
		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := userMock.NewMockRepository(ctrl)
		svc := user.NewService(repo)
		id := uuid.NewString()

		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}

func TestService_ToggleStatus(t *testing.T) {
	t.Run("cannot deactivate self", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := user.NewService(userMock.NewMockRepository(ctrl))
		id := uuid.NewString()

		err := svc.ToggleStatus(context.Background(), id, id, false)
		assert.ErrorIs(t, err, usererrors.ErrCannotDeactivateSelf)
	})

	t.Run("deactivate other user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := userMock.NewMockRepository(ctrl)
		svc := user.NewService(repo)
		id := uuid.New()

		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&user.Account{ID: id, IsActive: true}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), id.String(), false).Return(nil)

		err := svc.ToggleStatus(context.Background(), uuid.NewString(), id.String(), false)
		assert.NoError(t, err)
	})

	t.Run("reactivating self is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := userMock.NewMockRepository(ctrl)
		svc := user.NewService(repo)
		id := uuid.New()

		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&user.Account{ID: id}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), id.String(), true).Return(nil)

		assert.NoError(t, svc.ToggleStatus(context.Background(), id.String(), id.String(), true))
	})
}

func TestService_ChangePassword(t *testing.T) {
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := userMock.NewMockRepository(ctrl)
		svc := user.NewService(repo)

		repo.EXPECT().FindByID(gomock.Any(), id.String()).
			Return(&user.Account{ID: id, Password: hashed(t, "old-secret")}, nil)
		repo.EXPECT().UpdatePassword(gomock.Any(), id.String(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, h string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("new-secret")))
				return nil
			})

		err := svc.ChangePassword(context.Background(), id.String(), "old-secret", "new-secret")
		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := userMock.NewMockRepository(ctrl)
		svc := user.NewService(repo)

		repo.EXPECT().FindByID(gomock.Any(), id.String()).
			Return(&user.Account{ID: id, Password: hashed(t, "old-secret")}, nil)

		err := svc.ChangePassword(context.Background(), id.String(), "guess", "new-secret")
		assert.ErrorIs(t, err, usererrors.ErrWrongPassword)
	})

	t.Run("same password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := userMock.NewMockRepository(ctrl)
		svc := user.NewService(repo)

		repo.EXPECT().FindByID(gomock.Any(), id.String()).
			Return(&user.Account{ID: id, Password: hashed(t, "old-secret")}, nil)

		err := svc.ChangePassword(context.Background(), id.String(), "old-secret", "old-secret")
		assert.ErrorIs(t, err, usererrors.ErrSamePassword)
	})
}

func TestService_ForceResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := userMock.NewMockRepository(ctrl)
	svc := user.NewService(repo)
	id := uuid.New()
	dbErr := errors.New("connection reset")

	repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&user.Account{ID: id}, nil)
	repo.EXPECT().UpdatePassword(gomock.Any(), id.String(), gomock.Any()).Return(dbErr)

	err := svc.ForceResetPassword(context.Background(), id.String(), "brand-new-pass")
	assert.ErrorIs(t, err, dbErr)
}
