package payroll_test

import (
	"context"
	"errors"
	"testing"

	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	payrollMock "go-payroll/internal/payroll/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type payslipDeps struct {
	service   payroll.PayslipService
	repo      *payrollMock.MockRepository
	employees *payrollMock.MockEmployeeResolver
	renderer  *payrollMock.MockPayslipRenderer
}

func setupPayslipTest(t *testing.T) *payslipDeps {
	ctrl := gomock.NewController(t)
	repo := payrollMock.NewMockRepository(ctrl)
	employees := payrollMock.NewMockEmployeeResolver(ctrl)
	renderer := payrollMock.NewMockPayslipRenderer(ctrl)

	return &payslipDeps{
		service:   payroll.NewPayslipService(repo, employees, renderer),
		repo:      repo,
		employees: employees,
		renderer:  renderer,
	}
}

func TestPayslipService_Generate(t *testing.T) {
	ctx := context.Background()
	record := scenarioOneRecord()
	employeeID := record.EmployeeID.String()

	t.Run("renders stored record", func(t *testing.T) {
		deps := setupPayslipTest(t)
		deps.repo.EXPECT().FindByEmployeeAndPeriod(ctx, employeeID, 3, 2024).Return(&record, nil)
		deps.employees.EXPECT().FindEmployeeByID(ctx, employeeID).
			Return(payroll.EmployeeProfile{ID: employeeID, Code: "EMP0001", FullName: "Asha Rao"}, nil)
		deps.renderer.EXPECT().Render(gomock.Any()).DoAndReturn(func(doc payroll.PayslipDocument) ([]byte, error) {
			assert.Equal(t, "PAYSLIP — March 2024", doc.Title)
			assert.Equal(t, "INR 51725.00", doc.Sections[2].Rows[0].Value)
			return []byte("%PDF-1.3 fake"), nil
		})

		payslip, err := deps.service.Generate(ctx, employeeID, 3, 2024)

		assert.NoError(t, err)
		assert.Equal(t, "payslip_EMP0001_3_2024.pdf", payslip.Filename)
		assert.Equal(t, payroll.PayslipContentType, payslip.ContentType)
		assert.Equal(t, []byte("%PDF-1.3 fake"), payslip.Content)
	})

	t.Run("missing record", func(t *testing.T) {
		deps := setupPayslipTest(t)
		deps.repo.EXPECT().FindByEmployeeAndPeriod(ctx, employeeID, 2, 2024).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Generate(ctx, employeeID, 2, 2024)

		assert.ErrorIs(t, err, payrollerrors.ErrSalaryNotFound)
		assert.Contains(t, err.Error(), "02/2024")
	})

	t.Run("employee removed", func(t *testing.T) {
		deps := setupPayslipTest(t)
		deps.repo.EXPECT().FindByEmployeeAndPeriod(ctx, employeeID, 3, 2024).Return(&record, nil)
		deps.employees.EXPECT().FindEmployeeByID(ctx, employeeID).Return(payroll.EmployeeProfile{}, employeeNotFound)

		_, err := deps.service.Generate(ctx, employeeID, 3, 2024)

		assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
	})

	t.Run("render failure", func(t *testing.T) {
		deps := setupPayslipTest(t)
		deps.repo.EXPECT().FindByEmployeeAndPeriod(ctx, employeeID, 3, 2024).Return(&record, nil)
		deps.employees.EXPECT().FindEmployeeByID(ctx, employeeID).Return(payroll.EmployeeProfile{Code: "EMP0001"}, nil)
		deps.renderer.EXPECT().Render(gomock.Any()).Return(nil, errors.New("font missing"))

		_, err := deps.service.Generate(ctx, employeeID, 3, 2024)

		assert.ErrorIs(t, err, payrollerrors.ErrPayslipRender)
	})

	t.Run("invalid period", func(t *testing.T) {
		deps := setupPayslipTest(t)
		_, err := deps.service.Generate(ctx, employeeID, 0, 2024)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriod)
	})
}

func TestPayslipService_GenerateByID(t *testing.T) {
	ctx := context.Background()
	record := scenarioOneRecord()
	id := record.ID.String()

	deps := setupPayslipTest(t)
	deps.repo.EXPECT().FindByID(ctx, id).Return(&record, nil)
	deps.employees.EXPECT().FindEmployeeByID(ctx, record.EmployeeID.String()).Return(payroll.EmployeeProfile{Code: "EMP0001"}, nil)
	deps.renderer.EXPECT().Render(gomock.Any()).Return([]byte("%PDF"), nil)

	payslip, err := deps.service.GenerateByID(ctx, id)

	assert.NoError(t, err)
	assert.Equal(t, "payslip_EMP0001_3_2024.pdf", payslip.Filename)

	_, err = setupPayslipTest(t).service.GenerateByID(ctx, "bad-id")
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidSalaryID)

	missing := setupPayslipTest(t)
	unknown := uuid.New().String()
	missing.repo.EXPECT().FindByID(ctx, unknown).Return(nil, gorm.ErrRecordNotFound)
	_, err = missing.service.GenerateByID(ctx, unknown)
	assert.ErrorIs(t, err, payrollerrors.ErrSalaryNotFound)
}

func TestPayslipService_RealRendererProducesPDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := payrollMock.NewMockRepository(ctrl)
	employees := payrollMock.NewMockEmployeeResolver(ctrl)
	svc := payroll.NewPayslipService(repo, employees, nil)

	record := scenarioOneRecord()
	repo.EXPECT().FindByID(gomock.Any(), record.ID.String()).Return(&record, nil)
	employees.EXPECT().FindEmployeeByID(gomock.Any(), record.EmployeeID.String()).Return(payroll.EmployeeProfile{Code: "EMP0001"}, nil)

	payslip, err := svc.GenerateByID(context.Background(), record.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, "%PDF-", string(payslip.Content[:5]))
}
