package payroll

import (
	"context"
	"time"

	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
)

const PayslipContentType = "application/pdf"

type Payslip struct {
	Filename    string
	ContentType string
	Content     []byte
}

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type PayslipService interface {
	Generate(ctx context.Context, employeeID string, month, year int) (Payslip, error)
	GenerateByID(ctx context.Context, salaryID string) (Payslip, error)
}

type payslipService struct {
	repo      Repository
	employees EmployeeResolver
	renderer  PayslipRenderer
	logger    *zap.Logger
}

func NewPayslipService(
	repo Repository,
	employees EmployeeResolver,
	renderer PayslipRenderer,
	logger ...*zap.Logger,
) PayslipService {
	l := zap.L().Named("payroll.payslip")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.payslip")
	}
	if renderer == nil {
		renderer = NewPDFRenderer()
	}
	return &payslipService{
		repo:      repo,
		employees: employees,
		renderer:  renderer,
		logger:    l,
	}
}

func (s *payslipService) Generate(ctx context.Context, employeeID string, month, year int) (Payslip, error) {
	if err := validateEmployeeID(employeeID); err != nil {
		return Payslip{}, err
	}
	if err := validatePeriod(month, year); err != nil {
		return Payslip{}, err
	}

	record, err := s.repo.FindByEmployeeAndPeriod(ctx, employeeID, month, year)
	if err != nil {
		if isNotFound(err) {
			return Payslip{}, payrollerrors.ErrSalaryNotFound.Withf(
				"salary record not found for employee %s in %02d/%d", employeeID, month, year)
		}
		return Payslip{}, err
	}

	return s.render(ctx, record)
}

func (s *payslipService) GenerateByID(ctx context.Context, salaryID string) (Payslip, error) {
	if err := validateSalaryID(salaryID); err != nil {
		return Payslip{}, err
	}

	record, err := s.repo.FindByID(ctx, salaryID)
	if err != nil {
		if isNotFound(err) {
			return Payslip{}, payrollerrors.ErrSalaryNotFound.Withf("salary record %s not found", salaryID)
		}
		return Payslip{}, err
	}

	return s.render(ctx, record)
}

func (s *payslipService) render(ctx context.Context, record *SalaryRecord) (Payslip, error) {
	rid := contextutil.GetRequestID(ctx)
	employeeID := record.EmployeeID.String()

	profile, err := s.employees.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if isNotFound(err) {
			return Payslip{}, payrollerrors.ErrEmployeeNotFound.Withf("employee %s not found", employeeID)
		}
		return Payslip{}, err
	}

	doc := BuildPayslipDocument(*record, profile, time.Now())
	content, err := s.renderer.Render(doc)
	if err != nil {
		s.logger.Error("render payslip failed",
			zap.String("request_id", rid),
			zap.String("salary_id", record.ID.String()),
			zap.Error(err),
		)
		return Payslip{}, payrollerrors.ErrPayslipRender
	}

	s.logger.Info("payslip generated",
		zap.String("request_id", rid),
		zap.String("salary_id", record.ID.String()),
		zap.Int("bytes", len(content)),
	)

	return Payslip{
		Filename:    PayslipFilename(profile.Code, record.Month, record.Year),
		ContentType: PayslipContentType,
		Content:     content,
	}, nil
}
