package insight_test

import (
	"context"
	"errors"
	"testing"

	"go-payroll/internal/insight"
	insighterrors "go-payroll/internal/insight/errors"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	payrollMock "go-payroll/internal/payroll/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	prompts []string
	reply   string
	err     error
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func TestService_SalaryInsights(t *testing.T) {
	ctx := context.Background()

	t.Run("prompt carries the formatted history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		payrollSvc := payrollMock.NewMockService(ctrl)
		gen := &fakeGenerator{reply: "Consider restructuring allowances."}
		svc := insight.NewService(payrollSvc, gen, zap.NewNop())

		payrollSvc.EXPECT().GetHistory(ctx, "emp-1").Return(sampleHistory(), nil)

		res, err := svc.SalaryInsights(ctx, "emp-1")

		assert.NoError(t, err)
		assert.True(t, res.Generated)
		assert.Equal(t, insight.KindSalaryInsight, res.Kind)
		assert.Equal(t, "Consider restructuring allowances.", res.Content)
		if assert.Len(t, gen.prompts, 1) {
			assert.Contains(t, gen.prompts[0], "salary data for employee Asha Rao")
			assert.Contains(t, gen.prompts[0], "Gross Salary: INR 60000.00")
		}
	})

	t.Run("empty history skips the model", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		payrollSvc := payrollMock.NewMockService(ctrl)
		gen := &fakeGenerator{}
		svc := insight.NewService(payrollSvc, gen, zap.NewNop())

		payrollSvc.EXPECT().GetHistory(ctx, "emp-2").Return([]payroll.SalaryResponse{}, nil)

		res, err := svc.SalaryInsights(ctx, "emp-2")

		assert.NoError(t, err)
		assert.False(t, res.Generated)
		assert.Equal(t, "No salary data available for analysis.", res.Content)
		assert.Empty(t, gen.prompts)
	})

	t.Run("generator failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		payrollSvc := payrollMock.NewMockService(ctrl)
		svc := insight.NewService(payrollSvc, &fakeGenerator{err: errors.New("quota")}, zap.NewNop())

		payrollSvc.EXPECT().GetHistory(ctx, "emp-1").Return(sampleHistory(), nil)

		_, err := svc.SalaryInsights(ctx, "emp-1")
		assert.ErrorIs(t, err, insighterrors.ErrInsightUnavailable)
	})

	t.Run("payroll errors pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		payrollSvc := payrollMock.NewMockService(ctrl)
		svc := insight.NewService(payrollSvc, &fakeGenerator{}, zap.NewNop())

		payrollSvc.EXPECT().GetHistory(ctx, "bad").Return(nil, payrollerrors.ErrInvalidEmployeeID)

		_, err := svc.SalaryInsights(ctx, "bad")
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidEmployeeID)
	})
}

func TestService_TaxAdvice(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	payrollSvc := payrollMock.NewMockService(ctrl)
	gen := &fakeGenerator{reply: "advice"}
	svc := insight.NewService(payrollSvc, gen, zap.NewNop())

	payrollSvc.EXPECT().GetHistory(ctx, "emp-1").Return(sampleHistory(), nil)

	res, err := svc.TaxAdvice(ctx, "emp-1")

	assert.NoError(t, err)
	assert.Equal(t, insight.KindTaxAdvice, res.Kind)
	assert.Contains(t, gen.prompts[0], "Annual Tax: INR 144000.00")
}

func TestService_PayrollReport(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	payrollSvc := payrollMock.NewMockService(ctrl)
	gen := &fakeGenerator{reply: "report"}
	svc := insight.NewService(payrollSvc, gen, zap.NewNop())

	payrollSvc.EXPECT().
		GetPeriodSummary(ctx, 3, 2024).
		Return(payroll.PeriodSummaryResponse{Month: 3, Year: 2024, Headcount: 1, TotalNet: "51725.00"}, nil)
	payrollSvc.EXPECT().
		GetPeriodSummary(ctx, 4, 2024).
		Return(payroll.PeriodSummaryResponse{Month: 4, Year: 2024}, nil)

	res, err := svc.PayrollReport(ctx, 3, 2024)
	assert.NoError(t, err)
	assert.Equal(t, "03/2024", res.Subject)
	assert.Contains(t, gen.prompts[0], "Total Net Payroll: INR 51725.00")

	res, err = svc.PayrollReport(ctx, 4, 2024)
	assert.NoError(t, err)
	assert.False(t, res.Generated)
	assert.Len(t, gen.prompts, 1)
}

func TestService_Ask(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := &fakeGenerator{reply: "answer"}
	svc := insight.NewService(payrollMock.NewMockService(ctrl), gen, zap.NewNop())

	_, err := svc.Ask(context.Background(), "   ")
	assert.ErrorIs(t, err, insighterrors.ErrEmptyQuestion)

	res, err := svc.Ask(context.Background(), "How is gross computed?")
	assert.NoError(t, err)
	assert.Equal(t, "answer", res.Content)
	assert.Contains(t, gen.prompts[0], "How is gross computed?")
}
