package insight

import (
	"context"
	"fmt"
	"strings"
	"time"

	insighterrors "go-payroll/internal/insight/errors"
	"go-payroll/internal/payroll"
	"go-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	noSalaryData  = "No salary data available for analysis."
	noTaxData     = "No salary data available for tax advice."
	noPayrollData = "No payroll data available for the specified month."
)

//go:generate mockgen -source=insight_service.go -destination=mock/insight_service_mock.go -package=mock
type Service interface {
	SalaryInsights(ctx context.Context, employeeID string) (InsightResponse, error)
	TaxAdvice(ctx context.Context, employeeID string) (InsightResponse, error)
	PayrollReport(ctx context.Context, month, year int) (InsightResponse, error)
	Ask(ctx context.Context, question string) (InsightResponse, error)
}

type service struct {
	payroll   payroll.Service
	generator Generator
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(payrollService payroll.Service, generator Generator, logger ...*zap.Logger) Service {
	l := zap.L().Named("insight.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("insight.service")
	}
	return &service{
		payroll:   payrollService,
		generator: generator,
		logger:    l,
		now:       time.Now,
	}
}

func (s *service) SalaryInsights(ctx context.Context, employeeID string) (InsightResponse, error) {
	history, err := s.payroll.GetHistory(ctx, employeeID)
	if err != nil {
		return InsightResponse{}, err
	}
	if len(history) == 0 {
		return s.fallback(KindSalaryInsight, employeeID, noSalaryData), nil
	}

	name := history[0].EmployeeName
	if name == "" {
		name = employeeID
	}

	prompt := salaryInsightPrompt(name, FormatSalaryData(name, history))
	return s.generate(ctx, KindSalaryInsight, employeeID, prompt)
}

func (s *service) TaxAdvice(ctx context.Context, employeeID string) (InsightResponse, error) {
	history, err := s.payroll.GetHistory(ctx, employeeID)
	if err != nil {
		return InsightResponse{}, err
	}
	if len(history) == 0 {
		return s.fallback(KindTaxAdvice, employeeID, noTaxData), nil
	}

	prompt := taxAdvicePrompt(FormatTaxStructure(history[0]))
	return s.generate(ctx, KindTaxAdvice, employeeID, prompt)
}

func (s *service) PayrollReport(ctx context.Context, month, year int) (InsightResponse, error) {
	summary, err := s.payroll.GetPeriodSummary(ctx, month, year)
	if err != nil {
		return InsightResponse{}, err
	}

	subject := fmt.Sprintf("%02d/%d", month, year)
	if summary.Headcount == 0 {
		return s.fallback(KindPayrollReport, subject, noPayrollData), nil
	}

	return s.generate(ctx, KindPayrollReport, subject, payrollReportPrompt(FormatPayrollReport(summary)))
}

func (s *service) Ask(ctx context.Context, question string) (InsightResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return InsightResponse{}, insighterrors.ErrEmptyQuestion
	}
	return s.generate(ctx, KindAnswer, "question", questionPrompt(question))
}

func (s *service) generate(ctx context.Context, kind Kind, subject, prompt string) (InsightResponse, error) {
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("generate insight failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("kind", string(kind)),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return InsightResponse{}, insighterrors.ErrInsightUnavailable
	}

	s.logger.Info("insight generated",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("kind", string(kind)),
		zap.String("subject", subject),
	)

	return InsightResponse{
		Kind:        kind,
		Subject:     subject,
		Content:     text,
		Generated:   true,
		GeneratedAt: s.now().UTC(),
	}, nil
}

func (s *service) fallback(kind Kind, subject, message string) InsightResponse {
	return InsightResponse{
		Kind:        kind,
		Subject:     subject,
		Content:     message,
		GeneratedAt: s.now().UTC(),
	}
}
