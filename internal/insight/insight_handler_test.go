package insight_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/insight"
	insighterrors "go-payroll/internal/insight/errors"
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeInsightService struct {
	calledWith string
	err        error
}

func (f *fakeInsightService) SalaryInsights(_ context.Context, employeeID string) (insight.InsightResponse, error) {
	f.calledWith = employeeID
	return insight.InsightResponse{Kind: insight.KindSalaryInsight, Subject: employeeID}, f.err
}

func (f *fakeInsightService) TaxAdvice(_ context.Context, employeeID string) (insight.InsightResponse, error) {
	f.calledWith = employeeID
	return insight.InsightResponse{Kind: insight.KindTaxAdvice}, f.err
}

func (f *fakeInsightService) PayrollReport(context.Context, int, int) (insight.InsightResponse, error) {
	return insight.InsightResponse{Kind: insight.KindPayrollReport}, f.err
}

func (f *fakeInsightService) Ask(_ context.Context, q string) (insight.InsightResponse, error) {
	f.calledWith = q
	return insight.InsightResponse{Kind: insight.KindAnswer}, f.err
}

func newInsightRouter(svc insight.Service, role, employeeID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := insight.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "user-1")
		c.Set(middleware.ContextRole, role)
		if employeeID != "" {
			c.Set(middleware.ContextEmployeeID, employeeID)
		}
		c.Next()
	})
	r.GET("/insights/me/salary", h.GetMySalaryInsights)
	r.GET("/insights/employees/:employeeId/salary", h.GetSalaryInsights)
	r.GET("/insights/employees/:employeeId/tax-advice", h.GetTaxAdvice)
	r.GET("/insights/payroll-report/:month/:year", h.GetPayrollReport)
	r.POST("/insights/ask", h.Ask)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_SalaryInsightsVisibility(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		employeeID string
		path       string
		wantStatus int
		wantTarget string
	}{
		{"admin any employee", "ADMIN", "", "/insights/employees/emp-9/salary", http.StatusOK, "emp-9"},
		{"employee own record", "EMPLOYEE", "emp-1", "/insights/employees/emp-1/salary", http.StatusOK, "emp-1"},
		{"employee other record", "EMPLOYEE", "emp-1", "/insights/employees/emp-2/salary", http.StatusForbidden, ""},
		{"employee tax advice other record", "EMPLOYEE", "emp-1", "/insights/employees/emp-2/tax-advice", http.StatusForbidden, ""},
		{"self route", "EMPLOYEE", "emp-1", "/insights/me/salary", http.StatusOK, "emp-1"},
		{"self route without profile", "ADMIN", "", "/insights/me/salary", http.StatusForbidden, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeInsightService{}
			w := serve(newInsightRouter(svc, tt.role, tt.employeeID), http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantTarget, svc.calledWith)
		})
	}
}

func TestHandler_PayrollReport(t *testing.T) {
	r := newInsightRouter(&fakeInsightService{}, "ADMIN", "")

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/insights/payroll-report/3/2024", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/insights/payroll-report/march/2024", "").Code)
}

func TestHandler_Ask(t *testing.T) {
	svc := &fakeInsightService{}
	r := newInsightRouter(svc, "EMPLOYEE", "emp-1")

	w := serve(r, http.MethodPost, "/insights/ask", `{"question":"What is net pay?"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "What is net pay?", svc.calledWith)

	w = serve(r, http.MethodPost, "/insights/ask", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.err = insighterrors.ErrInsightUnavailable
	w = serve(r, http.MethodPost, "/insights/ask", `{"question":"again"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
