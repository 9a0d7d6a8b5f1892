package insight

import (
	"net/http"
	"strconv"

	"go-payroll/internal/middleware"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// targetEmployee resolves :employeeId (or the caller for /me routes) and
// applies the same visibility rule as salary reads.
func (h *Handler) targetEmployee(c *gin.Context, self bool) (string, bool) {
	actor := payroll.Actor{
		UserID:     c.GetString(middleware.ContextUserID),
		EmployeeID: c.GetString(middleware.ContextEmployeeID),
		Role:       c.GetString(middleware.ContextRole),
	}

	if self {
		if actor.EmployeeID == "" {
			h.writeServiceError(c, payrollerrors.ErrNoEmployeeProfile)
			return "", false
		}
		return actor.EmployeeID, true
	}

	employeeID := c.Param("employeeId")
	if !payroll.CanView(actor, employeeID) {
		h.writeServiceError(c, payrollerrors.ErrAccessDenied)
		return "", false
	}
	return employeeID, true
}

func (h *Handler) GetSalaryInsights(c *gin.Context) {
	h.salaryInsights(c, false)
}

func (h *Handler) GetMySalaryInsights(c *gin.Context) {
	h.salaryInsights(c, true)
}

func (h *Handler) salaryInsights(c *gin.Context, self bool) {
	employeeID, ok := h.targetEmployee(c, self)
	if !ok {
		return
	}

	res, err := h.service.SalaryInsights(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetTaxAdvice(c *gin.Context) {
	h.taxAdvice(c, false)
}

func (h *Handler) GetMyTaxAdvice(c *gin.Context) {
	h.taxAdvice(c, true)
}

func (h *Handler) taxAdvice(c *gin.Context, self bool) {
	employeeID, ok := h.targetEmployee(c, self)
	if !ok {
		return
	}

	res, err := h.service.TaxAdvice(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetPayrollReport(c *gin.Context) {
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		h.writeServiceError(c, payrollerrors.ErrInvalidPeriod.Withf("month must be a number"))
		return
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		h.writeServiceError(c, payrollerrors.ErrInvalidPeriod.Withf("year must be a number"))
		return
	}

	res, err := h.service.PayrollReport(c.Request.Context(), month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Ask(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Ask(c.Request.Context(), req.Question)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
