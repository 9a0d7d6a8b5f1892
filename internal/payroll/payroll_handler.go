package payroll

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-payroll/internal/middleware"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service  Service
	payslips PayslipService
	rdb      *redis.Client
}

func NewHandler(service Service, payslips PayslipService) *Handler {
	return &Handler{service: service, payslips: payslips}
}

func NewHandlerWithRedis(service Service, payslips PayslipService, rdb *redis.Client) *Handler {
	return &Handler{service: service, payslips: payslips, rdb: rdb}
}

func actorFromContext(c *gin.Context) Actor {
	return Actor{
		UserID:     c.GetString(middleware.ContextUserID),
		EmployeeID: c.GetString(middleware.ContextEmployeeID),
		Role:       c.GetString(middleware.ContextRole),
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.writeServiceError(c, apperror.MapValidationError(err))
}

// authorizeEmployee writes 403 and returns false when the caller may not see
// targetEmployeeID's salaries.
func (h *Handler) authorizeEmployee(c *gin.Context, targetEmployeeID string) bool {
	if CanView(actorFromContext(c), targetEmployeeID) {
		return true
	}
	h.writeServiceError(c, payrollerrors.ErrAccessDenied)
	return false
}

// selfEmployeeID resolves the caller's own employee id for /me routes.
func (h *Handler) selfEmployeeID(c *gin.Context) (string, bool) {
	employeeID := c.GetString(middleware.ContextEmployeeID)
	if employeeID == "" {
		h.writeServiceError(c, payrollerrors.ErrNoEmployeeProfile)
		return "", false
	}
	return employeeID, true
}

func parsePeriodParams(c *gin.Context) (int, int, error) {
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return 0, 0, payrollerrors.ErrInvalidPeriod.Withf("month must be a number")
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, 0, payrollerrors.ErrInvalidPeriod.Withf("year must be a number")
	}
	return month, year, nil
}

func (h *Handler) CreateOrUpdate(c *gin.Context) {
	ctx := c.Request.Context()
	cacheKey := c.GetString(middleware.IdempotencyCacheKey)
	if h.rdb != nil {
		if lk := c.GetString(middleware.IdempotencyLockKey); lk != "" {
			defer h.rdb.Del(ctx, lk)
		}
	}

	var req SalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.CreateOrUpdate(ctx, c.Param("employeeId"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil && cacheKey != "" {
		if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
			_ = h.rdb.Set(ctx, cacheKey, payload, middleware.IdempotencyResultTTL).Err()
		}
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetHistory(c *gin.Context) {
	employeeID := c.Param("employeeId")
	if !h.authorizeEmployee(c, employeeID) {
		return
	}
	h.respondHistory(c, employeeID)
}

func (h *Handler) GetMyHistory(c *gin.Context) {
	employeeID, ok := h.selfEmployeeID(c)
	if !ok {
		return
	}
	h.respondHistory(c, employeeID)
}

func (h *Handler) respondHistory(c *gin.Context, employeeID string) {
	resp, err := h.service.GetHistory(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetHistoryPaged(c *gin.Context) {
	employeeID := c.Param("employeeId")
	if !h.authorizeEmployee(c, employeeID) {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	resp, total, err := h.service.GetHistoryPaged(c.Request.Context(), employeeID, page, pageSize)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if !h.authorizeEmployee(c, resp.EmployeeID) {
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByPeriod(c *gin.Context) {
	employeeID := c.Param("employeeId")
	if !h.authorizeEmployee(c, employeeID) {
		return
	}
	h.respondPeriod(c, employeeID)
}

func (h *Handler) GetMyPeriod(c *gin.Context) {
	employeeID, ok := h.selfEmployeeID(c)
	if !ok {
		return
	}
	h.respondPeriod(c, employeeID)
}

func (h *Handler) respondPeriod(c *gin.Context, employeeID string) {
	month, year, err := parsePeriodParams(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetByPeriod(c.Request.Context(), employeeID, month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAllByPeriod(c *gin.Context) {
	month, year, err := parsePeriodParams(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetAllByPeriod(c.Request.Context(), month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetPeriodSummary(c *gin.Context) {
	month, year, err := parsePeriodParams(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetPeriodSummary(c.Request.Context(), month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAllByYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		h.writeServiceError(c, payrollerrors.ErrInvalidPeriod.Withf("year must be a number"))
		return
	}

	resp, err := h.service.GetAllByYear(c.Request.Context(), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetUnprocessed(c *gin.Context) {
	resp, err := h.service.GetUnprocessed(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MarkProcessed(c *gin.Context) {
	resp, err := h.service.MarkProcessed(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ProcessPeriod(c *gin.Context) {
	month, year, err := parsePeriodParams(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.RequestBatchProcess(c.Request.Context(), month, year, c.GetString(middleware.ContextUserID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	status := http.StatusOK
	if resp.Queued {
		status = http.StatusAccepted
	}
	response.Success(c, status, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) DownloadPayslip(c *gin.Context) {
	employeeID := c.Param("employeeId")
	if !h.authorizeEmployee(c, employeeID) {
		return
	}
	h.respondPayslip(c, employeeID)
}

func (h *Handler) DownloadMyPayslip(c *gin.Context) {
	employeeID, ok := h.selfEmployeeID(c)
	if !ok {
		return
	}
	h.respondPayslip(c, employeeID)
}

func (h *Handler) respondPayslip(c *gin.Context, employeeID string) {
	month, year, err := parsePeriodParams(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	payslip, err := h.payslips.Generate(c.Request.Context(), employeeID, month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Attachment(c, payslip.Filename, payslip.ContentType, payslip.Content)
}

func (h *Handler) DownloadPayslipByID(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	record, err := h.service.GetByID(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if !h.authorizeEmployee(c, record.EmployeeID) {
		return
	}

	payslip, err := h.payslips.GenerateByID(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Attachment(c, payslip.Filename, payslip.ContentType, payslip.Content)
}
