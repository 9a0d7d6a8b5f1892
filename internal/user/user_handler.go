package user

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{svc: service, logger: l}
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	h.logger.Debug("http get all users", zap.String("request_id", contextutil.GetRequestID(ctx)))

	resp, err := h.svc.GetAll(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	q := strings.TrimSpace(strings.ToLower(c.Query("q")))
	if q != "" {
		filtered := make([]UserResponse, 0, len(resp))
		for _, u := range resp {
			if strings.Contains(strings.ToLower(u.Email), q) ||
				strings.Contains(strings.ToLower(u.Name), q) ||
				strings.Contains(strings.ToLower(u.FullName), q) ||
				strings.Contains(strings.ToLower(u.EmployeeCode), q) {
				filtered = append(filtered, u)
			}
		}
		resp = filtered
	}

	if role := strings.ToUpper(strings.TrimSpace(c.Query("role"))); role != "" {
		filtered := make([]UserResponse, 0, len(resp))
		for _, u := range resp {
			if u.Role == role {
				filtered = append(filtered, u)
			}
		}
		resp = filtered
	}

	sortBy := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_by", "email")))
	sortDir := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_dir", "asc")))
	if sortDir != "desc" {
		sortDir = "asc"
	}

	sort.SliceStable(resp, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "name":
			less = strings.ToLower(resp[i].Name) < strings.ToLower(resp[j].Name)
		case "created_at":
			less = resp[i].CreatedAt < resp[j].CreatedAt
		default:
			less = strings.ToLower(resp[i].Email) < strings.ToLower(resp[j].Email)
		}
		if sortDir == "desc" {
			return !less
		}
		return less
	})

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	res, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ToggleStatus(c *gin.Context) {
	var body UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	actorID := c.GetString(middleware.ContextUserID)
	if err := h.svc.ToggleStatus(c.Request.Context(), actorID, c.Param("id"), *body.IsActive); err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"is_active": *body.IsActive}, nil)
}

// ChangePassword acts on the caller's own account.
func (h *Handler) ChangePassword(c *gin.Context) {
	var body ChangePasswordRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		writeError(c, apperror.ErrUnauthorized)
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), userID, body.CurrentPassword, body.NewPassword); err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Password changed.", nil)
}

func (h *Handler) ForceResetPassword(c *gin.Context) {
	var body ForceResetPasswordRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.svc.ForceResetPassword(c.Request.Context(), c.Param("id"), body.NewPassword); err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Password reset.", nil)
}
