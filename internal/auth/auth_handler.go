package auth

import (
	"net/http"
	"strings"
	"time"

	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const clientTypeHeader = "X-Client-Type"

type Handler struct {
	service   Service
	secure    bool
	accessTTL time.Duration
}

// NewHandler takes secure=true in production so auth cookies are HTTPS only.
func NewHandler(s Service, secure bool, accessTTL time.Duration) *Handler {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	return &Handler{service: s, secure: secure, accessTTL: accessTTL}
}

func (ctrl *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// isWebClient: browser client menyimpan token di cookie HttpOnly.
func isWebClient(c *gin.Context) bool {
	return strings.EqualFold(c.GetHeader(clientTypeHeader), "web")
}

func (ctrl *Handler) setAuthCookies(c *gin.Context, access, refresh string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("access_token", access, int(ctrl.accessTTL.Seconds()), "/", "", ctrl.secure, true)
	c.SetCookie("refresh_token", refresh, int(refreshTTL.Seconds()), "/", "", ctrl.secure, true)
}

func (ctrl *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	token, refreshToken, userResp, err := ctrl.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ctrl.writeServiceError(c, err)
		return
	}

	if isWebClient(c) {
		ctrl.setAuthCookies(c, token, refreshToken)
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":          userResp,
		"access_token":  token,
		"refresh_token": refreshToken,
	}, nil)
}

func (ctrl *Handler) Me(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		ctrl.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	userResp, err := ctrl.service.GetMe(c.Request.Context(), userID)
	if err != nil {
		ctrl.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, userResp, nil)
}

func (ctrl *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("access_token", "", -1, "/", "", ctrl.secure, true)
	c.SetCookie("refresh_token", "", -1, "/", "", ctrl.secure, true)

	response.Success(c, http.StatusOK, "Logout success.", nil)
}

func (ctrl *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := ctrl.service.Register(c.Request.Context(), req)
	if err != nil {
		ctrl.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (ctrl *Handler) RefreshToken(c *gin.Context) {
	var refreshToken string
	isWeb := isWebClient(c)

	// Web pakai cookie, mobile/CLI kirim di body
	if isWeb {
		var err error
		refreshToken, err = c.Cookie("refresh_token")
		if err != nil {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Missing refresh token", nil)
			return
		}
	} else {
		var req struct {
			RefreshToken string `json:"refresh_token" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			ctrl.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
		refreshToken = req.RefreshToken
	}

	newAccess, newRefresh, userResp, err := ctrl.service.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		ctrl.writeServiceError(c, err)
		return
	}

	if isWeb {
		ctrl.setAuthCookies(c, newAccess, newRefresh)
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":          userResp,
		"access_token":  newAccess,
		"refresh_token": newRefresh,
	}, nil)
}
