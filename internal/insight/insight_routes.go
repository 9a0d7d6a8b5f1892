package insight

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	jwtSecret string,
) {
	read := middleware.RBACAuthorize(rbacService, "insight", "read")
	manage := middleware.RBACAuthorize(rbacService, "insight", "manage")

	insights := r.Group("/insights")
	// one model call per 2s per user, burst 5
	insights.Use(middleware.AuthMiddleware(jwtSecret), middleware.RateLimitByUser(rate.Limit(0.5), 5))
	{
		insights.GET("/me/salary", read, h.GetMySalaryInsights)
		insights.GET("/me/tax-advice", read, h.GetMyTaxAdvice)
		insights.GET("/employees/:employeeId/salary", read, h.GetSalaryInsights)
		insights.GET("/employees/:employeeId/tax-advice", read, h.GetTaxAdvice)
		insights.POST("/ask", read, h.Ask)

		insights.GET("/payroll-report/:month/:year", manage, h.GetPayrollReport)
	}
}
