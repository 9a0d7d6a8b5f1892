package payroll

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	resourceSalary = "salary"
	actionRead     = "read"
	actionManage   = "manage"
)

// RegisterRoutes mounts the salary API. salary:read lets the handler apply
// CanView; salary:manage is admin only.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	jwtSecret string,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	read := middleware.RBACAuthorize(rbacService, resourceSalary, actionRead)
	manage := middleware.RBACAuthorize(rbacService, resourceSalary, actionManage)

	salaries := r.Group("/salaries")
	salaries.Use(middleware.AuthMiddleware(jwtSecret), middleware.ContextLogger(zap.L()))
	{
		salaries.GET("/me", read, handler.GetMyHistory)
		salaries.GET("/me/periods/:month/:year", read, handler.GetMyPeriod)
		salaries.GET("/me/payslip/:month/:year", read, handler.DownloadMyPayslip)

		if redisClient != nil {
			salaries.POST("/employees/:employeeId", middleware.Idempotency(redisClient), manage, handler.CreateOrUpdate)
		} else {
			salaries.POST("/employees/:employeeId", manage, handler.CreateOrUpdate)
		}
		salaries.GET("/employees/:employeeId", read, handler.GetHistory)
		salaries.GET("/employees/:employeeId/paged", read, handler.GetHistoryPaged)
		salaries.GET("/employees/:employeeId/periods/:month/:year", read, handler.GetByPeriod)
		salaries.GET("/employees/:employeeId/payslip/:month/:year", read, handler.DownloadPayslip)

		salaries.GET("/periods/:month/:year", manage, handler.GetAllByPeriod)
		salaries.GET("/periods/:month/:year/summary", manage, handler.GetPeriodSummary)
		salaries.POST("/periods/:month/:year/process", manage, handler.ProcessPeriod)
		salaries.GET("/years/:year", manage, handler.GetAllByYear)
		salaries.GET("/unprocessed", manage, handler.GetUnprocessed)

		salaries.GET("/:id", read, handler.GetByID)
		salaries.GET("/:id/payslip", read, handler.DownloadPayslipByID)
		salaries.PUT("/:id/process", manage, handler.MarkProcessed)
		salaries.DELETE("/:id", manage, handler.Delete)
	}
}
