package department

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	jwtSecret string,
) {
	departments := r.Group("/departments")

	departments.Use(middleware.AuthMiddleware(jwtSecret))

	{
		departments.GET("", middleware.RBACAuthorize(rbacService, "department", "read"), h.GetAll)
		departments.POST("", middleware.RBACAuthorize(rbacService, "department", "manage"), h.Create)
		departments.GET("/:id", middleware.RBACAuthorize(rbacService, "department", "read"), h.GetByID)
		departments.PUT("/:id", middleware.RBACAuthorize(rbacService, "department", "manage"), h.Update)
		departments.DELETE("/:id", middleware.RBACAuthorize(rbacService, "department", "manage"), h.Delete)
	}
}
