package rbac

import (
	"go-payroll/internal/auth"
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware(jwtSecret), middleware.RoleMiddleware(auth.RoleAdmin))
	{
		group.POST("/enforce", handler.Enforce)

		group.GET("/permissions", handler.ListPermissions)
		group.POST("/permissions", handler.Grant)
		group.DELETE("/permissions", handler.Revoke)
	}
}
