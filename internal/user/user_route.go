package user

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	jwtSecret string,
	logger *zap.Logger,
) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(jwtSecret))
	users.Use(middleware.ContextLogger(logger))
	{
		// Any authenticated account may rotate its own password.
		users.PUT("/me/password",
			middleware.RateLimitByUser(0.5, 2),
			handler.ChangePassword,
		)

		users.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "user", "read"),
			handler.GetAll,
		)

		users.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "user", "read"),
			handler.GetByID,
		)

		users.PATCH("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "user", "manage"),
			handler.ToggleStatus,
		)

		users.POST("/:id/force-reset-password",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "user", "manage"),
			handler.ForceResetPassword,
		)
	}
}
