package app

import (
	"context"
	"database/sql"

	"go-payroll/internal/auth"
	"go-payroll/internal/department"
	"go-payroll/internal/employee"
	"go-payroll/internal/insight"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"
	"go-payroll/internal/rbac"
	"go-payroll/internal/rbac/infra"
	"go-payroll/internal/shared/config"
	"go-payroll/internal/shared/counter"
	"go-payroll/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	generator insight.Generator,
) error {
	logger := zap.L()

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// Events are only written when a broker exists to relay them.
	var outboxRepo kafka.OutboxRepository
	if cfg.KafkaBroker != "" {
		outboxRepo = kafka.NewOutboxRepository(db)
	}

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	if err := rbacService.LoadPolicy(context.Background()); err != nil {
		// Enforce retries the load on first use.
		logger.Warn("initial rbac policy load failed", zap.Error(err))
	}

	// --- Services ---
	employeeResolver := employee.NewPayrollResolver(employeeRepo)

	authService := auth.NewService(authRepo, employeeRepo, cfg.JWTSecret, cfg.AccessTokenTTL, logger)
	departmentService := department.NewService(db, departmentRepo, rdb, logger)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb, logger)
	payrollService := payroll.NewServiceWithOutbox(db, payrollRepo, employeeResolver, outboxRepo, logger)
	payslipService := payroll.NewPayslipService(payrollRepo, employeeResolver, payroll.NewPDFRenderer(), logger)
	insightService := insight.NewService(payrollService, generator, logger)
	userService := user.NewService(userRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), cfg.AccessTokenTTL)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService, logger)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, payslipService, rdb)
	insightHandler := insight.NewHandler(insightService)
	rbacHandler := rbac.NewHandler(rbacService)
	userHandler := user.NewHandler(userService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, cfg.JWTSecret)
		department.RegisterRoutes(api, departmentHandler, rbacService, cfg.JWTSecret)
		employee.RegisterRoutes(api, employeeHandler, rbacService, cfg.JWTSecret, logger)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, cfg.JWTSecret, rdb)
		insight.RegisterRoutes(api, insightHandler, rbacService, cfg.JWTSecret)
		rbac.RegisterRoutes(api, rbacHandler, cfg.JWTSecret)
		user.RegisterRoutes(api, userHandler, rbacService, cfg.JWTSecret, logger)
	}

	return nil
}
