package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/ops-portal/internal/api/http"
	"github.com/spec-kit/ops-portal/internal/api/http/handlers"
	"github.com/spec-kit/ops-portal/internal/auth"
	"github.com/spec-kit/ops-portal/internal/config"
	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/events"
	"github.com/spec-kit/ops-portal/internal/observability"
	"github.com/spec-kit/ops-portal/internal/persistence"
	"github.com/spec-kit/ops-portal/internal/repository"
	"github.com/spec-kit/ops-portal/internal/service"
	"github.com/spec-kit/ops-portal/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	employeeRepo := repository.NewEmployeeRepository(pool)
	leaveRepo := repository.NewLeaveRepository(pool)
	enquiryRepo := repository.NewEnquiryRepository(pool)
	quotationRepo := repository.NewQuotationRepository(pool)
	applicationRepo := repository.NewApplicationRepository(pool)
	slipRepo := repository.NewSalarySlipRepository(pool)
	activityRepo := repository.NewLoginActivityRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	throttle := auth.NewLoginThrottle(
		auth.NewRedisAttemptStore(redis.Client),
		cfg.Auth.ThrottleMaxFailures,
		cfg.Auth.ThrottleWindow(),
	)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		EmployeeRepo:      employeeRepo,
		LoginActivityRepo: activityRepo,
		Throttle:          throttle,
		Dispatcher:        dispatcher,
		Logger:            logger,
	})
	employeeService := service.NewEmployeeService(employeeRepo, dispatcher, logger, cfg.Auth.BcryptCost)
	leaveService := service.NewLeaveService(leaveRepo, dispatcher, logger)
	enquiryService := service.NewEnquiryService(enquiryRepo, dispatcher, logger)
	intakeService := service.NewIntakeService(quotationRepo, applicationRepo)
	slipService := service.NewSalarySlipService(slipRepo, employeeRepo, logger)

	worker.StartActivityFeed(service.NewActivityFeed(dispatcher, logger))

	if err := seedOperator(ctx, cfg, employeeService, employeeRepo); err != nil {
		logger.Fatal("failed to seed operator account", zap.Error(err))
	}

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), employeeRepo)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Employees:      handlers.NewEmployeesHandler(employeeService),
		Leaves:         handlers.NewLeavesHandler(leaveService),
		Enquiries:      handlers.NewEnquiriesHandler(enquiryService),
		Intake:         handlers.NewIntakeHandler(intakeService),
		SalarySlips:    handlers.NewSalarySlipsHandler(slipService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// seedOperator guarantees the fixed operator identity used by the assistant
// exists with the admin role.
func seedOperator(ctx context.Context, cfg *config.Config, employees *service.EmployeeService, repo repository.EmployeeRepository) error {
	if _, err := repo.GetByEmail(ctx, cfg.Assistant.OperatorEmail); err == nil {
		return nil
	} else if err != pgx.ErrNoRows {
		return err
	}

	_, err := employees.Create(ctx, service.CreateEmployeeInput{
		Name:        "Portal Admin",
		Email:       cfg.Assistant.OperatorEmail,
		Password:    cfg.Assistant.OperatorPassword,
		Designation: "Administrator",
		Status:      domain.EmployeeStatusActive,
		Role:        domain.RoleAdmin,
	})
	return err
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
