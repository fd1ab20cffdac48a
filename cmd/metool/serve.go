package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/me-tool/internal/api/http"
	"github.com/spec-kit/me-tool/internal/api/http/handlers"
	"github.com/spec-kit/me-tool/internal/auth"
	"github.com/spec-kit/me-tool/internal/persistence"
	"github.com/spec-kit/me-tool/internal/repository"
	"github.com/spec-kit/me-tool/internal/service"
	"github.com/spec-kit/me-tool/internal/validation"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	deps, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer deps.Close()
	cfg, logger := deps.cfg, deps.logger

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, deps.pg.PoolHandle(), logger); err != nil {
			return err
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	pool := deps.pg.PoolHandle()
	staffRepo := repository.NewStaffRepository(pool)
	decoder := validation.NewDecoder(time.Now)

	limiter := auth.NewLoginLimiter(redis.Client, cfg.Auth.LoginMaxAttempts, cfg.Auth.LockoutWindow(), logger)
	authService := service.NewAuthService(staffRepo, limiter, logger)
	orgService := service.NewStaffService(service.OrgDependencies{
		StaffRepo: staffRepo,
		TeamRepo:  repository.NewTeamRepository(pool),
	}, decoder, cfg.Auth.BcryptCost)
	strategyService := service.NewStrategyService(service.StrategyDependencies{
		ObjectiveRepo: repository.NewStrategicObjectiveRepository(pool),
		ProjectRepo:   repository.NewProjectRepository(pool),
	}, decoder)
	activityService := service.NewActivityService(service.ActivityDependencies{
		WorkshopRepo:   repository.NewWorkshopRepository(pool),
		LivelihoodRepo: repository.NewLivelihoodRepository(pool),
	}, decoder)

	guard := auth.NewGuard(auth.NewSessionCodec(cfg.Session, cfg.App.IsProduction()), staffRepo, logger)

	var redisCheck handlers.Pinger
	if redis.Configured() {
		redisCheck = redis
	}

	app := httptransport.NewServer(httptransport.ServerConfig{
		AppName:        cfg.App.Name,
		RequestTimeout: cfg.App.RequestTimeout(),
	}, logger, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, deps.pg, redisCheck),
		Session:  handlers.NewSessionHandler(authService, guard),
		Strategy: handlers.NewStrategyHandler(strategyService, orgService),
		Activity: handlers.NewActivityHandler(activityService, strategyService),
		Staff:    handlers.NewStaffHandler(orgService),
		Guard:    guard,
	})

	go func() {
		logger.Info("server starting", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Error("fiber listen", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	return nil
}
