package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"jobboard/internal/config"
	apphttp "jobboard/internal/http"
	"jobboard/internal/repository/sqldb"
	"jobboard/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(cfg)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := sqldb.NewUserRepository(db)
	jobRepo := sqldb.NewJobRepository(db)
	appRepo := sqldb.NewApplicationRepository(db)

	// init order follows the foreign keys: users, then jobs, then applications
	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	if err := jobRepo.Init(ctx); err != nil {
		logger.Fatalf("init job repository: %v", err)
	}
	if err := appRepo.Init(ctx); err != nil {
		logger.Fatalf("init application repository: %v", err)
	}

	accountService := service.NewAccountService(userRepo, logger)
	jobService := service.NewJobService(jobRepo, logger)
	applicationService := service.NewApplicationService(appRepo, jobRepo, logger)

	if cfg.Admin.Email != "" {
		admin, err := accountService.CreateAdminIfNotExists(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			logger.Fatalf("seed admin account: %v", err)
		}
		logger.Infof("admin account ready (id %d)", admin.ID)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(
		accountService,
		jobService,
		applicationService,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		logger,
	)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

func openDatabase(cfg config.Config) (*sqldb.DB, error) {
	switch cfg.Database.Driver {
	case "sqlite":
		return sqldb.OpenSQLite(cfg.Database.Path)
	case "mysql":
		return sqldb.OpenMySQL(
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
		)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}
