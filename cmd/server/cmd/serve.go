package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"hackhub/config"
	"hackhub/internal/adapters/auth"
	"hackhub/internal/adapters/email"
	httpdelivery "hackhub/internal/delivery/http"
	"hackhub/internal/delivery/http/controllers"
	"hackhub/internal/delivery/http/middleware"
	"hackhub/internal/metrics"
	"hackhub/internal/repository/postgres"
	"hackhub/internal/services"
)

var (
	servePort      string
	serveMigrateUp bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HackHub HTTP server",
	Long: `Start the HTTP server and begin accepting API requests.

The server will:
- Load configuration from environment variables (and .env outside production)
- Optionally apply pending migrations (--migrate)
- Serve the JSON API, /healthz, /metrics and /swagger/
- Shut down gracefully on SIGINT/SIGTERM

Examples:
  hackhub serve
  hackhub serve --port 9090 --migrate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "server port (default: PORT or 8080)")
	serveCmd.Flags().BoolVar(&serveMigrateUp, "migrate", false, "apply pending migrations before serving")
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	logger := config.NewLogger(cfg.Environment)
	logger.Info("starting hackhub server", "port", cfg.Port)

	if serveMigrateUp {
		if err := postgres.MigrateUp(cfg.DBUrl); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := postgres.Open(ctx, cfg.DBUrl)
	cancel()
	if err != nil {
		return err
	}
	defer db.Close()

	metrics.Init()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
		ResendAPIKey: cfg.Email.ResendAPIKey,
	}, logger)
	if err != nil {
		return fmt.Errorf("init mailer: %w", err)
	}

	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}

	// Repositories
	eventRepo := postgres.NewEventRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	projectRepo := postgres.NewProjectRepository(db)

	// Services
	timeout := cfg.RequestTimeout
	emailService := services.NewEmailService(mailer, renderer, logger)
	eventService := services.NewEventService(eventRepo, logger, timeout)
	applicationService := services.NewApplicationService(applicationRepo, eventRepo, emailService, logger, timeout)
	teamService := services.NewTeamService(teamRepo, timeout)
	projectService := services.NewProjectService(projectRepo, teamRepo, logger, timeout)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{RPS: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst})
	defer rateLimiter.Stop()
	idempotency := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{TTL: cfg.IdempotencyTTL})
	defer idempotency.Stop()

	handler := httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Logger:                logger,
		Verifier:              auth.NewJWTVerifier(cfg.JWTSecret),
		Idempotency:           idempotency,
		RateLimiter:           rateLimiter,
		CORSAllowedOrigins:    cfg.CORSAllowedOrigins,
		EventController:       controllers.NewEventController(logger, eventService),
		ApplicationController: controllers.NewApplicationController(logger, applicationService),
		TeamController:        controllers.NewTeamController(logger, teamService),
		ProjectController:     controllers.NewProjectController(logger, projectService),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	return shutdown(server, errCh, logger)
}

func shutdown(server *http.Server, errCh <-chan error, logger *slog.Logger) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}
