package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/hamyar-edu/advising_bot/internal/app"
	"github.com/hamyar-edu/advising_bot/internal/catalog"
	"github.com/hamyar-edu/advising_bot/internal/clock"
	"github.com/hamyar-edu/advising_bot/internal/config"
	"github.com/hamyar-edu/advising_bot/internal/notify"
	"github.com/hamyar-edu/advising_bot/internal/repository"
	"github.com/hamyar-edu/advising_bot/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalogs := catalog.Default()
	if cfg.CatalogPath != "" {
		catalogs, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			logger.Fatal("Failed to load catalogs", zap.Error(err))
		}
	}

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	advisorRepo := repository.NewAdvisorRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)
	chatRepo := repository.NewChatRepository(pool)

	var sender notify.Sender = notify.NopSender{}
	if cfg.BaleToken != "" {
		sender, err = notify.NewBaleSender(cfg.BaleToken, func(role notify.Role, recipientID string) (int64, bool) {
			chatID, err := chatRepo.Lookup(ctx, string(role), recipientID)
			if err != nil {
				return 0, false
			}
			return chatID, true
		})
		if err != nil {
			logger.Fatal("Failed to create Bale sender", zap.Error(err))
		}
	} else {
		logger.Warn("BALE_TOKEN not set, notifications will be dropped")
	}

	clk := clock.System{}
	appointmentService := service.NewAppointmentService(advisorRepo, studentRepo, appointmentRepo, catalogs, clk, logger)

	escalation := app.NewEscalationTask(appointmentService, sender, logger, cfg.EscalationInterval, cfg.StaleThreshold)
	escalation.Start(ctx)
	defer escalation.Stop()

	logger.Sugar().Infow("Starting advising bot",
		"environment", cfg.Environment,
		"token_length", len(cfg.BaleToken))

	<-ctx.Done()
	logger.Info("Shutting down")
}
