package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/ticket-bot/internal/api/http"
	"github.com/spec-kit/ticket-bot/internal/api/http/handlers"
	"github.com/spec-kit/ticket-bot/internal/bot"
	"github.com/spec-kit/ticket-bot/internal/config"
	"github.com/spec-kit/ticket-bot/internal/events"
	"github.com/spec-kit/ticket-bot/internal/gateway"
	"github.com/spec-kit/ticket-bot/internal/observability"
	"github.com/spec-kit/ticket-bot/internal/service"
	"github.com/spec-kit/ticket-bot/internal/store"
	"github.com/spec-kit/ticket-bot/internal/transcript"
	"github.com/spec-kit/ticket-bot/internal/worker"
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

	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		logger.Fatal("failed to create discord session", zap.Error(err))
	}

	gw := gateway.NewDiscord(session)
	configStore := store.NewFileStore(cfg.Storage.GuildConfigPath(), logger)
	recorder := transcript.NewRecorder(cfg.Storage.RawLogDir())
	archiver := transcript.NewArchiver(cfg.Storage.TranscriptDir)
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	notificationService.RegisterHandlers()

	deletionWorker := worker.NewDeletionWorker(gw, logger)

	lifecycleService := service.NewLifecycleService(service.LifecycleDependencies{
		Gateway:    gw,
		Store:      configStore,
		Recorder:   recorder,
		Archiver:   archiver,
		Scheduler:  deletionWorker,
		Dispatcher: dispatcher,
		Logger:     logger,
		Ticket:     cfg.Ticket,
	})
	panelService := service.NewPanelService(service.PanelDependencies{
		Gateway:    gw,
		Store:      configStore,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	ticketBot := bot.New(session, cfg.Discord, bot.Dependencies{
		Lifecycle: lifecycleService,
		Panel:     panelService,
		Recorder:  recorder,
		Metrics:   metrics,
		Logger:    logger,
	})
	if err := ticketBot.Start(); err != nil {
		logger.Fatal("failed to start bot", zap.Error(err))
	}
	defer ticketBot.Stop() //nolint:errcheck

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
