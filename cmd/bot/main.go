package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/notification"
	"homework_status_bot/internal/infra/config"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/cockroachdb/errors"
	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissingCredentials) {
			// Nothing to retry without credentials: stop before the first cycle.
			logger.Critical(logger.Component("main"), fmt.Sprintf("Missing required environment variables, bot stopped: %v", err))
			os.Exit(0)
		}
		logger.Log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	mainLogger := logger.Component("main")
	mainLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Schedule: %s", cfg.LogLevel, cfg.Environment, cfg.PollSchedule)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}

	// Initialize the notification journal (optional)
	var journal notification.Journal = notification.NopJournal{}
	if cfg.DatabaseURL != "" {
		db, err := idb.NewPostgresConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			mainLogger.Fatalf("FATAL: Could not connect to database: %v", err)
		}
		defer db.Close()

		journalRepo := idb.NewPostgresJournalRepository(db)
		if err := journalRepo.EnsureSchema(ctx); err != nil {
			mainLogger.Fatalf("FATAL: Could not prepare notification journal: %v", err)
		}
		journal = journalRepo
		mainLogger.Info("Notification journal enabled.")
	} else {
		mainLogger.Info("DATABASE_URL is not set, notification journal disabled.")
	}

	// Initialize Telegram Bot
	pref := telebot.Settings{
		Token:   cfg.TelegramToken,
		Client:  httpClient,
		Offline: !cfg.BotCommands, // no getMe call and no updates when commands are off
		Poller:  &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) { // Global error handler
			entry := logger.Component("telebot").WithError(err)
			if c != nil && c.Chat() != nil {
				entry = entry.WithField("chat_id", c.Chat().ID)
			}
			entry.Error("Telegram bot error")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}
	if cfg.BotCommands {
		telegram.RegisterBotCommands(bot, cfg.TelegramChatID, logger.Component("bot_commands"))
		go bot.Start()
		defer bot.Stop()
		mainLogger.Info("Bot command handlers registered.")
	}

	practicumClient := practicum.NewClient(cfg.PracticumEndpoint, cfg.PracticumToken, httpClient, logger.Component("practicum"))
	poller := app.NewPoller(
		practicumClient,
		telegram.NewTelebotAdapter(bot),
		journal,
		cfg.TelegramChatID,
		logger.Component("poller"),
	)

	pollScheduler, err := scheduler.NewCycleScheduler(cfg.PollSchedule, logger.Component("scheduler"))
	if err != nil {
		mainLogger.Fatalf("FATAL: %v", err)
	}

	mainLogger.Info("Application setup complete. Polling is starting...")
	pollScheduler.Run(ctx, poller.Cycle) // blocks until SIGINT/SIGTERM

	mainLogger.Info("Application shut down gracefully.")
}
