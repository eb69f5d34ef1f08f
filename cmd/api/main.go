package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"skill-tracking-assistant/config"
	_ "skill-tracking-assistant/docs" // Swagger docs
	restDelivery "skill-tracking-assistant/internal/assistant/delivery/http"
	tgDelivery "skill-tracking-assistant/internal/assistant/delivery/telegram"
	"skill-tracking-assistant/internal/confirm"
	"skill-tracking-assistant/internal/dispatch"
	"skill-tracking-assistant/internal/extract"
	"skill-tracking-assistant/internal/httpserver"
	"skill-tracking-assistant/internal/intent"
	"skill-tracking-assistant/internal/match"
	"skill-tracking-assistant/internal/middleware"
	"skill-tracking-assistant/internal/reminder"
	researchUsecase "skill-tracking-assistant/internal/research/usecase"
	"skill-tracking-assistant/internal/resolve"
	skillRepo "skill-tracking-assistant/internal/skill/repository/jsonfile"
	skillUsecase "skill-tracking-assistant/internal/skill/usecase"
	"skill-tracking-assistant/pkg/datemath"
	"skill-tracking-assistant/pkg/gcalendar"
	"skill-tracking-assistant/pkg/llmprovider"
	"skill-tracking-assistant/pkg/log"
	"skill-tracking-assistant/pkg/tavily"
	"skill-tracking-assistant/pkg/telegram"
)

// @title       Skill Tracking Assistant API
// @description Personal tracking assistant that routes chat messages to skill logging, skill creation, web research, and conversation.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Skill Tracking Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
	maxTotalTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotalTimeout,
	}, logger)

	// 4. Routing tables
	extractor := extract.NewDefault()
	if len(cfg.Router.ExtractionRules) > 0 {
		extractor, err = extract.New(cfg.Router.ExtractionRules)
		if err != nil {
			logger.Error(ctx, "Invalid extraction rules: ", err)
			return
		}
	}
	matcher := match.NewDefault()
	if len(cfg.Router.CategoryRules) > 0 || len(cfg.Router.KeywordSets) > 0 {
		matcher = match.New(cfg.Router.CategoryRules, cfg.Router.KeywordSets)
	}
	classifier := intent.New()

	// 5. DateMath parser
	dateMathParser, dtErr := datemath.NewParser(cfg.Router.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Router.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 6. Storage
	repo := skillRepo.New(filepath.Join(cfg.Storage.DataDir, "skills.json"))
	skillUC := skillUsecase.New(logger, repo, dateMathParser)
	pending := confirm.NewFileStore(filepath.Join(cfg.Storage.DataDir, "confirmations.json"))

	// 7. Web research (optional)
	var searchClient tavily.ISearch
	if cfg.Tavily.APIKey != "" {
		searchClient, err = tavily.New(logger, tavily.Config{APIKey: cfg.Tavily.APIKey})
		if err != nil {
			logger.Warnf(ctx, "Tavily not available (optional): %v", err)
		}
	} else {
		logger.Warn(ctx, "TAVILY_API_KEY not set, web search disabled")
	}
	researchUC := researchUsecase.New(logger, searchClient)

	// 8. Google Calendar reminders (optional)
	var reminders dispatch.ReminderScheduler
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, cErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if cErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", cErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			reminders = reminder.New(logger, calendarClient, reminder.Config{
				CalendarID: cfg.GoogleCalendar.CalendarID,
				Timezone:   cfg.Router.Timezone,
				Hour:       cfg.GoogleCalendar.ReminderHour,
			})
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 9. Action router
	resolver := resolve.New(llmManager, logger)
	dispatcher := dispatch.New(logger, classifier, matcher, extractor, resolver,
		skillUC, researchUC, pending, reminders,
		dispatch.Config{CreateThreshold: cfg.Router.CreateThreshold})

	// 10. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, dispatcher, telegramBot)

		// Register webhook: auto-detect ngrok or fallback to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN not set, Telegram delivery disabled")
	}

	// 11. REST delivery
	restHandler := restDelivery.New(logger, dispatcher, skillUC)

	// 12. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, cfg.HTTPServer.RateLimitPerMin),
		TelegramHandler: telegramHandler,
		RESTHandler:     restHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 13. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
