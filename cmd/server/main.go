package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"date-topics/internal/config"
	"date-topics/internal/llm"
	"date-topics/internal/notify"
	"date-topics/internal/scheduler"
	"date-topics/internal/storage"
	"date-topics/internal/timeslot"
	"date-topics/internal/topics"
	"date-topics/internal/web"
)

// Generation parameters are fixed; they are part of the pipeline contract,
// not configuration.
const (
	genTemperature = 0.7
	genMaxTokens   = 300
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	clock, err := timeslot.NewClock(cfg.Timezone)
	if err != nil {
		log.Fatalf("failed to init clock: %v", err)
	}

	store, err := storage.Open(cfg.SQLiteDir)
	if err != nil {
		log.Fatalf("failed to open topic store: %v", err)
	}
	defer store.Close()

	factory := &llm.Factory{
		OpenaiAPIKey:     cfg.OpenAIAPIKey,
		OpenaiBaseURL:    cfg.OpenAIBaseURL,
		OpenaiModel:      cfg.OpenAIModel,
		Temperature:      genTemperature,
		MaxTokens:        genMaxTokens,
		YandexOAuthToken: cfg.YandexOAuthToken,
		YandexFolderID:   cfg.YandexFolderID,
	}
	llmClient, err := factory.CreateClient(cfg.LLMProvider)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	orch := topics.NewOrchestrator(topics.NewGenerator(llmClient), store, clock)

	var side []notify.Dispatcher
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("failed to init telegram dispatcher: %v", err)
		}
		side = append(side, tg)
	}
	notifier := notify.NewNotifier(
		storage.CurrentReader{Repo: store, Clock: clock},
		notify.NewWebhook(cfg.WebhookURL),
		side...,
	)

	sched := scheduler.New(clock.Location())
	sched.SetGenerateFunction(orch.GenerateAll)
	sched.SetNotifyFunction(notifier.Notify)
	if err := sched.Start(cfg.GenerationHour, cfg.NotifyHours); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: web.New(orch, notifier, store, clock).Routes(),
	}

	go func() {
		log.Printf("🚀 Serving on %s (timezone %s)", cfg.ListenAddr, cfg.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
}
