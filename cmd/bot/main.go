package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jfmartinez/expensebot/internal/bot"
	"github.com/jfmartinez/expensebot/internal/config"
	"github.com/jfmartinez/expensebot/internal/extractor"
	"github.com/jfmartinez/expensebot/internal/health"
	"github.com/jfmartinez/expensebot/internal/logger"
	"github.com/jfmartinez/expensebot/internal/notion"
	"github.com/jfmartinez/expensebot/internal/pipeline"
	"github.com/jfmartinez/expensebot/internal/record"
	"github.com/jfmartinez/expensebot/internal/sheets"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.EnsureCredentialsFile(); err != nil {
		log.Warn().Err(err).Msg("Could not materialize service-account file")
	}

	fields, ok := record.Variant(cfg.FieldSet)
	if !ok {
		log.Fatal().Str("field_set", cfg.FieldSet).Msg("Unknown field-set variant")
	}

	ctx := logger.WithContext(context.Background(), log)

	ext, err := extractor.NewGemini(ctx, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create extractor")
	}

	sheetClient, err := sheets.NewClient(ctx, cfg.CredentialsFile, cfg.SpreadsheetID, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create sheets client")
	}
	if err := sheetClient.EnsureHeader(ctx, fields); err != nil {
		log.Fatal().Err(err).Msg("Failed to reconcile sheet header")
	}

	notionClient := notion.NewClient(cfg.NotionToken)
	registry := notion.NewRegistry(notionClient, cfg.NotionFinancesDB)
	store := notion.NewStore(notionClient, registry, cfg.Location, log)

	proc := pipeline.NewProcessor(fields, cfg.Location)
	handler := bot.NewHandler(log, fields, ext, proc, sheetClient, store, store)

	// Keep-alive endpoint for the hosting platform.
	healthSrv := &http.Server{Addr: cfg.HealthAddr, Handler: health.New(log)}
	go func() {
		log.Info().Str("addr", cfg.HealthAddr).Msg("Starting health server")
		if err := healthSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Health server stopped")
		}
	}()

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to authorize Telegram bot")
	}
	log.Info().Str("username", api.Self.UserName).Msg("Bot authorized, starting polling")

	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 60
	updates := api.GetUpdatesChan(updateCfg)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Shutting down")
			api.StopReceivingUpdates()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := healthSrv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("Health server shutdown failed")
			}
			cancel()
			return
		case update := <-updates:
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			msg := update.Message

			var reply string
			if msg.IsCommand() {
				reply = handler.HandleCommand(ctx, msg.Command())
			} else {
				reply = handler.HandleText(ctx, strings.TrimSpace(msg.Text))
			}
			if reply == "" {
				continue
			}

			if _, err := api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
				log.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("Failed to send reply")
			}
		}
	}
}
