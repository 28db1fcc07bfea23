package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/grocery-order-bot/config"
	"github.com/yourusername/grocery-order-bot/internal/delivery/telegram"
	"github.com/yourusername/grocery-order-bot/internal/infrastructure/rest"
	"github.com/yourusername/grocery-order-bot/internal/infrastructure/storage"
	"github.com/yourusername/grocery-order-bot/internal/usecase"
	"github.com/yourusername/grocery-order-bot/pkg/logger"
)

func main() {
	logger.Init()
	logger.InfoLogger.Println("starting grocery bot...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}
	if err := cfg.ValidateBot(); err != nil {
		log.Fatalf("configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// data service client
	restClient := rest.NewClient(cfg.SupabaseURL, cfg.SupabaseAPIKey, cfg.HTTPTimeout)

	// stores
	cartRepo, startCarts := storage.NewCartRepository(cfg)
	startCarts(ctx)
	snapshotCache := storage.NewSnapshotCache(cfg.SnapshotTTL)

	// use cases
	catalogUseCase := usecase.NewCatalogUsecase(restClient, snapshotCache)
	cartUseCase := usecase.NewCartUsecase(cartRepo, catalogUseCase)
	orderUseCase := usecase.NewOrderUsecase(cartRepo, restClient)

	// telegram handler
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("create telegram bot: %v", err)
	}
	logger.InfoLogger.Printf("authorized as @%s", bot.Self.UserName)

	handler := telegram.NewBotHandler(bot, catalogUseCase, cartUseCase, orderUseCase)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		sig := <-sigChan
		logger.InfoLogger.Printf("received %v, shutting down", sig)
		cancel()
	}()

	if err := handler.Start(ctx); err != nil && err != context.Canceled {
		log.Fatalf("bot stopped: %v", err)
	}
	logger.InfoLogger.Println("bot stopped")
}
