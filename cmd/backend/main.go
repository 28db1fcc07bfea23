package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/grocery-order-bot/config"
	"github.com/yourusername/grocery-order-bot/internal/backend"
	"github.com/yourusername/grocery-order-bot/internal/infrastructure/parser"
	"github.com/yourusername/grocery-order-bot/pkg/logger"
)

const dbConnectAttempts = 30

func main() {
	seedFile := flag.String("seed", "", "xlsx catalog file to load into the products table on startup")
	flag.Parse()

	logger.Init()
	logger.InfoLogger.Println("starting grocery data service...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}
	if err := cfg.ValidateBackend(); err != nil {
		log.Fatalf("configuration: %v", err)
	}

	db, err := backend.OpenDB(cfg.DatabaseURL, dbConnectAttempts)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer db.Close()

	if err := backend.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	store := backend.NewStore(db)

	if *seedFile != "" {
		products, err := parser.ParseCatalogXLSX(*seedFile)
		if err != nil && len(products) == 0 {
			log.Fatalf("seed catalog: %v", err)
		}
		if err != nil {
			logger.ErrorLogger.Printf("seed catalog: %v", err)
		}
		n, err := store.InsertProducts(context.Background(), products)
		if err != nil {
			log.Fatalf("seed catalog: %v", err)
		}
		logger.InfoLogger.Printf("seeded %d products from %s", n, *seedFile)
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "apikey", "Prefer"},
		MaxAge:       12 * time.Hour,
	}))

	backend.NewHandler(store, cfg.APIKey).Register(router)

	srv := &http.Server{
		Addr:    cfg.BackendAddr,
		Handler: router,
	}

	go func() {
		logger.InfoLogger.Printf("listening on %s", cfg.BackendAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	logger.InfoLogger.Printf("received %v, shutting down", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorLogger.Printf("shutdown: %v", err)
	}
	logger.InfoLogger.Println("data service stopped")
}
