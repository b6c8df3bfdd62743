package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"storefront/internal/client"
	"storefront/internal/config"
	"storefront/internal/events"
	"storefront/internal/logging"
	"storefront/internal/notify"
	"storefront/internal/repository"
	"storefront/internal/server"
	"storefront/internal/service"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Printf("Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db := client.InitDBClient(cfg.DatabaseURL)

	bus := events.NewBus(log)
	notifier := notify.New(log, cfg.NotifyDelay)
	if err := notifier.Register(bus); err != nil {
		log.Fatal("failed to register notifier", zap.Error(err))
	}

	productRepo := repository.NewProductRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	tagRepo := repository.NewTagRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	if cfg.SeedDemoData {
		if err := productRepo.Seed(context.Background()); err != nil {
			log.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	catalogService := service.NewCatalogService(db, productRepo, collectionRepo, promotionRepo, reviewRepo, orderRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	orderService := service.NewOrderService(db, cartRepo, orderRepo, customerRepo, bus)
	customerService := service.NewCustomerService(customerRepo)
	tagService := service.NewTagService(tagRepo)
	likeService := service.NewLikeService(likeRepo)

	srv := server.NewServer(log, catalogService, cartService, orderService, customerService, tagService, likeService)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Info("starting HTTP server", zap.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error", zap.Error(err))
	}

	// drain in-flight notifications before exit
	bus.Wait()
}
