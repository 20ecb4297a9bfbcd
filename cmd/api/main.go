package main

import (
	"context"
	"log"
	"time"

	"gift-lookup/internal/core/cache"
	"gift-lookup/internal/core/config"
	"gift-lookup/internal/core/logger"
	"gift-lookup/internal/core/server"
	giftadapter "gift-lookup/internal/features/gift/adapters"
	gifthandler "gift-lookup/internal/features/gift/handler"
	"gift-lookup/internal/features/gift/ports"
	giftservice "gift-lookup/internal/features/gift/service"

	"go.uber.org/zap"
)

// @title Gift Message Lookup API
// @version 1.0
// @description Looks up the gift message of a customer's most recent order by last name and postcode, for embedding in a storefront page.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize Shopify Adapter and run Health Check
	shopifyAdapter := giftadapter.NewShopifyAdapter(cfg.Shopify)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := shopifyAdapter.HealthCheck(ctx); err != nil {
		l.Fatal("Shopify Health Check Failed", zap.Error(err))
	}
	l.Info("Shopify connection verified", zap.String("store", cfg.Shopify.StoreDomain))

	// Optionally wrap the provider with the order-window cache
	var provider ports.OrderProvider = shopifyAdapter
	if cfg.Cache.RedisURL != "" && cfg.Cache.OrderTTLSeconds > 0 {
		redisCache, err := cache.NewRedisAdapter(cfg.Cache.RedisURL)
		if err != nil {
			l.Fatal("Failed to create Redis cache", zap.Error(err))
		}
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			l.Fatal("Redis unreachable", zap.Error(err))
		}

		ttl := time.Duration(cfg.Cache.OrderTTLSeconds) * time.Second
		provider = giftadapter.NewCachedOrderProvider(shopifyAdapter, redisCache, ttl)
		l.Info("Order window cache enabled", zap.Duration("ttl", ttl))
	}

	// Initialize Lookup Service & Handlers
	lookupService := giftservice.NewLookupService(provider, cfg.Lookup.OrderFetchLimit, cfg.Lookup.RecencyWindowDays)
	giftHandler := gifthandler.NewGiftHandler(lookupService)
	healthHandler := gifthandler.NewHealthHandler(shopifyAdapter)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/gift-lookup", giftHandler.Lookup)
	srv.App.Post("/gift-lookup", giftHandler.Lookup)
	srv.App.Get("/healthz", healthHandler.Check)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
