package main

import (
	"context"
	"log"

	"github.com/YonatanCohen1020/nightwing-site/internal/cart"
	"github.com/YonatanCohen1020/nightwing-site/internal/catalog"
	"github.com/YonatanCohen1020/nightwing-site/internal/checkout"
	"github.com/YonatanCohen1020/nightwing-site/internal/combo"
	"github.com/YonatanCohen1020/nightwing-site/internal/config"
	"github.com/YonatanCohen1020/nightwing-site/internal/geo"
	"github.com/YonatanCohen1020/nightwing-site/internal/router"
	"github.com/YonatanCohen1020/nightwing-site/internal/session"
	"github.com/YonatanCohen1020/nightwing-site/internal/storage"
)

func main() {

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background(), cfg.R2)
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── CATALOG ─────────────────────────
	catalogRepo := catalog.NewInMemoryRepository(catalog.Seed())
	catalogService := catalog.NewService(catalogRepo, r2Client)

	// ───────────────────────── SESSIONS ─────────────────────────
	tokens, err := session.NewTokenManager(cfg.JWTSecret)
	if err != nil {
		log.Fatal("❌ Token manager init failed:", err)
	}
	sessionRepo := session.NewInMemoryRepository()
	sessionService := session.NewService(tokens, sessionRepo)

	// ───────────────────────── CART + COMBO ─────────────────────────
	cartRepo := cart.NewInMemoryRepository()
	cartService := cart.NewService(cartRepo, catalogService)
	comboService := combo.NewService(catalogService, cartService)

	// ───────────────────────── CHECKOUT ─────────────────────────
	sink := checkout.NewWebhookSink(cfg.WebhookURL())
	checkoutService := checkout.NewService(cartService, sink)

	// ───────────────────────── GEO ─────────────────────────
	locator := geo.NewHTTPLocator(cfg.GeoEndpoint)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Handlers{
		Catalog:      catalog.NewHandler(catalogService),
		CatalogAdmin: catalog.NewAdminHandler(catalogService),
		Cart:         cart.NewHandler(cartService),
		Combo:        combo.NewHandler(comboService, cartService),
		Checkout:     checkout.NewHandler(checkoutService),
		Geo:          geo.NewHandler(locator),
		Session:      session.NewHandler(sessionService),

		Tokens:         tokens,
		AdminToken:     cfg.AdminToken,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
