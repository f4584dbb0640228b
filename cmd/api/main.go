package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gorravana/boutique-backend/api/routes"
	"github.com/gorravana/boutique-backend/internal/auth"
	"github.com/gorravana/boutique-backend/internal/cart"
	"github.com/gorravana/boutique-backend/internal/catalog"
	"github.com/gorravana/boutique-backend/internal/checkout"
	"github.com/gorravana/boutique-backend/internal/notifications"
	"github.com/gorravana/boutique-backend/internal/orders"
	"github.com/gorravana/boutique-backend/internal/shipping"
	"github.com/gorravana/boutique-backend/internal/wishlist"
	"github.com/gorravana/boutique-backend/pkg/config"
	"github.com/gorravana/boutique-backend/pkg/db"
	"github.com/gorravana/boutique-backend/pkg/logger"
	"github.com/gorravana/boutique-backend/pkg/mail"
	"github.com/gorravana/boutique-backend/pkg/metrics"
	"github.com/gorravana/boutique-backend/pkg/migrate"
	"github.com/gorravana/boutique-backend/pkg/outbox"
	"github.com/gorravana/boutique-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	promRegistry := prometheus.NewRegistry()
	checkoutMetrics := metrics.NewCheckoutMetrics(promRegistry)

	calc := shipping.NewCalculator(cfg.Shipping)
	emitter := outbox.NewService(outbox.NewRepository())

	catalogService, err := catalog.NewService(catalog.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	cartService := cart.NewService(cart.NewRedisStore(redisClient, cfg.Session.CartTTL))
	wishlistService := wishlist.NewService(wishlist.NewRedisStore(redisClient, cfg.Session.WishlistTTL))

	ordersRepo := orders.NewRepository(dbClient.DB())
	ordersService, err := orders.NewService(ordersRepo, dbClient, emitter)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	notificationsService, err := notifications.NewService(notifications.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create notifications service", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(
		calc,
		cartService,
		catalogService,
		ordersRepo,
		dbClient,
		emitter,
		checkoutMetrics,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	mailer, err := mail.NewLogMailer(cfg.Mail, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create mailer", err)
		os.Exit(1)
	}
	authService, err := auth.NewService(auth.NewRepository(dbClient.DB()), redisClient, mailer, cfg.JWT, cfg.TwoFactor)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	handler := routes.NewRouter(cfg, logg, dbClient, redisClient, routes.Services{
		Catalog:       catalogService,
		Cart:          cartService,
		Wishlist:      wishlistService,
		Checkout:      checkoutService,
		Orders:        ordersService,
		Notifications: notificationsService,
		Auth:          authService,
		Shipping:      calc,
	}, promRegistry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(ctx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}
