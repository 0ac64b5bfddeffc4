package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"plantstore/internal/cart"
	"plantstore/internal/config"
	"plantstore/internal/db"
	"plantstore/internal/httpserver"
	"plantstore/internal/media"
	"plantstore/internal/payment"
	"plantstore/internal/realtime"
	addressrepo "plantstore/internal/repository/address"
	orderrepo "plantstore/internal/repository/order"
	plantrepo "plantstore/internal/repository/plant"
	profilerepo "plantstore/internal/repository/profile"
	tokenrepo "plantstore/internal/repository/token"
	addresssvc "plantstore/internal/service/address"
	authsvc "plantstore/internal/service/auth"
	catalogsvc "plantstore/internal/service/catalog"
	checkoutsvc "plantstore/internal/service/checkout"
	inventorysvc "plantstore/internal/service/inventory"
	ordersvc "plantstore/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString, int32(cfg.DBMaxConns))
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	mediaStore, err := media.NewStore(cfg.MediaDir, cfg.MediaURLHost)
	if err != nil {
		logger.Fatalf("init media store: %v", err)
	}
	paymentClient := payment.New(cfg.PaymentBaseURL, cfg.PaymentKeyID, cfg.PaymentKeySecret, logger)
	hub := realtime.NewHub(rdb, logger)
	carts := cart.NewStore()

	profileRepo := profilerepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	plantRepo := plantrepo.NewPostgres(dbpool, logger)
	addressRepo := addressrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	authService := authsvc.New(profileRepo, tokenRepo)
	catalogService := catalogsvc.New(plantRepo)
	inventoryService := inventorysvc.New(plantRepo, mediaStore)
	addressService := addresssvc.New(addressRepo)
	orderService := ordersvc.New(orderRepo, hub, logger)
	checkoutService := checkoutsvc.New(carts, addressRepo, profileRepo, orderRepo, paymentClient, hub, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AuthSvc:      authService,
		CatalogSvc:   catalogService,
		InventorySvc: inventoryService,
		OrderSvc:     orderService,
		CheckoutSvc:  checkoutService,
		AddressSvc:   addressService,
		Carts:        carts,
		Events:       hub,
	}, mediaStore.Dir())
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
