package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsdesk/config"
	"newsdesk/internal/alert"
	"newsdesk/internal/api"
	"newsdesk/internal/auth"
	"newsdesk/internal/broker"
	"newsdesk/internal/redisclient"
	"newsdesk/internal/service"
	"newsdesk/internal/store"
	"newsdesk/internal/util"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting newsdesk service")

	tp, err := util.InitTracer("newsdesk", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	db, err := store.NewStore(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Database connected")

	redisClient, err := redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Redis connected")

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicChanges)
	defer producer.Close()
	log.Println("Kafka producer initialized")

	changes := broker.NewChangePublisher(producer)

	dashboardService := service.NewDashboardService(db, redisClient,
		cfg.Dashboard.SnapshotCap, cfg.Dashboard.TopNewspapers, cfg.Dashboard.CountCacheTTL)
	subscriptionService := service.NewSubscriptionService(db, changes)
	paymentService := service.NewPaymentService(db, changes)
	bookingService := service.NewBookingService(db, changes)
	directoryService := service.NewDirectoryService(db)

	sessions := auth.NewManager(redisClient, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword, cfg.Auth.SessionTTL)

	listenerCtx, listenerCancel := context.WithCancel(context.Background())
	defer listenerCancel()

	alertConsumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicChanges, cfg.Kafka.ConsumerGroup)
	alertListener := alert.NewListener(alertConsumer, db)
	go func() {
		if err := alertListener.Start(listenerCtx); err != nil && err != context.Canceled {
			log.Printf("Alert listener error: %v", err)
		}
	}()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handler := api.NewHandler(
		dashboardService,
		subscriptionService,
		paymentService,
		bookingService,
		directoryService,
		alertListener,
		sessions,
	)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	listenerCancel()
	alertListener.Stop()

	log.Println("Server exited")
}
