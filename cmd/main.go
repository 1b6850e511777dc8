package main

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BookingWindow/internal/api/handlers"
	clearRecentPNRsHandler "github.com/m04kA/SMC-BookingWindow/internal/api/handlers/clear_recent_pnrs"
	getBookingStatusHandler "github.com/m04kA/SMC-BookingWindow/internal/api/handlers/get_booking_status"
	getLiveStatusHandler "github.com/m04kA/SMC-BookingWindow/internal/api/handlers/get_live_status"
	getPNRStatusHandler "github.com/m04kA/SMC-BookingWindow/internal/api/handlers/get_pnr_status"
	getRecentPNRsHandler "github.com/m04kA/SMC-BookingWindow/internal/api/handlers/get_recent_pnrs"
	searchTrainsHandler "github.com/m04kA/SMC-BookingWindow/internal/api/handlers/search_trains"
	watchBookingStatusHandler "github.com/m04kA/SMC-BookingWindow/internal/api/handlers/watch_booking_status"
	"github.com/m04kA/SMC-BookingWindow/internal/api/middleware"
	"github.com/m04kA/SMC-BookingWindow/internal/config"
	"github.com/m04kA/SMC-BookingWindow/internal/infra/cache/pnrcache"
	"github.com/m04kA/SMC-BookingWindow/internal/infra/storage/recentpnr"
	railwayServiceClient "github.com/m04kA/SMC-BookingWindow/internal/integrations/railwayservice"
	pnrService "github.com/m04kA/SMC-BookingWindow/internal/service/pnr"
	trainsService "github.com/m04kA/SMC-BookingWindow/internal/service/trains"
	getBookingStatusUC "github.com/m04kA/SMC-BookingWindow/internal/usecase/get_booking_status"
	"github.com/m04kA/SMC-BookingWindow/pkg/logger"
	"github.com/m04kA/SMC-BookingWindow/pkg/metrics"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-BookingWindow...")
	log.Info("Configuration loaded from %s", configPath)

	// Календарная локация уже проверена в config.Load
	location, _ := cfg.BookingWindow.Location()
	log.Info("Booking window calendar: %s, refresh interval: %s", location, cfg.BookingWindow.RefreshInterval())

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Кэш PNR (опционально)
	var cache pnrService.Cache
	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancelPing()
		if err != nil {
			log.Warn("Redis is unavailable at %s, PNR cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			cache = pnrcache.NewCache(redisClient, time.Duration(cfg.Redis.PNRCacheTTL)*time.Second)
			log.Info("PNR cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.PNRCacheTTL)
		}
	}

	// Инициализируем интеграционных клиентов
	railwayClient := railwayServiceClient.NewClient(
		cfg.RailwayService.URL,
		cfg.RailwayService.APIKey,
		cfg.RailwayService.APIHost,
		time.Duration(cfg.RailwayService.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	log.Info("Integration clients initialized (RailwayService=%s timeout=%ds)",
		cfg.RailwayService.URL, cfg.RailwayService.Timeout)

	// Инициализируем репозитории
	recentRepository := recentpnr.NewRepository(db, 0)

	// Инициализируем сервисы
	pnrSvc := pnrService.NewService(
		railwayClient,
		cache,
		recentRepository,
		&getBookingStatusUC.RealTimeProvider{},
		metricsCollector,
		log,
	)
	trainsSvc := trainsService.NewService(railwayClient, log)

	// Инициализируем use cases
	getBookingStatusUseCase := getBookingStatusUC.NewUseCase(location, metricsCollector, log)

	// Инициализируем handlers
	getBookingStatus := getBookingStatusHandler.NewHandler(getBookingStatusUseCase, log)
	watchBookingStatus := watchBookingStatusHandler.NewHandler(
		getBookingStatusUseCase,
		cfg.BookingWindow.RefreshInterval(),
		metricsCollector,
		log,
	)
	searchTrains := searchTrainsHandler.NewHandler(trainsSvc, log)
	getLiveStatus := getLiveStatusHandler.NewHandler(trainsSvc, log)
	getPNRStatus := getPNRStatusHandler.NewHandler(pnrSvc, log)
	getRecentPNRs := getRecentPNRsHandler.NewHandler(pnrSvc, log)
	clearRecentPNRs := clearRecentPNRsHandler.NewHandler(pnrSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Статус окна бронирования
	api.HandleFunc("/booking-window", getBookingStatus.Handle).Methods(http.MethodGet)

	// Подписка на обновления статуса (text/event-stream)
	api.HandleFunc("/booking-window/watch", watchBookingStatus.Handle).Methods(http.MethodGet)

	// Поиск поездов и текущее положение поезда
	api.HandleFunc("/trains", searchTrains.Handle).Methods(http.MethodGet)
	api.HandleFunc("/trains/{trainNumber}/live-status", getLiveStatus.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- PNR ---
	protected.HandleFunc("/pnr/recent", getRecentPNRs.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/pnr/recent", clearRecentPNRs.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/pnr/{pnr:[0-9]{10}}", getPNRStatus.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	// WriteTimeout = 0 оставляет SSE-подписки открытыми
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Контекст запросов отменяется при остановке, чтобы SSE-подписки завершились
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	srv.BaseContext = func(net.Listener) context.Context { return baseCtx }
	srv.RegisterOnShutdown(cancelBase)

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
