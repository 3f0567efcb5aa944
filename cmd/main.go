package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/easy-tripzy/Tripzy-BookingService/internal/api/handlers/create_booking"
	getAdminBookingsHandler "github.com/easy-tripzy/Tripzy-BookingService/internal/api/handlers/get_admin_bookings"
	getBookingHandler "github.com/easy-tripzy/Tripzy-BookingService/internal/api/handlers/get_booking"
	getMyBookingsHandler "github.com/easy-tripzy/Tripzy-BookingService/internal/api/handlers/get_my_bookings"
	listSubjectsHandler "github.com/easy-tripzy/Tripzy-BookingService/internal/api/handlers/list_subjects"
	removeBookingHandler "github.com/easy-tripzy/Tripzy-BookingService/internal/api/handlers/remove_booking"
	updateBookingHandler "github.com/easy-tripzy/Tripzy-BookingService/internal/api/handlers/update_booking"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/api/middleware"
	"github.com/easy-tripzy/Tripzy-BookingService/internal/config"
	bookingRepo "github.com/easy-tripzy/Tripzy-BookingService/internal/infra/storage/booking"
	catalogServiceClient "github.com/easy-tripzy/Tripzy-BookingService/internal/integrations/catalogservice"
	bookingsService "github.com/easy-tripzy/Tripzy-BookingService/internal/service/bookings"
	createBookingUC "github.com/easy-tripzy/Tripzy-BookingService/internal/usecase/create_booking"
	myBookingsUC "github.com/easy-tripzy/Tripzy-BookingService/internal/usecase/my_bookings"
	removeBookingUC "github.com/easy-tripzy/Tripzy-BookingService/internal/usecase/remove_booking"
	"github.com/easy-tripzy/Tripzy-BookingService/pkg/dbmetrics"
	"github.com/easy-tripzy/Tripzy-BookingService/pkg/logger"
	"github.com/easy-tripzy/Tripzy-BookingService/pkg/metrics"
	"github.com/easy-tripzy/Tripzy-BookingService/pkg/simpletxmanager"
	"github.com/easy-tripzy/Tripzy-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting Tripzy-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
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

	// Инициализируем клиент каталога
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		txMgr             bookingsService.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		catalogClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogClient,
		txMgr,
		log,
	)

	myBookingsUseCase := myBookingsUC.NewUseCase(
		bookingRepository,
		catalogClient,
		cfg.Aggregation.PageSize,
		time.Duration(cfg.Aggregation.SubjectLookupTimeout)*time.Second,
		log,
	)

	removeBookingUseCase := removeBookingUC.NewUseCase(
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	removeBooking := removeBookingHandler.NewHandler(removeBookingUseCase, log)
	getMyBookings := getMyBookingsHandler.NewHandler(myBookingsUseCase, log)
	listSubjects := listSubjectsHandler.NewHandler(catalogClient, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Список объектов каталога по виду
	api.HandleFunc("/catalog/{kind}", listSubjects.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings/{kind}", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{kind}/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена/удаление бронирования
	protected.HandleFunc("/bookings/{kind}/{bookingId}", removeBooking.Handle).Methods(http.MethodDelete)

	// Агрегированные бронирования пользователя
	protected.HandleFunc("/users/{userId}/bookings", getMyBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin(log))

	// Список бронирований вида с фильтрацией
	admin.HandleFunc("/bookings/{kind}", getAdminBookings.Handle).Methods(http.MethodGet)

	// Полная замена бронирования
	admin.HandleFunc("/bookings/{kind}/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
