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
	"github.com/rs/cors"

	monthAvailabilityHandler "github.com/clarasbuffet/CBF-BookingService/internal/api/handlers/month_availability"
	scheduleBookingHandler "github.com/clarasbuffet/CBF-BookingService/internal/api/handlers/schedule_booking"
	"github.com/clarasbuffet/CBF-BookingService/internal/api/middleware"
	"github.com/clarasbuffet/CBF-BookingService/internal/availability"
	"github.com/clarasbuffet/CBF-BookingService/internal/classifier"
	"github.com/clarasbuffet/CBF-BookingService/internal/config"
	"github.com/clarasbuffet/CBF-BookingService/internal/eventparser"
	eventsRepo "github.com/clarasbuffet/CBF-BookingService/internal/infra/storage/events"
	googleCalendarClient "github.com/clarasbuffet/CBF-BookingService/internal/integrations/googlecalendar"
	monthAvailabilityUC "github.com/clarasbuffet/CBF-BookingService/internal/usecase/month_availability"
	scheduleBookingUC "github.com/clarasbuffet/CBF-BookingService/internal/usecase/schedule_booking"
	"github.com/clarasbuffet/CBF-BookingService/pkg/daylock"
	"github.com/clarasbuffet/CBF-BookingService/pkg/logger"
	"github.com/clarasbuffet/CBF-BookingService/pkg/metrics"
)

// CalendarBackend объединяет чтение и запись событий; реализуется
// Google Calendar клиентом и PostgreSQL репозиторием.
type CalendarBackend interface {
	scheduleBookingUC.CalendarClient
	monthAvailabilityUC.CalendarClient
}

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

	log.Info("Starting CBF-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx := context.Background()

	// Выбираем бэкенд календаря
	var calendarBackend CalendarBackend

	switch cfg.Calendar.Backend {
	case config.BackendGoogle:
		client, err := googleCalendarClient.NewClient(
			ctx,
			cfg.Calendar.CredentialsFile,
			cfg.Calendar.CalendarID,
			time.Duration(cfg.Calendar.Timeout)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize Google Calendar client: %v", err)
		}
		calendarBackend = client
		log.Info("Calendar backend: google (calendar_id=%s)", cfg.Calendar.CalendarID)

	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		calendarBackend = eventsRepo.NewRepository(db)
		log.Info("Calendar backend: postgres (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	// Конвейер правил: классификатор, парсер и движок — один на оба
	// use case, чтобы проверка дня и сводка месяца не могли разойтись
	// в правилах
	cls := classifier.New()
	parser := eventparser.New()
	engine := availability.NewEngine(cls, parser, cfg.Booking.MaxMainPerDay, cfg.Booking.MaxRentalPerDay)

	dayLocker := daylock.New()

	// Инициализируем use cases
	var admissionMetrics scheduleBookingUC.AdmissionMetrics
	if metricsCollector != nil {
		admissionMetrics = metricsCollector
	}

	scheduleBookingUseCase := scheduleBookingUC.NewUseCase(
		calendarBackend,
		engine,
		cls,
		dayLocker,
		admissionMetrics,
		log,
	)
	monthAvailabilityUseCase := monthAvailabilityUC.NewUseCase(
		calendarBackend,
		engine,
		log,
	)

	// Инициализируем handlers
	scheduleBooking := scheduleBookingHandler.NewHandler(
		scheduleBookingUseCase,
		cfg.Booking.DefaultDurationHours,
		log,
	)
	monthAvailability := monthAvailabilityHandler.NewHandler(monthAvailabilityUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	if cfg.Server.RateLimitRPS > 0 {
		rateLimiter := middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
		r.Use(rateLimiter.Middleware())
		log.Info("Rate limiting enabled: %.1f rps, burst %d", cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// Пути и формат ответов — контракт с существующей клиентской частью
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/schedule", scheduleBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/month-availability", monthAvailability.Handle).Methods(http.MethodGet)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
