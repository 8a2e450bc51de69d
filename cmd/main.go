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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-FlightBookingForm/internal/api/handlers"
	createFormHandler "github.com/m04kA/SMC-FlightBookingForm/internal/api/handlers/create_form"
	getFormHandler "github.com/m04kA/SMC-FlightBookingForm/internal/api/handlers/get_form"
	listCitiesHandler "github.com/m04kA/SMC-FlightBookingForm/internal/api/handlers/list_cities"
	submitFormHandler "github.com/m04kA/SMC-FlightBookingForm/internal/api/handlers/submit_form"
	updateFieldHandler "github.com/m04kA/SMC-FlightBookingForm/internal/api/handlers/update_field"
	updateTripTypeHandler "github.com/m04kA/SMC-FlightBookingForm/internal/api/handlers/update_trip_type"
	validateBookingHandler "github.com/m04kA/SMC-FlightBookingForm/internal/api/handlers/validate_booking"
	"github.com/m04kA/SMC-FlightBookingForm/internal/api/middleware"
	"github.com/m04kA/SMC-FlightBookingForm/internal/config"
	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
	cityRepo "github.com/m04kA/SMC-FlightBookingForm/internal/infra/storage/city"
	sessionRepo "github.com/m04kA/SMC-FlightBookingForm/internal/infra/storage/session"
	"github.com/m04kA/SMC-FlightBookingForm/internal/integrations/notifier"
	formsService "github.com/m04kA/SMC-FlightBookingForm/internal/service/forms"
	"github.com/m04kA/SMC-FlightBookingForm/internal/service/validation"
	initFormUC "github.com/m04kA/SMC-FlightBookingForm/internal/usecase/init_form"
	submitFormUC "github.com/m04kA/SMC-FlightBookingForm/internal/usecase/submit_form"
	"github.com/m04kA/SMC-FlightBookingForm/pkg/logger"
	"github.com/m04kA/SMC-FlightBookingForm/pkg/metrics"
)

// sessionStore хранилище форм, которое нужно закрыть при остановке
type sessionStore interface {
	formsService.FormRepository
	Close() error
}

// appMetrics метрики, которые используют use cases, сервис и rate limiter
type appMetrics interface {
	IncSubmission(outcome string)
	IncValidationError(field, kind string)
	IncFormCreated()
	IncRateLimited()
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

	log.Info("Starting SMC-FlightBookingForm...")
	log.Info("Configuration loaded from config.toml (city_selection=%t)", cfg.Form.CitySelection)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		counters         appMetrics = metrics.Nop{}
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		counters = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем каталог городов
	catalog := domain.DefaultCityCatalog()
	if cfg.Catalog.Source == config.CatalogPostgres {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		loadCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		catalog, err = cityRepo.NewRepository(db).LoadCatalog(loadCtx)
		cancel()
		if err != nil {
			log.Fatal("Failed to load city catalog: %v", err)
		}
	}
	log.Info("City catalog loaded (source=%s, cities=%d)", cfg.Catalog.Source, catalog.Len())

	// Фоновые задачи очистки останавливаются при завершении
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// Инициализируем хранилище форм
	sessionTTL := time.Duration(cfg.Sessions.TTLSeconds) * time.Second
	var store sessionStore
	switch cfg.Sessions.Store {
	case config.SessionsRedis:
		store, err = sessionRepo.NewRedisRepository(sessionRepo.RedisConfig{
			Addr:     cfg.Sessions.RedisAddr,
			Password: cfg.Sessions.RedisPassword,
			DB:       cfg.Sessions.RedisDB,
			TTL:      sessionTTL,
		})
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		log.Info("Session store: redis (addr=%s, ttl=%ds)", cfg.Sessions.RedisAddr, cfg.Sessions.TTLSeconds)
	default:
		memoryStore := sessionRepo.NewMemoryRepository(sessionTTL)
		if sessionTTL > 0 {
			go memoryStore.RunCleanup(bgCtx, time.Duration(cfg.Sessions.CleanupIntervalSeconds)*time.Second)
		}
		store = memoryStore
		log.Info("Session store: memory (ttl=%ds)", cfg.Sessions.TTLSeconds)
	}
	defer store.Close()

	// Инициализируем use cases
	initFormUseCase := initFormUC.NewUseCase(catalog, cfg.Form.CitySelection, log)
	submitFormUseCase := submitFormUC.NewUseCase(
		validation.NewValidator(cfg.Form.CitySelection),
		catalog,
		notifier.NewLogNotifier(log),
		counters,
		log,
	)

	// Инициализируем сервисы
	formsSvc := formsService.NewService(
		store,
		catalog,
		cfg.Form.CitySelection,
		initFormUseCase,
		submitFormUseCase,
		counters,
		log,
	)

	// Инициализируем handlers
	createForm := createFormHandler.NewHandler(formsSvc, log)
	getForm := getFormHandler.NewHandler(formsSvc, log)
	updateTripType := updateTripTypeHandler.NewHandler(formsSvc, log)
	updateField := updateFieldHandler.NewHandler(formsSvc, log)
	submitForm := submitFormHandler.NewHandler(formsSvc, log)
	validateBooking := validateBookingHandler.NewHandler(formsSvc, log)
	listCities := listCitiesHandler.NewHandler(catalog, cfg.Form.CitySelection)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	if cfg.RateLimit.Enabled {
		clientIdle := time.Duration(cfg.RateLimit.ClientIdleSeconds) * time.Second
		limiter := middleware.NewClientLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, clientIdle)
		go limiter.RunCleanup(bgCtx, clientIdle)
		api.Use(middleware.RateLimit(limiter, counters, log))
		log.Info("Rate limit enabled (rps=%.1f, burst=%d, client_idle=%ds)",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.ClientIdleSeconds)
	}

	// --- Формы ---
	api.HandleFunc("/forms", createForm.Handle).Methods(http.MethodPost)
	api.HandleFunc("/forms/{formId}", getForm.Handle).Methods(http.MethodGet)
	api.HandleFunc("/forms/{formId}/trip-type", updateTripType.Handle).Methods(http.MethodPut)
	api.HandleFunc("/forms/{formId}/fields/{field}", updateField.Handle).Methods(http.MethodPut)
	api.HandleFunc("/forms/{formId}/submit", submitForm.Handle).Methods(http.MethodPost)

	// --- Без сессии ---
	api.HandleFunc("/bookings/validate", validateBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cities", listCities.Handle).Methods(http.MethodGet)

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
	stopBackground()

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
