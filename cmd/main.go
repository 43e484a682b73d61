package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	clearDatesHandler "github.com/artstay/ArtStay-RetreatService/internal/api/handlers/clear_dates"
	createReservationHandler "github.com/artstay/ArtStay-RetreatService/internal/api/handlers/create_reservation"
	createSessionHandler "github.com/artstay/ArtStay-RetreatService/internal/api/handlers/create_session"
	deleteSessionHandler "github.com/artstay/ArtStay-RetreatService/internal/api/handlers/delete_session"
	getRoomCalendarHandler "github.com/artstay/ArtStay-RetreatService/internal/api/handlers/get_room_calendar"
	getSessionHandler "github.com/artstay/ArtStay-RetreatService/internal/api/handlers/get_session"
	selectDateHandler "github.com/artstay/ArtStay-RetreatService/internal/api/handlers/select_date"
	updateGuestsHandler "github.com/artstay/ArtStay-RetreatService/internal/api/handlers/update_guests"
	"github.com/artstay/ArtStay-RetreatService/internal/api/middleware"
	"github.com/artstay/ArtStay-RetreatService/internal/config"
	sessionStore "github.com/artstay/ArtStay-RetreatService/internal/infra/storage/sessions"
	propertyServiceClient "github.com/artstay/ArtStay-RetreatService/internal/integrations/propertyservice"
	"github.com/artstay/ArtStay-RetreatService/internal/service/ratedata"
	sessionsService "github.com/artstay/ArtStay-RetreatService/internal/service/sessions"
	createReservationUC "github.com/artstay/ArtStay-RetreatService/internal/usecase/create_reservation"
	getRoomCalendarUC "github.com/artstay/ArtStay-RetreatService/internal/usecase/get_room_calendar"
	selectDateUC "github.com/artstay/ArtStay-RetreatService/internal/usecase/select_date"
	"github.com/artstay/ArtStay-RetreatService/pkg/clientmetrics"
	"github.com/artstay/ArtStay-RetreatService/pkg/logger"
	"github.com/artstay/ArtStay-RetreatService/pkg/metrics"
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

	log.Info("Starting ArtStay-RetreatService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиента PropertyService (с метриками или без)
	var transport http.RoundTripper
	if cfg.Metrics.Enabled {
		transport = clientmetrics.WrapTransport(nil, metricsCollector, "property-service")
	}
	propertyClient := propertyServiceClient.NewClient(
		cfg.PropertyService.URL,
		time.Duration(cfg.PropertyService.Timeout)*time.Second,
		transport,
		log,
	)
	log.Info("Integration client initialized (PropertyService=%s timeout=%ds)",
		cfg.PropertyService.URL, cfg.PropertyService.Timeout)

	// Инициализируем хранилище сессий и сборку истекших
	store := sessionStore.NewStore(time.Duration(cfg.Sessions.TTLMinutes) * time.Minute)
	if cfg.Metrics.Enabled {
		store.SetObserver(metricsCollector)
	}

	stopCleanupCh := make(chan struct{})
	go store.RunCleanup(time.Duration(cfg.Sessions.CleanupIntervalMinutes)*time.Minute, stopCleanupCh)
	log.Info("Session store initialized (ttl=%dm, cleanup every %dm)",
		cfg.Sessions.TTLMinutes, cfg.Sessions.CleanupIntervalMinutes)

	// Инициализируем загрузчик тарифных данных
	rateDataLoader := ratedata.NewLoader(propertyClient, log)

	// Инициализируем сервисы
	sessionSvc := sessionsService.NewService(store, propertyClient, rateDataLoader, log)

	// Инициализируем use cases
	selectDateUseCase := selectDateUC.NewUseCase(store, log)
	getRoomCalendarUseCase := getRoomCalendarUC.NewUseCase(propertyClient, rateDataLoader, log)
	createReservationUseCase := createReservationUC.NewUseCase(store, propertyClient, log)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(sessionSvc, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	deleteSession := deleteSessionHandler.NewHandler(sessionSvc, log)
	updateGuests := updateGuestsHandler.NewHandler(sessionSvc, log)
	clearDates := clearDatesHandler.NewHandler(sessionSvc, log)
	selectDate := selectDateHandler.NewHandler(selectDateUseCase, log)
	getRoomCalendar := getRoomCalendarHandler.NewHandler(getRoomCalendarUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Сессии бронирования ---
	// Создание сессии для номера
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)

	// Текущее состояние сессии
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)

	// Удаление сессии
	api.HandleFunc("/sessions/{sessionId}", deleteSession.Handle).Methods(http.MethodDelete)

	// Выбор даты в календаре (два клика: заезд, затем выезд)
	api.HandleFunc("/sessions/{sessionId}/select-date", selectDate.Handle).Methods(http.MethodPost)

	// Сброс выбранных дат
	api.HandleFunc("/sessions/{sessionId}/clear-dates", clearDates.Handle).Methods(http.MethodPost)

	// Изменение счетчиков гостей и количества номеров
	api.HandleFunc("/sessions/{sessionId}/guests", updateGuests.Handle).Methods(http.MethodPost)

	// Оформление бронирования
	api.HandleFunc("/sessions/{sessionId}/reservation", createReservation.Handle).Methods(http.MethodPost)

	// --- Календарь номера ---
	// Месячная сетка цен и доступности (без сессии)
	api.HandleFunc("/rooms/{roomId}/calendar", getRoomCalendar.Handle).Methods(http.MethodGet)

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

	// Останавливаем сборку истекших сессий
	close(stopCleanupCh)

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
