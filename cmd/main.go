package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ghandlers "github.com/gorilla/handlers"

	"github.com/m04kA/SMC-ClubBookingService/internal/api"
	"github.com/m04kA/SMC-ClubBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ClubBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ClubBookingService/internal/integrations/notifier"
	bookingsService "github.com/m04kA/SMC-ClubBookingService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-ClubBookingService/internal/service/catalog"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/session"
	createBookingUC "github.com/m04kA/SMC-ClubBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-ClubBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ClubBookingService/pkg/logger"
	"github.com/m04kA/SMC-ClubBookingService/pkg/metrics"
	"github.com/m04kA/SMC-ClubBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-ClubBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Счетчики бизнес-событий ведутся всегда, наружу отдаются только если метрики включены
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	var exposedMetrics *metrics.Metrics
	if cfg.Metrics.Enabled {
		exposedMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище и менеджер транзакций
	bookingRepository := bookingRepo.NewRepository()
	txMgr := txmanager.NewTransactionManager()
	sessionRegistry := session.NewRegistry(log)
	metricsCollector.RegisterStoredBookings(bookingRepository.Count)

	// Каналы уведомлений
	bookingNotifier := newNotifier(cfg.Notification, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		bookingNotifier,
		metricsCollector,
		cfg.Notification.NotifyTimeout(),
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, metricsCollector, log)
	catalogSvc := catalogService.NewService(log)

	r := api.NewRouter(api.Deps{
		CreateBooking:     createBookingUseCase,
		GetAvailableSlots: getAvailableSlotsUseCase,
		Bookings:          bookingSvc,
		Catalog:           catalogSvc,
		Sessions:          sessionRegistry,
		Metrics:           exposedMetrics,
		MetricsPath:       cfg.Metrics.Path,
		Logger:            log,
	})

	handler := ghandlers.CORS(
		ghandlers.AllowedOrigins(cfg.Server.CORSAllowedOrigins),
		ghandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		ghandlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type"}),
	)(r)
	handler = ghandlers.RecoveryHandler(ghandlers.PrintRecoveryStack(true))(handler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся уведомлений, отправленных до остановки
	createBookingUseCase.Wait()
	if err := notifier.Drain(shutdownCtx, bookingNotifier); err != nil {
		log.Warn("Notifications not finished before shutdown: %v", err)
	}
	log.Info("Pending notifications drained")

	log.Info("Server stopped gracefully")
}

// newNotifier выбирает каналы уведомлений по конфигурации.
// Без email и webhook уведомления только пишутся в лог.
func newNotifier(cfg config.NotificationConfig, log *logger.Logger) createBookingUC.Notifier {
	var channels notifier.Multi

	if cfg.EmailEnabled {
		channels = append(channels, notifier.NewEmailNotifier(notifier.EmailConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.From,
			To:       cfg.To,
		}, log))
		log.Info("Email notifications enabled (smtp=%s:%d, to=%s)", cfg.SMTPHost, cfg.SMTPPort, cfg.To)
	}

	if cfg.WebhookURL != "" {
		channels = append(channels, notifier.NewWebhookNotifier(cfg.WebhookURL, cfg.NotifyTimeout(), log))
		log.Info("Webhook notifications enabled (url=%s)", cfg.WebhookURL)
	}

	switch len(channels) {
	case 0:
		log.Warn("No notification channel configured, bookings will only be logged")
		return notifier.NewLogNotifier(log)
	case 1:
		return channels[0]
	default:
		return channels
	}
}
