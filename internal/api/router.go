// Package api собирает HTTP маршруты сервиса.
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	createBookingHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/get_calendar"
	getCatalogHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/get_catalog"
	getPriceHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/get_price"
	listBookingsHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/list_bookings"
	removeBookingHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/remove_booking"
	sessionsHandler "github.com/m04kA/SMC-ClubBookingService/internal/api/handlers/sessions"
	"github.com/m04kA/SMC-ClubBookingService/internal/api/middleware"
	bookingsService "github.com/m04kA/SMC-ClubBookingService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-ClubBookingService/internal/service/catalog"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/session"
	createBookingUC "github.com/m04kA/SMC-ClubBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-ClubBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ClubBookingService/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Deps зависимости HTTP слоя
type Deps struct {
	CreateBooking     *createBookingUC.UseCase
	GetAvailableSlots *getAvailableSlotsUC.UseCase
	Bookings          *bookingsService.Service
	Catalog           *catalogService.Service
	Sessions          *session.Registry

	// Metrics nil - метрики по HTTP не собираются и не публикуются
	Metrics     *metrics.Metrics
	MetricsPath string

	Logger Logger
}

// NewRouter регистрирует все маршруты /api/v1
func NewRouter(deps Deps) *mux.Router {
	log := deps.Logger

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(deps.CreateBooking, deps.Sessions, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(deps.GetAvailableSlots, log)
	getBooking := getBookingHandler.NewHandler(deps.Bookings, log)
	listBookings := listBookingsHandler.NewHandler(deps.Bookings, log)
	removeBooking := removeBookingHandler.NewHandler(deps.Bookings, log)
	getCatalog := getCatalogHandler.NewHandler(deps.Catalog, log)
	getPrice := getPriceHandler.NewHandler(deps.Catalog, log)
	getCalendar := getCalendarHandler.NewHandler(deps.Catalog, log)
	sessions := sessionsHandler.NewHandler(deps.Sessions, log)

	r := mux.NewRouter()

	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
		r.Handle(deps.MetricsPath, deps.Metrics.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность и справочники ---
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/prices", getPrice.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", removeBooking.Handle).Methods(http.MethodDelete)

	// --- Сессии интерфейса ---
	api.HandleFunc("/sessions", sessions.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", sessions.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", sessions.Update).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}", sessions.Delete).Methods(http.MethodDelete)

	return r
}
