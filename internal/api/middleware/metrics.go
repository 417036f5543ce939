package middleware

import (
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
)

// HTTPMetrics приемник метрик HTTP запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
}

// unmatchedRoute метка для запросов вне таблицы маршрутов
const unmatchedRoute = "unmatched"

// MetricsMiddleware считает запросы и их длительность.
// Метка route - шаблон маршрута mux, а не фактический путь, чтобы ID не раздували кардинальность.
func MetricsMiddleware(m HTTPMetrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			snoop := httpsnoop.CaptureMetrics(next, w, r)
			m.ObserveHTTPRequest(r.Method, routeTemplate(r), snoop.Code, snoop.Duration)
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unmatchedRoute
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return tpl
}
