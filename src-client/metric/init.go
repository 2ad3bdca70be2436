package metric

import (
	"context"
	"log/slog"
	"net/http"
	"syscall"
	"time"

	"campusevents/src-client/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init starts every collector against the default registry.
func Init(as *utils.AppState) {
	InitWith(as, prometheus.DefaultRegisterer)
}

func InitWith(as *utils.AppState, reg prometheus.Registerer) {
	tickerInterval := as.Config.GetMetricCollectionInterval()
	clearTickerInterval := as.Config.GetMetricCollectionInterval() * 2
	gatewayRequest(as, reg, &clearTickerInterval)
	gatewayFailure(as, reg, &clearTickerInterval)
	reorderPersist(as, reg, &clearTickerInterval)
	backendPing(as, reg, &tickerInterval)
	eventsLoaded(as, reg, &tickerInterval)
}

// Serve exposes /metrics on METRIC_PORT. A failing listener asks the app
// to close.
func Serve(as *utils.AppState) {
	muxer := http.NewServeMux()
	muxer.Handle("GET /metrics", promhttp.Handler())
	server := &http.Server{
		Addr:    ":" + as.Config.GetMetricPort(),
		Handler: muxer,
	}
	go func() {
		<-as.CreateGracefulShutdownChan()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Warn("can't shut down metric server", "error", err)
		}
	}()
	slog.Info("metric server listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("cannot start metric server", "error", err)
		as.AppCloseSignalChan <- syscall.SIGTERM
	}
}

// register adds gauge to reg and zeroes it. It reports false when the gauge
// could not be registered.
func register(reg prometheus.Registerer, gauge prometheus.Gauge, name string) bool {
	if err := reg.Register(gauge); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register "+name+" metric", "error", err)
			return false
		}
	}
	slog.Debug(name + " metric registered")
	gauge.Set(0)
	return true
}

func unregister(reg prometheus.Registerer, gauge prometheus.Gauge, name string) {
	switch reg.Unregister(gauge) {
	case true:
		slog.Debug(name + " metric unregistered")
	case false:
		slog.Warn(name + " metric not registered")
	}
}
