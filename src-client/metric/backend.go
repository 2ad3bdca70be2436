package metric

import (
	"context"
	"log/slog"
	"time"

	"campusevents/src-client/utils"

	"github.com/prometheus/client_golang/prometheus"
)

func backendPing(as *utils.AppState, reg prometheus.Registerer, tickerInterval *time.Duration) {
	name := "campusevents_backend_ping_microsec"
	backendPing := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: name,
		Help: "The round trip time of a backend ping in microseconds",
	})
	register(reg, backendPing, name)
	gracefulShutdownCh := as.CreateGracefulShutdownChan()
	go func() {
		ticker := time.NewTicker(*tickerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gracefulShutdownCh:
				unregister(reg, backendPing, name)
				return
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), *tickerInterval)
				latency, err := as.API.Ping(ctx)
				cancel()
				if err != nil {
					slog.Error("can't ping backend", "error", err)
					backendPing.Set(0)
					continue
				}
				backendPing.Set(float64(latency.Microseconds()))
			}
		}
	}()
}

func eventsLoaded(as *utils.AppState, reg prometheus.Registerer, tickerInterval *time.Duration) {
	name := "campusevents_events_loaded"
	eventsLoaded := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: name,
		Help: "The number of events held by the local store",
	})
	register(reg, eventsLoaded, name)
	gracefulShutdownCh := as.CreateGracefulShutdownChan()
	go func() {
		ticker := time.NewTicker(*tickerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gracefulShutdownCh:
				unregister(reg, eventsLoaded, name)
				return
			case <-ticker.C:
				eventsLoaded.Set(float64(len(as.Events.Events())))
			}
		}
	}()
}
