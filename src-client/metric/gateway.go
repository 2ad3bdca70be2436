package metric

import (
	"time"

	"campusevents/src-client/utils"

	"github.com/prometheus/client_golang/prometheus"
)

// drain sets gauge from samples and zeroes it after a quiet clear interval.
func drain(as *utils.AppState, reg prometheus.Registerer, gauge prometheus.Gauge, name string, samples <-chan float64, clearTickerInterval *time.Duration) {
	register(reg, gauge, name)
	gracefulShutdownCh := as.CreateGracefulShutdownChan()
	go func() {
		clearTicker := time.NewTicker(*clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-gracefulShutdownCh:
				unregister(reg, gauge, name)
				return
			case latency := <-samples:
				gauge.Set(latency)
				clearTicker.Reset(*clearTickerInterval)
			case <-clearTicker.C:
				gauge.Set(0)
			}
		}
	}()
}

func gatewayRequest(as *utils.AppState, reg prometheus.Registerer, clearTickerInterval *time.Duration) {
	drain(as, reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "campusevents_gateway_request_microsec",
		Help: "The latency of the last successful backend request in microseconds",
	}), "campusevents_gateway_request_microsec", as.MetricChans.GatewayRequest, clearTickerInterval)
}

func gatewayFailure(as *utils.AppState, reg prometheus.Registerer, clearTickerInterval *time.Duration) {
	drain(as, reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "campusevents_gateway_failure_microsec",
		Help: "The latency of the last failed backend request in microseconds",
	}), "campusevents_gateway_failure_microsec", as.MetricChans.GatewayFailure, clearTickerInterval)
}

func reorderPersist(as *utils.AppState, reg prometheus.Registerer, clearTickerInterval *time.Duration) {
	drain(as, reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "campusevents_reorder_persist_microsec",
		Help: "The latency of the last saved event order in microseconds",
	}), "campusevents_reorder_persist_microsec", as.MetricChans.ReorderPersist, clearTickerInterval)
}
