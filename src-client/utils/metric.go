package utils

import (
	"time"

	"campusevents/src-client/gateway"
)

// Latency samples in microseconds, drained by the metric package.
type Metric struct {
	GatewayRequest chan float64
	GatewayFailure chan float64
	ReorderPersist chan float64
}

func NewMetric() *Metric {
	return &Metric{
		GatewayRequest: make(chan float64, 64),
		GatewayFailure: make(chan float64, 64),
		ReorderPersist: make(chan float64, 8),
	}
}

// Send drops the sample when nobody is draining the channel, so commands
// never block on metrics when the listener is disabled.
func Send(ch chan float64, value float64) {
	select {
	case ch <- value:
	default:
	}
}

// Observe is a gateway observer feeding the request channels.
func (m *Metric) Observe(o gateway.Observation) {
	latency := float64(o.Duration.Microseconds())
	if o.Err != nil || o.Status >= 500 {
		Send(m.GatewayFailure, latency)
		return
	}
	Send(m.GatewayRequest, latency)
}

func (m *Metric) ObserveReorder(took time.Duration) {
	Send(m.ReorderPersist, float64(took.Microseconds()))
}
