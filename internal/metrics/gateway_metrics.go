package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation_error"
	OutcomeTransport  = "transport_error"
	OutcomeAPI        = "api_error"
)

// GatewayMetrics counts calls made through the Tapsilat gateway and inbound
// webhook verifications.
type GatewayMetrics struct {
	calls        *prometheus.CounterVec
	callDuration *prometheus.HistogramVec
	webhooks     *prometheus.CounterVec
}

func NewGatewayMetrics() *GatewayMetrics {
	return NewGatewayMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func NewGatewayMetricsWithRegisterer(registerer prometheus.Registerer) *GatewayMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &GatewayMetrics{
		calls: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "tapsilat_gateway_calls_total",
			Help: "Total number of Tapsilat API calls by operation and outcome",
		}, []string{"operation", "outcome"}),
		callDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "tapsilat_gateway_call_duration_seconds",
			Help:    "Duration of Tapsilat API calls in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		}, []string{"operation"}),
		webhooks: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "tapsilat_webhook_verifications_total",
			Help: "Total number of inbound webhook signature checks by result",
		}, []string{"result"}),
	}
}

// ObserveCall records one gateway call. A nil receiver is a no-op.
func (m *GatewayMetrics) ObserveCall(operation, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(operation, outcome).Inc()
	m.callDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *GatewayMetrics) RecordWebhook(valid bool) {
	if m == nil {
		return
	}
	result := "rejected"
	if valid {
		result = "accepted"
	}
	m.webhooks.WithLabelValues(result).Inc()
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}
