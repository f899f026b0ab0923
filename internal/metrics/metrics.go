// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_comms_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crm_comms_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "route"},
	)

	RateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_comms_rate_limit_hits_total",
			Help: "Requests rejected by the burst limiter",
		},
		[]string{"route"},
	)

	// Gateway metrics
	GatewaySends = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_comms_gateway_sends_total",
			Help: "Channel gateway send attempts",
		},
		[]string{"channel", "result"}, // "ok" or "error"
	)

	GatewayLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crm_comms_gateway_latency_seconds",
			Help:    "Channel gateway call latency",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"channel"},
	)

	GatewayBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "crm_comms_gateway_breaker_state",
			Help: "Gateway breaker state: 0 closed, 1 half-open, 2 open",
		},
		[]string{"channel"},
	)

	GatewayBreakerRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_comms_gateway_breaker_rejections_total",
			Help: "Sends refused without contacting the provider",
		},
		[]string{"channel"},
	)

	// Business metrics
	OutboxTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_comms_outbox_transitions_total",
			Help: "Outbox items entering a status",
		},
		[]string{"status"},
	)

	DirectSends = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_comms_direct_sends_total",
			Help: "Sends that bypassed QA",
		},
		[]string{"channel"},
	)

	CooldownRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_comms_cooldown_rejections_total",
			Help: "Automated sends blocked by an active cooldown",
		},
		[]string{"channel"},
	)

	OptOutRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_comms_opt_out_rejections_total",
			Help: "Automated SMS blocked by contact opt-out",
		},
	)

	SLABreaches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_comms_sla_breaches_total",
			Help: "Thread SLAs flipped to breached",
		},
	)

	ReminderDispatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_comms_reminder_dispatches_total",
			Help: "Reminder dispatch outcomes",
		},
		[]string{"result"}, // "sent", "failed" or "skipped"
	)

	InboundMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_comms_inbound_messages_total",
			Help: "Inbound webhook messages processed",
		},
		[]string{"channel"},
	)
)
