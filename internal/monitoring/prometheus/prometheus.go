// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/weftworks/provisioning-service/internal/logging"
	"github.com/weftworks/provisioning-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime        *prometheus.HistogramVec
	dependencyAvailable *prometheus.GaugeVec
	provisionedTotal    *prometheus.CounterVec
	provisioningFailed  *prometheus.CounterVec
	orphanedSchemas     prometheus.Counter

	logger logging.LoggerInterface
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerMetrics()

	return m
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, duration float64) error {
	metric, err := m.responseTime.GetMetricWith(tags)
	if err != nil {
		return err
	}

	metric.Observe(duration)
	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, available float64) error {
	metric, err := m.dependencyAvailable.GetMetricWith(tags)
	if err != nil {
		return err
	}

	metric.Set(available)
	return nil
}

func (m *Monitor) IncTenantProvisioned(plan string) {
	m.provisionedTotal.WithLabelValues(plan).Inc()
}

func (m *Monitor) IncProvisioningFailure(step string) {
	m.provisioningFailed.WithLabelValues(step).Inc()
}

// IncOrphanedSchema counts compensating drops that failed. A nonzero value
// means schemas are leaking and require operator cleanup, alert on it.
func (m *Monitor) IncOrphanedSchema() {
	m.orphanedSchemas.Inc()
}

func (m *Monitor) registerMetrics() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "Duration of HTTP requests in seconds.",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	m.dependencyAvailable = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "Availability of upstream dependencies, 1 available 0 unavailable.",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"dependency"},
	)

	m.provisionedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "tenants_provisioned_total",
			Help:        "Number of successfully provisioned tenants.",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"plan"},
	)

	m.provisioningFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "tenant_provisioning_failures_total",
			Help:        "Number of failed provisioning attempts by failing step.",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"step"},
	)

	m.orphanedSchemas = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "tenant_orphaned_schemas_total",
			Help:        "Number of schemas left behind by failed compensating drops.",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
	)

	prometheus.MustRegister(
		m.responseTime,
		m.dependencyAvailable,
		m.provisionedTotal,
		m.provisioningFailed,
		m.orphanedSchemas,
	)
}
