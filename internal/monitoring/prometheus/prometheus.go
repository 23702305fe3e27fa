// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/logging"
)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec
	dependencies *prometheus.GaugeVec
	tenantPools  prometheus.Gauge

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(tags).Observe(value)

	return nil
}

// SetDependencyAvailability expects a "component" tag, e.g. the control database or a tenant database.
func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencies == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencies.With(tags).Set(value)

	return nil
}

func (m *Monitor) SetOpenTenantPools(value float64) error {
	if m.tenantPools == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.tenantPools.Set(value)

	return nil
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	if err := prometheus.Register(m.responseTime); err != nil {
		m.logger.Debugf("metric already registered: %v", err)
	}
}

func (m *Monitor) registerGauges() {
	m.dependencies = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	if err := prometheus.Register(m.dependencies); err != nil {
		m.logger.Debugf("metric already registered: %v", err)
	}

	m.tenantPools = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name:        "tenant_pools_open",
			Help:        "number of tenant databases with an open connection pool",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
	)

	if err := prometheus.Register(m.tenantPools); err != nil {
		m.logger.Debugf("metric already registered: %v", err)
	}
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()

	return m
}
