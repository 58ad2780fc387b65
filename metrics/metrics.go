// Package metrics holds the Prometheus collectors served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestTotal counts HTTP requests by method, route and status.
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "milagre_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	// RequestDuration is the latency of HTTP requests.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "milagre_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	// CatalogQueries counts storefront catalog queries by whether the
	// result came from the memo.
	CatalogQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "milagre_catalog_queries_total",
			Help: "Catalog pipeline queries by cache outcome",
		},
		[]string{"outcome"},
	)
	// InventoryReloads counts snapshot loads from the database.
	InventoryReloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "milagre_inventory_reloads_total",
			Help: "Inventory snapshots loaded from the database",
		},
	)
	// InventorySize is the number of cars in the current snapshot.
	InventorySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "milagre_inventory_cars",
			Help: "Available cars in the current inventory snapshot",
		},
	)
	// LeadsTotal counts contact messages by outcome.
	LeadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "milagre_leads_total",
			Help: "Contact form submissions",
		},
		[]string{"status"},
	)
)
