package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Account metrics
	AccountsCreated prometheus.Counter
	AccountsUpdated prometheus.Counter
	AccountsDeleted prometheus.Counter

	// Ledger metrics
	EntriesAppended     *prometheus.CounterVec
	EntryAmount         *prometheus.HistogramVec
	OverdraftRejections prometheus.Counter

	// Database metrics
	DBConnections prometheus.Gauge
	DBRetries     prometheus.Counter

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New creates all Prometheus metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Account metrics
		AccountsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledgerdesk_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		AccountsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledgerdesk_accounts_updated_total",
			Help: "Total number of account detail updates",
		}),
		AccountsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledgerdesk_accounts_deleted_total",
			Help: "Total number of accounts soft-deleted",
		}),

		// Ledger metrics
		EntriesAppended: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerdesk_entries_appended_total",
				Help: "Total number of ledger entries appended by type",
			},
			[]string{"type"},
		),
		EntryAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgerdesk_entry_amount",
				Help:    "Ledger entry amounts",
				Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
			},
			[]string{"type"},
		),
		OverdraftRejections: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledgerdesk_overdraft_rejections_total",
			Help: "Total number of debits rejected for insufficient funds",
		}),

		// Database metrics
		DBConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ledgerdesk_db_connections",
			Help: "Current number of database connections",
		}),
		DBRetries: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledgerdesk_db_retries_total",
			Help: "Total number of retried database transactions",
		}),

		// Cache metrics
		CacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerdesk_cache_hits_total",
				Help: "Total cache hits by key prefix",
			},
			[]string{"key"},
		),
		CacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerdesk_cache_misses_total",
				Help: "Total cache misses by key prefix",
			},
			[]string{"key"},
		),
	}
}
