package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := New(registry)

	if m.AccountsCreated == nil || m.EntriesAppended == nil || m.OverdraftRejections == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.AccountsCreated.Inc()
	m.EntriesAppended.WithLabelValues("credit").Inc()

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestNewIsSafePerRegistry(t *testing.T) {
	// Separate registries must not collide; tests rely on this.
	a := New(prometheus.NewRegistry())
	b := New(prometheus.NewRegistry())

	a.OverdraftRejections.Inc()
	b.OverdraftRejections.Inc()
}
