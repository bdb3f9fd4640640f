package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	adaptershttp "github.com/ledgerdesk/ledgerdesk/internal/adapter/http"
	"github.com/ledgerdesk/ledgerdesk/internal/adapter/http/handler"
	"github.com/ledgerdesk/ledgerdesk/internal/adapter/repository/postgres"
	"github.com/ledgerdesk/ledgerdesk/internal/infrastructure/metrics"
	"github.com/ledgerdesk/ledgerdesk/internal/usecase"
)

// newTestRouter wires the full HTTP stack against a real database. The
// cache and redis client may be nil, the service runs without them.
func newTestRouter(t *testing.T, pool *pgxpool.Pool, cache usecase.Cache, redisClient *goredis.Client) http.Handler {
	t.Helper()

	log := zerolog.Nop()
	m := metrics.New(prometheus.NewRegistry())

	txManager := postgres.NewTxManager(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	entryRepo := postgres.NewEntryRepository(pool)
	idGen := postgres.NewULIDGenerator()
	retrier := postgres.NewRetrier(log)

	accountUC := usecase.NewAccountUseCase(txManager, accountRepo, entryRepo, idGen, retrier)
	ledgerUC := usecase.NewLedgerUseCase(txManager, accountRepo, entryRepo, idGen, retrier)
	dashboardUC := usecase.NewDashboardUseCase(accountRepo, cache)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		AccountHandler:   handler.NewAccountHandler(accountUC, m),
		LedgerHandler:    handler.NewLedgerHandler(ledgerUC, m),
		DashboardHandler: handler.NewDashboardHandler(dashboardUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		Logger:           log,
	})
}

func doRequest(t *testing.T, router http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal request payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(method, path, body)
	if payload != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	return w
}

func decodeResponse[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}

	return v
}
