package metrics_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/breeze/internal/adapters/metrics"
	"go.trai.ch/breeze/internal/core/domain"
)

func TestPrometheusRecorder_Counters(t *testing.T) {
	reg := prom.NewRegistry()
	pr := metrics.NewPrometheusRecorder(reg)

	pr.ObserveRebuild(domain.RebuildFull, 20*time.Millisecond)
	pr.ObserveRebuild(domain.RebuildIncremental, 2*time.Millisecond)
	pr.ObserveRebuild(domain.RebuildIncremental, 3*time.Millisecond)
	pr.IncBuildOutcome(metrics.OutcomeSuccess)
	pr.IncBuildOutcome(metrics.OutcomeFailed)

	expected := `
# HELP breeze_rebuilds_total Processed stylesheet invocations by rebuild decision
# TYPE breeze_rebuilds_total counter
breeze_rebuilds_total{decision="full"} 1
breeze_rebuilds_total{decision="incremental"} 2
# HELP breeze_build_outcomes_total Entry builds by final status
# TYPE breeze_build_outcomes_total counter
breeze_build_outcomes_total{outcome="failed"} 1
breeze_build_outcomes_total{outcome="success"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"breeze_rebuilds_total", "breeze_build_outcomes_total"))

	count, err := testutil.GatherAndCount(reg, "breeze_rebuild_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNoopRecorder(_ *testing.T) {
	var r metrics.NoopRecorder
	r.ObserveRebuild(domain.RebuildFull, time.Second)
	r.IncBuildOutcome(metrics.OutcomeSkipped)
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prom.NewRegistry()
	metrics.NewPrometheusRecorder(reg).IncBuildOutcome(metrics.OutcomeSuccess)

	rec := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `breeze_build_outcomes_total{outcome="success"} 1`)
}

func TestServe_StopsOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	reg := prom.NewRegistry()
	metrics.NewPrometheusRecorder(reg).IncBuildOutcome(metrics.OutcomeSkipped)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- metrics.Serve(ctx, addr, reg) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/metrics") //nolint:noctx // test helper
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return strings.Contains(string(body), "breeze_")
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
