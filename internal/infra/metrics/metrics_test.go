//go:build unit

package metrics_test

import (
	"testing"

	"voucher-seckill/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.Admission("admitted")
	m.Admission("admitted")
	m.Admission("no_stock")
	m.WorkerOutcome("created")
	m.Recovery()
	m.DeadLettered()

	n, err := testutil.GatherAndCount(reg, "seckill_gate_admissions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = testutil.GatherAndCount(reg,
		"seckill_worker_records_total",
		"seckill_worker_recoveries_total",
		"seckill_worker_dead_lettered_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
