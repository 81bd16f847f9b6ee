package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveTaskDuration("build", 150*time.Millisecond)
	pr.IncTaskResult("build", ResultSuccess)
	pr.IncTaskResult("serve", ResultFailed)
	pr.IncTaskResult("serve", ResultFailed)
	pr.IncCommandExit("hugo", 0)
	pr.IncCommandExit("hugo", 255)
	pr.IncCommandExit("hugo", -1)

	require.InDelta(t, 1, testutil.ToFloat64(pr.taskResults.WithLabelValues("build", "success")), 0)
	require.InDelta(t, 2, testutil.ToFloat64(pr.taskResults.WithLabelValues("serve", "failed")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(pr.commandExits.WithLabelValues("hugo", "255")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(pr.commandExits.WithLabelValues("hugo", ExitCodeSignal)), 0)
	require.Equal(t, 3, testutil.CollectAndCount(pr.commandExits))
	require.Equal(t, 1, testutil.CollectAndCount(pr.taskDuration))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, mfs, 3)
}

func TestPrometheusRecorderNilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	require.NotPanics(t, func() {
		pr.ObserveTaskDuration("build", time.Second)
		pr.IncTaskResult("build", ResultSuccess)
		pr.IncCommandExit("hugo", 1)
	})
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveTaskDuration("build", time.Second)
	r.IncTaskResult("build", ResultCanceled)
	r.IncCommandExit("hugo", 0)
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncTaskResult("build", ResultSuccess)

	path := filepath.Join(t.TempDir(), "sitetasks.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), `sitetasks_task_results_total{result="success",task="build"} 1`),
		"unexpected textfile contents:\n%s", data)
}
