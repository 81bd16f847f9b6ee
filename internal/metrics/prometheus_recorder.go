package metrics

import (
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	taskDuration *prom.HistogramVec
	taskResults  *prom.CounterVec
	commandExits *prom.CounterVec
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		taskDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "sitetasks",
			Name:      "task_duration_seconds",
			Help:      "Duration of task runs, including the external commands they issue",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 300, 1800, 3600},
		}, []string{"task"}),
		taskResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitetasks",
			Name:      "task_results_total",
			Help:      "Task run counts by outcome",
		}, []string{"task", "result"}),
		commandExits: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitetasks",
			Name:      "command_exits_total",
			Help:      "External command completions by binary and exit code",
		}, []string{"binary", "code"}),
	}
	reg.MustRegister(pr.taskDuration, pr.taskResults, pr.commandExits)
	return pr
}

func (p *PrometheusRecorder) ObserveTaskDuration(task string, d time.Duration) {
	if p == nil {
		return
	}
	p.taskDuration.WithLabelValues(task).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncTaskResult(task string, result ResultLabel) {
	if p == nil {
		return
	}
	p.taskResults.WithLabelValues(task, string(result)).Inc()
}

func (p *PrometheusRecorder) IncCommandExit(binary string, exitCode int) {
	if p == nil {
		return
	}
	p.commandExits.WithLabelValues(binary, exitCodeLabel(exitCode)).Inc()
}

// exitCodeLabel renders an exit status as a label value. os/exec reports -1
// for a child terminated by a signal.
func exitCodeLabel(code int) string {
	if code < 0 {
		return ExitCodeSignal
	}
	return strconv.Itoa(code)
}

// WriteTextfile atomically writes every metric gathered from g to path in the
// text exposition format understood by the node exporter textfile collector.
func WriteTextfile(path string, g prom.Gatherer) error {
	return prom.WriteToTextfile(path, g)
}
