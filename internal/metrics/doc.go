// Package metrics records task and command outcomes.
//
// Components receive a Recorder through the task execution context. NoopRecorder
// is the default; PrometheusRecorder registers real collectors on a registry,
// which the CLI writes to a node-exporter textfile when --metrics-file is set:
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	// ... run tasks with rec ...
//	err := metrics.WriteTextfile(path, reg)
//
// The runner is a short-lived process, so there is no scrape endpoint.
package metrics
