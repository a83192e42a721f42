// Package metric provides Prometheus metrics for TeachWhat.
//
//   - prometheus.go: the Registry with command, parse error and save metrics
//   - collector.go: a collector reporting the current book size
//
// The CLI has no HTTP listener; metrics are written in the text exposition
// format to a file (node_exporter textfile collector) on exit.
package metric
