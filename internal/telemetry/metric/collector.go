// Package metric provides Prometheus metrics for TeachWhat.
package metric

import "github.com/prometheus/client_golang/prometheus"

// SizeFunc reports the current number of students and lessons.
type SizeFunc func() (students, lessons int)

// BookCollector reports the book size at scrape time.
type BookCollector struct {
	size     SizeFunc
	students *prometheus.Desc
	lessons  *prometheus.Desc
}

// NewBookCollector creates a collector backed by size.
func NewBookCollector(size SizeFunc) *BookCollector {
	return &BookCollector{
		size: size,
		students: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "book", "students"),
			"Students currently in the book", nil, nil),
		lessons: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "book", "lessons"),
			"Lessons currently in the book", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *BookCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.students
	ch <- c.lessons
}

// Collect implements prometheus.Collector.
func (c *BookCollector) Collect(ch chan<- prometheus.Metric) {
	students, lessons := c.size()
	ch <- prometheus.MustNewConstMetric(c.students, prometheus.GaugeValue, float64(students))
	ch <- prometheus.MustNewConstMetric(c.lessons, prometheus.GaugeValue, float64(lessons))
}
