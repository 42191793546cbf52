package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "nbhd_http_requests_total", Help: "Total HTTP requests by method and status class"},
		[]string{"method", "status"},
	)
	CascadeDeletes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "nbhd_cascade_deletes_total", Help: "Total cascade deletions by root entity"},
		[]string{"entity"},
	)
	DeletedRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "nbhd_cascade_deleted_records_total", Help: "Records removed by cascades, by entity"},
		[]string{"entity"},
	)
)

func Register() {
	prometheus.MustRegister(HTTPRequests, CascadeDeletes, DeletedRecords)
}
