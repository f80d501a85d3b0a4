package handlers

import (
	"fmt"
	"net/http"

	"talentrank/internal/http/metrics"
)

type MetricsHandler struct {
	collector *metrics.Collector
}

func NewMetricsHandler(collector *metrics.Collector) *MetricsHandler {
	return &MetricsHandler{collector: collector}
}

func (h *MetricsHandler) Get(w http.ResponseWriter, _ *http.Request) {
	var snapshot metrics.Snapshot
	if h.collector != nil {
		snapshot = h.collector.Snapshot()
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_, _ = fmt.Fprintf(w, "# HELP talentrank_requests_total Total number of HTTP requests.\n")
	_, _ = fmt.Fprintf(w, "# TYPE talentrank_requests_total counter\n")
	_, _ = fmt.Fprintf(w, "talentrank_requests_total %d\n", snapshot.Requests)
	_, _ = fmt.Fprintf(w, "# HELP talentrank_errors_total Total number of 5xx HTTP responses.\n")
	_, _ = fmt.Fprintf(w, "# TYPE talentrank_errors_total counter\n")
	_, _ = fmt.Fprintf(w, "talentrank_errors_total %d\n", snapshot.Errors)
	_, _ = fmt.Fprintf(w, "# HELP talentrank_rankings_total Total number of completed ranking runs.\n")
	_, _ = fmt.Fprintf(w, "# TYPE talentrank_rankings_total counter\n")
	_, _ = fmt.Fprintf(w, "talentrank_rankings_total %d\n", snapshot.Rankings)
	_, _ = fmt.Fprintf(w, "# HELP talentrank_imports_total Total number of completed CSV imports.\n")
	_, _ = fmt.Fprintf(w, "# TYPE talentrank_imports_total counter\n")
	_, _ = fmt.Fprintf(w, "talentrank_imports_total %d\n", snapshot.Imports)
}
