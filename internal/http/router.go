package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"talentrank/internal/http/handlers"
	"talentrank/internal/http/metrics"
	httpmw "talentrank/internal/http/middleware"
)

type RouterDependencies struct {
	PositionHandler  *handlers.PositionHandler
	CandidateHandler *handlers.CandidateHandler
	MetricsHandler   *handlers.MetricsHandler
	Metrics          *metrics.Collector
	Logger           *slog.Logger
	RequestTimeout   time.Duration
	MaxBodyBytes     int64
}

type Router struct {
	deps RouterDependencies
}

func NewRouter(deps RouterDependencies) http.Handler {
	if deps.MaxBodyBytes <= 0 {
		deps.MaxBodyBytes = 1 << 20
	}
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging(r.deps.Logger),
		httpmw.BodyLimit(r.deps.MaxBodyBytes),
		httpmw.Recover,
		httpmw.Metrics(r.deps.Metrics),
		httpmw.Timeout(r.deps.RequestTimeout),
	)
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return
		case req.Method == http.MethodPost && path == "/positions":
			r.deps.PositionHandler.Create(w, req)
			return
		case req.Method == http.MethodGet && path == "/positions":
			r.deps.PositionHandler.List(w, req)
			return
		case req.Method == http.MethodPatch && strings.HasPrefix(path, "/positions/") && strings.HasSuffix(path, "/status"):
			r.deps.PositionHandler.UpdateStatus(w, req)
			return
		case req.Method == http.MethodPost && strings.HasPrefix(path, "/positions/") && strings.HasSuffix(path, "/candidates/import"):
			r.deps.CandidateHandler.Import(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/positions/") && strings.HasSuffix(path, "/candidates"):
			r.deps.CandidateHandler.ListByPosition(w, req)
			return
		case req.Method == http.MethodPost && strings.HasPrefix(path, "/positions/") && strings.HasSuffix(path, "/rank"):
			r.deps.CandidateHandler.Rank(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/positions/"):
			r.deps.PositionHandler.Get(w, req)
			return
		case req.Method == http.MethodDelete && strings.HasPrefix(path, "/candidates/"):
			r.deps.CandidateHandler.Delete(w, req)
			return
		}

		http.NotFound(w, req)
	})
}
