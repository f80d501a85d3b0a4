package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Limit is a fixed-window quota: at most Max calls per Window for one key.
type Limit struct {
	Max    int
	Window time.Duration
}

// Quotas for the operations that rebuild per-position state. Both are keyed
// by position and caller, so one busy position cannot starve another.
var (
	ImportLimit = Limit{Max: 3, Window: time.Minute}
	RankLimit   = Limit{Max: 3, Window: time.Minute}
)

type Limiter interface {
	Allow(key string, limit Limit) bool
}

func ImportKey(positionID, ip string) string {
	return "import:" + positionID + ":" + ip
}

func RankKey(positionID, ip string) string {
	return "rank:" + positionID + ":" + ip
}

// MemoryLimiter counts fixed windows per key in process memory. It is the
// default when no redis is configured; counts reset on restart.
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*countWindow
}

type countWindow struct {
	hits  int
	until time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{windows: make(map[string]*countWindow)}
}

func (l *MemoryLimiter) Allow(key string, limit Limit) bool {
	if limit.Max <= 0 || limit.Window <= 0 {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	window, ok := l.windows[key]
	if !ok || now.After(window.until) {
		l.windows[key] = &countWindow{hits: 1, until: now.Add(limit.Window)}
		return true
	}
	if window.hits >= limit.Max {
		return false
	}
	window.hits++
	return true
}

// ClientIP resolves the caller address used in limiter keys. Behind a proxy
// chain X-Forwarded-For lists every hop; the first entry is the client.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
