package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMemoryLimiterDeniesOverQuota(t *testing.T) {
	limiter := NewMemoryLimiter()
	key := ImportKey("p1", "10.0.0.1")
	for i := 0; i < ImportLimit.Max; i++ {
		if !limiter.Allow(key, ImportLimit) {
			t.Fatalf("request %d denied within quota", i+1)
		}
	}
	if limiter.Allow(key, ImportLimit) {
		t.Fatal("request allowed over quota")
	}
}

func TestMemoryLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewMemoryLimiter()
	limit := Limit{Max: 1, Window: time.Minute}
	if !limiter.Allow(ImportKey("p1", "10.0.0.1"), limit) {
		t.Fatal("first key denied")
	}
	if !limiter.Allow(ImportKey("p2", "10.0.0.1"), limit) {
		t.Fatal("second position shares the first position's window")
	}
	if !limiter.Allow(RankKey("p1", "10.0.0.1"), limit) {
		t.Fatal("rank quota shares the import window")
	}
}

func TestMemoryLimiterWindowReset(t *testing.T) {
	limiter := NewMemoryLimiter()
	limit := Limit{Max: 1, Window: 10 * time.Millisecond}
	key := RankKey("p1", "10.0.0.1")
	if !limiter.Allow(key, limit) {
		t.Fatal("first request denied")
	}
	if limiter.Allow(key, limit) {
		t.Fatal("second request allowed in the same window")
	}
	time.Sleep(20 * time.Millisecond)
	if !limiter.Allow(key, limit) {
		t.Fatal("request denied after the window expired")
	}
}

func TestMemoryLimiterZeroQuotaDisablesThrottling(t *testing.T) {
	limiter := NewMemoryLimiter()
	if !limiter.Allow("any", Limit{}) {
		t.Fatal("zero quota must be a no-op, not a hard deny")
	}
}

func TestClientIPPrefersForwardedHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.1:5000"
	r.Header.Set("X-Forwarded-For", "203.0.113.9")
	if got := ClientIP(r); got != "203.0.113.9" {
		t.Fatalf("ClientIP = %s, want 203.0.113.9", got)
	}
}

func TestClientIPTakesFirstForwardedHop(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.1:5000"
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.2, 10.0.0.3")
	if got := ClientIP(r); got != "203.0.113.9" {
		t.Fatalf("ClientIP = %s, want first hop 203.0.113.9", got)
	}
}

func TestClientIPStripsPort(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.1:5000"
	if got := ClientIP(r); got != "192.0.2.1" {
		t.Fatalf("ClientIP = %s, want 192.0.2.1", got)
	}
}
