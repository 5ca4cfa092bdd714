package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type fakeCounter struct {
	counts  map[string]int64
	expires map[string]time.Duration
	err     error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (f *fakeCounter) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeCounter) Expire(_ context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	f.expires[key] = ttl
	return redis.NewBoolResult(true, nil)
}

func newRateLimitedRouter(counter RateCounter, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	fixed := func() time.Time { return time.Date(2024, 5, 1, 10, 15, 30, 0, time.UTC) }

	router := gin.New()
	router.Use(WriteRateLimitMiddleware(counter, limit, fixed))
	router.POST("/job", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/jobs", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestWriteRateLimit_RejectsOverLimit(t *testing.T) {
	counter := newFakeCounter()
	router := newRateLimitedRouter(counter, 2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/job", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status sequence %v", codes)
	}
	if ttl := counter.expires["rate:write:10.0.0.1:202405011015"]; ttl != time.Minute {
		t.Fatalf("expected one minute ttl got %s", ttl)
	}
}

func TestWriteRateLimit_IgnoresReads(t *testing.T) {
	counter := newFakeCounter()
	router := newRateLimitedRouter(counter, 0)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if len(counter.counts) != 0 {
		t.Fatal("reads must not be counted")
	}
}

func TestWriteRateLimit_FailsOpen(t *testing.T) {
	counter := newFakeCounter()
	counter.err = errors.New("dial tcp: connection refused")
	router := newRateLimitedRouter(counter, 1)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/job", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected request to pass when redis is down, got %d", w.Code)
	}
}

func TestCorrelationAndLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	router := gin.New()
	router.Use(CorrelationIDMiddleware(), SlogLoggerMiddleware(logger))
	router.GET("/user/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/abc", nil)
	req.Header.Set("X-Correlation-ID", "req-42")
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Correlation-ID"); got != "req-42" {
		t.Fatalf("expected correlation id echoed, got %q", got)
	}
	line := buf.String()
	for _, want := range []string{"level=WARN", "correlation_id=req-42", "path=/user/:id", "status=404"} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line %q missing %q", line, want)
		}
	}
}

func TestCorrelationID_Generated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CorrelationIDMiddleware())
	router.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, GetCorrelationID(c)) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Body.Len() != 36 || w.Header().Get("X-Correlation-ID") != w.Body.String() {
		t.Fatalf("expected generated uuid, got body=%q header=%q", w.Body.String(), w.Header().Get("X-Correlation-ID"))
	}
}
