package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/blakethaselberger/StarsOps-sub001/internal/http/requestutil"
	"github.com/blakethaselberger/StarsOps-sub001/internal/metrics"
	"github.com/blakethaselberger/StarsOps-sub001/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestIDAndLogs(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := requestutil.RequestID(r); got == "" {
			t.Fatalf("expected request id in context")
		}
		w.WriteHeader(http.StatusTeapot)
	})

	rr := testutil.Serve(LoggingMiddleware(logger, metrics.NewRecorder(), next), http.MethodGet, "/api/players?position=Defense", nil)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if rr.Header().Get(requestutil.HeaderRequestID) == "" {
		t.Fatalf("expected response request id header")
	}
	out := buf.String()
	if !strings.Contains(out, "request complete") || !strings.Contains(out, "status_code=418") {
		t.Fatalf("expected completion log, got %q", out)
	}
	if !strings.Contains(out, "position=Defense") {
		t.Fatalf("expected query in log, got %q", out)
	}
}

func TestLoggingMiddlewareKeepsValidIncomingID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestutil.RequestID(r)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestutil.HeaderRequestID, "abc-123")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, nil, next), req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if seen != "abc-123" || rr.Header().Get(requestutil.HeaderRequestID) != "abc-123" {
		t.Fatalf("expected incoming id to pass through, got %q", seen)
	}
}

func TestLoggingMiddlewareNilLoggerUsesDefault(t *testing.T) {
	h := LoggingMiddleware(nil, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/health", nil), http.StatusOK)
}

func TestRecoverReturnsJSON500(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := testutil.Serve(LoggingMiddleware(logger, nil, Recover(panicky)), http.MethodGet, "/api/chat", nil)

	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %s", ct)
	}
	if !strings.Contains(buf.String(), "handler panic") {
		t.Fatalf("expected panic logged, got %q", buf.String())
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "/api/players", want: "/api/players"},
		{in: "/api/players/rthomas", want: "/api/players/:id"},
		{in: "/api/players/leagues", want: "/api/players/leagues"},
		{in: "/api/players/suggest", want: "/api/players/suggest"},
		{in: "/health", want: "/health"},
		{in: "/api/chat", want: "/api/chat"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.in); got != tt.want {
			t.Fatalf("normalizePath(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func BenchmarkLoggingMiddleware(b *testing.B) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	rec := metrics.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Microsecond)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/players", nil)
	rr := httptest.NewRecorder()

	handler := LoggingMiddleware(logger, rec, next)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		handler.ServeHTTP(rr, req)
	}
}
