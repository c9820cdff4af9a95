package requestutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSanitizeRequestID(t *testing.T) {
	if got := SanitizeRequestID("valid-123"); got != "valid-123" {
		t.Fatalf("expected pass-through, got %s", got)
	}
	if got := SanitizeRequestID("bad id"); got == "" || got == "bad id" {
		t.Fatalf("expected sanitized id, got %s", got)
	}
	if got := NewRequestID(); got == "" {
		t.Fatalf("expected generated request id")
	}
	useFallback.Store(true)
	defer useFallback.Store(false)
	if got := NewRequestID(); got == "" {
		t.Fatalf("expected fallback request id when RNG fails")
	}
}

func TestRequestID(t *testing.T) {
	if RequestID(nil) != "" {
		t.Fatalf("expected empty id for nil request")
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "from-header")
	if got := RequestID(req); got != "from-header" {
		t.Fatalf("expected header fallback, got %s", got)
	}
	req = req.WithContext(WithRequestID(req.Context(), "from-ctx"))
	if got := RequestID(req); got != "from-ctx" {
		t.Fatalf("expected context id, got %s", got)
	}
}

func TestClientIP(t *testing.T) {
	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	if got := ClientIP(req); got != "1.2.3.4" {
		t.Fatalf("expected first forwarded address, got %s", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:1234"
	if got := ClientIP(req); got != "9.9.9.9:1234" {
		t.Fatalf("expected remote addr fallback, got %s", got)
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}
	cases := []struct {
		body    string
		wantErr string
	}{
		{`{"name":"blues","extra":1}`, ""},
		{``, "empty"},
		{`{"name":`, "invalid JSON"},
		{`{"name":"a"}{"name":"b"}`, "single JSON object"},
		{`{"name":"` + strings.Repeat("x", MaxBodyBytes) + `"}`, "exceeds"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
		var p payload
		err := DecodeJSON(httptest.NewRecorder(), req, &p)
		if tc.wantErr == "" {
			if err != nil || p.Name != "blues" {
				t.Fatalf("expected decode success, got %v %+v", err, p)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
			t.Fatalf("body %.20q: expected error containing %q, got %v", tc.body, tc.wantErr, err)
		}
	}
}
