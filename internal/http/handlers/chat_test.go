package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/blakethaselberger/StarsOps-sub001/internal/chat"
	"github.com/blakethaselberger/StarsOps-sub001/internal/teststubs"
	"github.com/blakethaselberger/StarsOps-sub001/internal/testutil"
)

func chatHandler(completer *teststubs.StubCompleter, credential string) *Handler {
	svc := chat.NewService(completer, nil, chat.Options{
		Provider:   "openai",
		Credential: credential,
		Model:      "gpt-4o-mini",
		MaxTokens:  1000,
	}, nil, nil)
	return NewHandler(Deps{Chat: svc})
}

const validChatBody = `{"messages":[{"role":"user","content":"Who is our best defenseman?"}]}`

func TestChatReturnsReply(t *testing.T) {
	stub := &teststubs.StubCompleter{Reply: chat.Completion{
		Content: "Colton Parayko.",
		Usage:   chat.Usage{PromptTokens: 120, CompletionTokens: 4, TotalTokens: 124},
	}}
	h := chatHandler(stub, "sk-test")

	rr := testutil.ServeJSON(http.HandlerFunc(h.Chat), http.MethodPost, "/api/chat", validChatBody)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var reply chat.Reply
	testutil.DecodeJSON(t, rr, &reply)
	if reply.Message != "Colton Parayko." {
		t.Fatalf("unexpected reply %+v", reply)
	}
	if reply.Usage.TotalTokens != 124 {
		t.Fatalf("expected usage passthrough, got %+v", reply.Usage)
	}
	if stub.Calls.Load() != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", stub.Calls.Load())
	}
}

func TestChatMissingCredentialSkipsBody(t *testing.T) {
	stub := &teststubs.StubCompleter{}
	h := chatHandler(stub, "")

	rr := testutil.ServeJSON(http.HandlerFunc(h.Chat), http.MethodPost, "/api/chat", "not json at all")
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if !strings.Contains(body["error"], "not configured") {
		t.Fatalf("expected configuration message, got %q", body["error"])
	}
	if stub.Calls.Load() != 0 {
		t.Fatalf("expected no upstream call")
	}
}

func TestChatNilServiceIsConfigurationError(t *testing.T) {
	h := NewHandler(Deps{})
	rr := testutil.ServeJSON(http.HandlerFunc(h.Chat), http.MethodPost, "/api/chat", validChatBody)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
}

func TestChatBadBody(t *testing.T) {
	stub := &teststubs.StubCompleter{}
	h := chatHandler(stub, "sk-test")

	for _, body := range []string{"", "{", `{"messages":[]}`, `{"messages":[{"role":"robot","content":"hi"}]}`} {
		rr := testutil.ServeJSON(http.HandlerFunc(h.Chat), http.MethodPost, "/api/chat", body)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	}
	if stub.Calls.Load() != 0 {
		t.Fatalf("expected invalid requests to stay local, got %d calls", stub.Calls.Load())
	}
}

func TestChatUpstreamErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "quota", err: errors.New("429: " + chat.IndicatorQuota), want: http.StatusTooManyRequests},
		{name: "auth", err: errors.New("401: " + chat.IndicatorInvalidKey), want: http.StatusUnauthorized},
		{name: "other", err: errors.New("connection reset"), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := chatHandler(&teststubs.StubCompleter{Err: tc.err}, "sk-test")
			rr := testutil.ServeJSON(http.HandlerFunc(h.Chat), http.MethodPost, "/api/chat", validChatBody)
			testutil.AssertStatus(t, rr, tc.want)
			if strings.Contains(rr.Body.String(), tc.err.Error()) {
				t.Fatalf("upstream error text leaked: %s", rr.Body.String())
			}
		})
	}
}

func TestChatEmptyUpstreamReply(t *testing.T) {
	h := chatHandler(&teststubs.StubCompleter{}, "sk-test")

	rr := testutil.ServeJSON(http.HandlerFunc(h.Chat), http.MethodPost, "/api/chat", validChatBody)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != (&chat.Error{Kind: chat.KindEmptyResponse}).Message() {
		t.Fatalf("unexpected message %q", body["error"])
	}
}

func TestChatRejectsGet(t *testing.T) {
	h := chatHandler(&teststubs.StubCompleter{}, "sk-test")
	rr := testutil.Serve(http.HandlerFunc(h.Chat), http.MethodGet, "/api/chat", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}
