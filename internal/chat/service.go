package chat

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/blakethaselberger/StarsOps-sub001/internal/logging"
	"github.com/blakethaselberger/StarsOps-sub001/internal/metrics"
)

// OutcomeOK is the metric kind recorded for a successful turn.
const OutcomeOK = "ok"

// Options are the fixed upstream parameters applied to every turn.
type Options struct {
	Provider    string
	Credential  string
	Model       string
	MaxTokens   int
	Temperature float64
}

// Service completes one chat turn per call. It keeps no conversation state.
type Service struct {
	completer Completer
	prompts   PromptSource
	opts      Options
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// NewService wires a Completer with its prompt source. A nil prompt source uses DefaultPrompt.
func NewService(completer Completer, prompts PromptSource, opts Options, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if prompts == nil {
		prompts = StaticPrompt(DefaultPrompt())
	}
	return &Service{
		completer: completer,
		prompts:   prompts,
		opts:      opts,
		logger:    logger,
		metrics:   recorder,
	}
}

// CheckConfigured fails with a configuration error when no credential is set.
func (s *Service) CheckConfigured() error {
	if s == nil || s.completer == nil || strings.TrimSpace(s.opts.Credential) == "" {
		return &Error{Kind: KindConfiguration, Err: ErrMissingCredential}
	}
	return nil
}

// Preflight is CheckConfigured with the failure logged and counted. Handlers
// call it before reading the request body.
func (s *Service) Preflight(ctx context.Context) error {
	if err := s.CheckConfigured(); err != nil {
		return s.fail(logging.FromContext(ctx, s.logger), err)
	}
	return nil
}

// Validate rejects requests that cannot be forwarded.
func Validate(req Request) error {
	if len(req.Messages) == 0 {
		return invalidRequest("messages must not be empty")
	}
	for i, m := range req.Messages {
		if !m.Role.Valid() {
			return invalidRequest("messages[%d]: unknown role %q", i, m.Role)
		}
		if !m.Role.FromCaller() {
			return invalidRequest("messages[%d]: role %q is reserved", i, m.Role)
		}
	}
	return nil
}

// BuildMessages prepends the system message to the caller's history.
func BuildMessages(p Prompt, req Request) []Message {
	out := make([]Message, 0, len(req.Messages)+1)
	out = append(out, Message{Role: RoleSystem, Content: p.SystemMessage(req.Context)})
	return append(out, req.Messages...)
}

// Complete forwards one turn upstream. Every failure comes back as *Error and
// is logged once.
func (s *Service) Complete(ctx context.Context, req Request) (Reply, error) {
	if err := s.Preflight(ctx); err != nil {
		return Reply{}, err
	}
	logger := logging.FromContext(ctx, s.logger)
	if err := Validate(req); err != nil {
		return Reply{}, s.fail(logger, err)
	}

	start := time.Now()
	comp, err := s.completer.Complete(ctx, CompletionRequest{
		Model:       s.opts.Model,
		Messages:    BuildMessages(s.prompts.Prompt(), req),
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
	})
	s.metrics.RecordProviderAttempt(s.opts.Provider, time.Since(start), err)
	if err != nil {
		return Reply{}, s.fail(logger, err)
	}
	if strings.TrimSpace(comp.Content) == "" {
		return Reply{}, s.fail(logger, ErrEmptyResponse)
	}

	s.metrics.RecordChatOutcome(OutcomeOK)
	logging.Info(logger, "chat turn completed",
		logging.FieldProvider, s.opts.Provider,
		logging.FieldModel, s.opts.Model,
		"total_tokens", comp.Usage.TotalTokens,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return Reply{Message: comp.Content, Usage: comp.Usage}, nil
}

func (s *Service) fail(logger *slog.Logger, err error) *Error {
	ce := Classify(err)
	s.metrics.RecordChatOutcome(string(ce.Kind))
	logging.Error(logger, "chat turn failed", err,
		logging.FieldErrorKind, string(ce.Kind),
		logging.FieldProvider, s.opts.Provider,
	)
	return ce
}
