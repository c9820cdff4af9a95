package server

import (
	"context"
	"log/slog"

	"github.com/blakethaselberger/StarsOps-sub001/internal/chat"
	"github.com/blakethaselberger/StarsOps-sub001/internal/config"
	"github.com/blakethaselberger/StarsOps-sub001/internal/logging"
	"github.com/blakethaselberger/StarsOps-sub001/internal/metrics"
	"github.com/blakethaselberger/StarsOps-sub001/internal/providers/gemini"
	"github.com/blakethaselberger/StarsOps-sub001/internal/providers/openai"
)

// buildChat always returns a service. Without a credential the service
// answers every turn with a configuration error.
func buildChat(ctx context.Context, cfg config.ChatConfig, prompts chat.PromptSource, logger *slog.Logger, recorder *metrics.Recorder) *chat.Service {
	opts := chat.Options{
		Provider:    cfg.Provider,
		Credential:  cfg.Credential(),
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}
	completer := selectCompleter(ctx, cfg, logger)
	if completer == nil {
		logging.Warn(logger, "chat disabled: no upstream credential", logging.FieldProvider, cfg.Provider)
	}
	return chat.NewService(completer, prompts, opts, logger, recorder)
}

func selectCompleter(ctx context.Context, cfg config.ChatConfig, logger *slog.Logger) chat.Completer {
	if cfg.Credential() == "" {
		return nil
	}
	switch cfg.Provider {
	case config.ChatProviderGemini:
		client, err := gemini.NewClient(ctx, gemini.Config{APIKey: cfg.GeminiAPIKey, Timeout: cfg.Timeout})
		if err != nil {
			logging.Error(logger, "gemini client setup failed", err)
			return nil
		}
		return client
	default:
		return openai.NewClient(openai.Config{
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
			Timeout: cfg.Timeout,
		})
	}
}

// buildPromptWatcher returns nil when no prompt file is configured or it cannot be loaded.
func buildPromptWatcher(cfg config.ChatConfig, logger *slog.Logger) *chat.PromptWatcher {
	if cfg.PromptFile == "" {
		return nil
	}
	w, err := chat.NewPromptWatcher(cfg.PromptFile, logger)
	if err != nil {
		logging.Error(logger, "prompt file unusable, using built-in prompt", err, logging.FieldFile, cfg.PromptFile)
		return nil
	}
	return w
}

func promptSource(w *chat.PromptWatcher) chat.PromptSource {
	if w == nil {
		return nil
	}
	return w
}
