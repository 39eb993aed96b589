package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/quizforge/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with
// timeout, logging, and retry middleware:
//
//	caller → retry → logging → timeout → base
//
// so every attempt is bounded by the per-attempt deadline and logged
// individually.
func NewProvider(ctx context.Context, cfg Config, requestLog store.RequestLog) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown model provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	bounded := WithTimeout(base, cfg.Timeout)
	if requestLog != nil {
		bounded = WithLogging(bounded, cfg.Provider, requestLog)
	}
	return WithRetry(bounded, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from QUIZFORGE_* env vars,
// falling back to probing the standard provider key variables.
func NewProviderFromEnv(ctx context.Context, requestLog store.RequestLog) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, requestLog)
}
