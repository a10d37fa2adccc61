package llm

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/codescribe/internal/common"
)

// defaultRateLimit bounds outbound calls per adapter instance in requests
// per second, absent a more specific per-provider override.
const defaultRateLimit = 4.0

// BuildAdapterChain constructs the ordered adapter list the execution
// pipeline (C7) walks on fallback, starting with config.LLM.DefaultProvider
// and falling through to config.LLM.SecondaryProvider. Unknown provider
// names are a configuration error, not a runtime fallback target.
func BuildAdapterChain(ctx context.Context, config *common.Config, logger arbor.ILogger) ([]Adapter, error) {
	var chain []Adapter

	for _, name := range []string{config.LLM.DefaultProvider, config.LLM.SecondaryProvider} {
		if name == "" {
			continue
		}
		adapter, err := buildAdapter(ctx, name, config, logger)
		if err != nil {
			return nil, err
		}
		chain = append(chain, adapter)
	}

	if len(chain) == 0 {
		return nil, fmt.Errorf("no LLM providers configured")
	}
	return chain, nil
}

func buildAdapter(ctx context.Context, name string, config *common.Config, logger arbor.ILogger) (Adapter, error) {
	switch name {
	case "claude":
		return NewClaudeAdapter(&config.Claude, defaultRateLimit, logger), nil
	case "gemini":
		return NewGeminiAdapter(ctx, &config.Gemini, config.LLM.EmbeddingModel, defaultRateLimit, logger)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", name)
	}
}
