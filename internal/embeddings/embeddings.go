// Package embeddings implements the Embedding Sub-Pipeline (C10): a
// single-call wrapper over an adapter's embed operation with cropping on
// oversize content.
package embeddings

import (
	"context"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/codescribe/internal/llm"
	"github.com/ternarybob/codescribe/internal/tokens"
)

// Pipeline wraps adapter.Embed with the cropping heuristic from C3.
type Pipeline struct {
	adapter llm.Adapter
	logger  arbor.ILogger
}

func New(adapter llm.Adapter, logger arbor.ILogger) *Pipeline {
	return &Pipeline{adapter: adapter, logger: logger}
}

// Embed produces a vector for content, or nil on any expected failure
// (empty content, adapter error, oversize content that can't be cropped
// usefully). filepathStr is used for logging only.
func (p *Pipeline) Embed(ctx context.Context, filepathStr, content string) []float32 {
	if content == "" {
		return nil
	}

	vector, err := p.adapter.Embed(ctx, content)
	if err == nil && vector != nil {
		return vector
	}
	if err != nil {
		p.logger.Warn().Err(err).Str("filepath", filepathStr).Msg("embedding call failed")
	}

	// A nil vector with no error may mean the adapter rejected the content
	// as oversize. Retry once against a cropped version before giving up.
	cropped := tokens.CropContent(content, 0.5)
	if cropped == "" {
		return nil
	}

	vector, err = p.adapter.Embed(ctx, cropped)
	if err != nil {
		p.logger.Warn().Err(err).Str("filepath", filepathStr).Msg("embedding call failed after cropping")
		return nil
	}
	return vector
}
