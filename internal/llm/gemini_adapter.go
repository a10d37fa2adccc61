package llm

import (
	"context"
	"errors"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/ternarybob/codescribe/internal/common"
	"github.com/ternarybob/codescribe/internal/tokens"
)

// GeminiAdapter binds the Adapter contract to Google's Gemini models. It is
// typically configured as the SECONDARY quality in the adapter chain and is
// the only adapter wired to produce embeddings, since the Claude family
// exposes no embedding endpoint.
type GeminiAdapter struct {
	config         *common.GeminiConfig
	embeddingModel string
	logger         arbor.ILogger
	client         *genai.Client
	limiter        *rate.Limiter
}

// NewGeminiAdapter constructs a Gemini adapter. ctx is only used to establish
// the underlying client connection.
func NewGeminiAdapter(ctx context.Context, config *common.GeminiConfig, embeddingModel string, requestsPerSecond float64, logger arbor.ILogger) (*GeminiAdapter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &GeminiAdapter{
		config:         config,
		embeddingModel: embeddingModel,
		logger:         logger,
		client:         client,
		limiter:        rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}, nil
}

func (a *GeminiAdapter) Name() string { return "gemini:" + a.config.Model }

func (a *GeminiAdapter) AvailableQualities() []Quality { return []Quality{QualitySecondary} }

func (a *GeminiAdapter) NeedsForcedShutdown() bool { return false }

func (a *GeminiAdapter) Close() error { return nil }

func (a *GeminiAdapter) Complete(ctx context.Context, prompt string, opts CompletionOptions) InvocationResult {
	if err := a.limiter.Wait(ctx); err != nil {
		return InvocationResult{Status: StatusErrored, Err: err}
	}

	timeout := time.Duration(a.config.TimeoutSecs) * time.Second
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{}
	if opts.Temperature > 0 {
		genConfig.Temperature = genai.Ptr(opts.Temperature)
	}
	if opts.SystemInstruction != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(opts.SystemInstruction, genai.RoleUser)
	}

	resp, err := a.client.Models.GenerateContent(callCtx, a.config.Model, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}, genConfig)
	if err != nil {
		return a.classifyError(err, prompt)
	}

	text := resp.Text()
	if text == "" {
		return InvocationResult{Status: StatusInvalid, Err: errors.New("empty response content")}
	}

	result := InvocationResult{Status: StatusCompleted, Generated: text}
	if resp.UsageMetadata != nil {
		result.TokenCounts = &TokenCounts{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}
	return result
}

func (a *GeminiAdapter) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, nil
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return nil, nil
	}

	resp, err := a.client.Models.EmbedContent(ctx, a.embeddingModel, []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}, nil)
	if err != nil {
		a.logger.Warn().Err(err).Msg("embedding call failed, returning null vector")
		return nil, nil
	}
	if len(resp.Embeddings) == 0 {
		return nil, nil
	}
	return resp.Embeddings[0].Values, nil
}

// classifyError maps Gemini API errors into the Status taxonomy from
// spec.md §4.4. A 400 with a message is treated as EXCEEDED (Gemini reports
// oversize requests as a generic bad-request, not a dedicated status code);
// PromptTokens is estimated since a rejected request carries no usage
// metadata, and ModelLimit is the model's actual context window rather than
// a hardcoded zero, so tokens.CropRatio can compute a real crop instead of
// always flooring at its minimum ratio.
func (a *GeminiAdapter) classifyError(err error, prompt string) InvocationResult {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429, 503:
			return InvocationResult{Status: StatusOverloaded, Err: err}
		case 400:
			if len(apiErr.Message) > 0 {
				return InvocationResult{
					Status: StatusExceeded,
					Err:    err,
					TokenCounts: &TokenCounts{
						PromptTokens: tokens.Estimate(prompt),
						ModelLimit:   a.config.ContextWindowTokens,
					},
				}
			}
		}
	}
	return InvocationResult{Status: StatusErrored, Err: err}
}
