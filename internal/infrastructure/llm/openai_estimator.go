package llm

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"bathroom_quote_saver/internal/usecase/interfaces"

	openai "github.com/sashabaranov/go-openai"
)

var ErrMissingOpenAIAPIKey = errors.New("missing OPENAI_API_KEY")
var ErrEstimatorNotConfigured = errors.New("cost estimator not configured")

const estimatorSystemMessage = `You are an expert bathroom renovation cost estimator with extensive knowledge of construction costs, labor rates, and material pricing.

Your role is to provide accurate cost estimates for bathroom renovations based on:
- Room dimensions and square footage
- Selected renovation components (demolition, framing, plumbing, electrical, plastering, waterproofing, tiling, fit off)
- Regional pricing variations
- Current market rates for materials and labor

Provide detailed breakdowns with cost ranges and explain your reasoning. Always consider:
- Complexity factors that might affect pricing
- Quality levels of materials and finishes
- Labor intensity of each component
- Potential complications or additional work needed

Format your response as JSON with detailed cost breakdowns.`

// OpenAIEstimator answers estimation prompts with a chat completion.
// In mock mode Complete reports the estimator as unconfigured so the
// caller's deterministic fallback pricing kicks in; quotes still flow
// without an API key.
type OpenAIEstimator struct {
	client   *openai.Client
	model    string
	mockMode bool
}

var _ interfaces.ICostEstimator = (*OpenAIEstimator)(nil)

func NewOpenAIEstimator(apiKey, model string) (*OpenAIEstimator, error) {
	if model == "" {
		model = openai.GPT4oMini
	}

	if isEstimatorMockEnabled() {
		log.Printf("[estimator][gateway] mock mode enabled")
		return &OpenAIEstimator{model: model, mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[estimator][gateway] missing OPENAI_API_KEY")
		return nil, ErrMissingOpenAIAPIKey
	}

	log.Printf("[estimator][gateway] OpenAI client initialized model=%s", model)
	return &OpenAIEstimator{client: openai.NewClient(apiKey), model: model}, nil
}

func (e *OpenAIEstimator) Complete(ctx context.Context, prompt string) (string, error) {
	if e != nil && e.mockMode {
		log.Printf("[estimator][gateway] mock completion prompt_len=%d", len(prompt))
		return "", ErrEstimatorNotConfigured
	}

	if e == nil || e.client == nil {
		log.Printf("[estimator][gateway] estimator not configured")
		return "", ErrEstimatorNotConfigured
	}
	log.Printf("[estimator][gateway] completion start prompt_len=%d", len(prompt))

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: estimatorSystemMessage},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.Printf("[estimator][gateway] completion failed err=%v", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		log.Printf("[estimator][gateway] completion returned no choices")
		return "", errors.New("no completion choices returned")
	}

	content := resp.Choices[0].Message.Content
	log.Printf("[estimator][gateway] completion success response_len=%d", len(content))
	return content, nil
}

func isEstimatorMockEnabled() bool {
	for _, key := range []string{"COST_ESTIMATOR_MOCK", "OPENAI_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
