package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"hirepilot/internal/apperr"
	"hirepilot/internal/config"
)

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatMessage is one entry in the ordered sequence sent per request. There
// is no conversation memory between calls.
type ChatMessage struct {
	Role    string
	Content string
}

// ChatOptions override the configured defaults for a single call.
type ChatOptions struct {
	Model           string
	Temperature     *float32
	MaxOutputTokens int32
}

type LLMService interface {
	Chat(ctx context.Context, messages []ChatMessage, opts *ChatOptions) (string, error)
}

type llmService struct {
	client   *genai.Client
	defaults config.LLMConfig
}

func NewLLMService(cfg config.LLMConfig) (LLMService, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create llm client: %w", err)
	}

	return &llmService{
		client:   client,
		defaults: cfg,
	}, nil
}

// Chat implements LLMService. System messages become the system instruction;
// the rest are sent in order as user content. Any provider failure comes back
// as a single normalized upstream error so callers never see provider
// exception shapes. One-shot call, no retries.
func (l *llmService) Chat(ctx context.Context, messages []ChatMessage, opts *ChatOptions) (string, error) {
	if opts == nil {
		opts = &ChatOptions{}
	}

	model := opts.Model
	if model == "" {
		model = l.defaults.Model
	}

	temperature := l.defaults.Temperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}

	maxTokens := opts.MaxOutputTokens
	if maxTokens == 0 {
		maxTokens = l.defaults.MaxOutputTokens
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: maxTokens,
	}

	var contents []*genai.Content
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			genConfig.SystemInstruction = genai.NewContentFromText(msg.Content, genai.RoleUser)
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}

	resp, err := l.client.Models.GenerateContent(ctx, model, contents, genConfig)
	if err != nil {
		return "", apperr.Wrap(apperr.CodeUpstreamError,
			"extraction service error: "+err.Error(), err)
	}

	if resp == nil {
		return "", nil
	}

	// An empty completion is not an error; the caller decides what to do
	// with an empty reply.
	return resp.Text(), nil
}
