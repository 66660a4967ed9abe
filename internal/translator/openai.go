package translator

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/valpere/quicktran/internal/postprocess"
)

const (
	DefaultOpenAIURL   = "https://api.openai.com/v1/chat/completions"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// OpenAIService talks to any OpenAI-compatible chat completion endpoint.
type OpenAIService struct {
	client    *openai.Client
	apiKey    string
	model     string
	maxTokens int
	log       *zap.Logger
}

func NewOpenAIService(cfg ServiceConfig, log *zap.Logger) *OpenAIService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenAIURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = clientBaseURL(cfg.BaseURL)
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &OpenAIService{
		client:    openai.NewClientWithConfig(clientCfg),
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       log.Named("openai"),
	}
}

// clientBaseURL turns a full chat completions endpoint into the base URL the
// client appends its own paths to.
func clientBaseURL(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	endpoint = strings.TrimSuffix(endpoint, "/chat/completions")
	return strings.TrimSuffix(endpoint, "/")
}

func (s *OpenAIService) Name() string {
	return "openai"
}

func (s *OpenAIService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name(), Model: s.model}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	if s.apiKey == "" {
		result.Error = "OpenAI API key required"
		return result, fmt.Errorf("OpenAI API key required")
	}

	chatReq := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildUserPrompt(req.Text, req.TargetLang)},
		},
		MaxTokens: s.maxTokens,
	}

	s.log.Debug("sending chat completion",
		zap.String("model", s.model),
		zap.String("target_lang", req.TargetLang),
		zap.Int("text_runes", len([]rune(req.Text))),
	)

	resp, err := s.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		result.Error = "empty response from API"
		return result, fmt.Errorf("empty response from API")
	}

	s.log.Debug("chat completion done",
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
	)

	result.TranslatedText = postprocess.Clean(resp.Choices[0].Message.Content)
	return result, nil
}

func (s *OpenAIService) IsAvailable(ctx context.Context) error {
	if s.apiKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	if _, err := s.client.ListModels(ctx); err != nil {
		return fmt.Errorf("OpenAI not available: %w", err)
	}
	return nil
}
