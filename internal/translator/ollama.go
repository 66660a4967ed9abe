package translator

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/valpere/quicktran/internal/postprocess"
)

const (
	DefaultOllamaURL   = "http://localhost:11434/api/chat"
	DefaultOllamaModel = "qwen2.5:7b"
)

// OllamaService posts chat requests to an Ollama server and reads the
// streamed, line-delimited JSON reply.
type OllamaService struct {
	endpoint  string
	apiKey    string
	model     string
	maxTokens int
	client    *http.Client
	log       *zap.Logger
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model     string          `json:"model"`
	Messages  []ollamaMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

func NewOllamaService(cfg ServiceConfig, log *zap.Logger) *OllamaService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOllamaURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultOllamaModel
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
	return &OllamaService{
		endpoint:  cfg.BaseURL,
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		client:    &http.Client{Timeout: cfg.Timeout},
		log:       log.Named("ollama"),
	}
}

func (s *OllamaService) Name() string {
	return "ollama"
}

func (s *OllamaService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name(), Model: s.model}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	chatReq := ollamaChatRequest{
		Model: s.model,
		Messages: []ollamaMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserPrompt(req.Text, req.TargetLang)},
		},
		MaxTokens: s.maxTokens,
	}

	jsonData, err := json.Marshal(chatReq)
	if err != nil {
		result.Error = fmt.Sprintf("failed to marshal request: %v", err)
		return result, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		result.Error = fmt.Sprintf("failed to create request: %v", err)
		return result, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	s.authorize(httpReq)

	s.log.Debug("sending chat request", zap.String("url", s.endpoint), zap.String("model", s.model))

	resp, err := s.client.Do(httpReq)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		result.Error = fmt.Sprintf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		return result, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	content, err := s.readStream(resp.Body)
	if err != nil {
		result.Error = fmt.Sprintf("failed to read response: %v", err)
		return result, err
	}

	result.TranslatedText = postprocess.Clean(content)
	return result, nil
}

// readStream concatenates message.content over every JSON line of r.
// Lines that are not valid JSON are skipped.
func (s *OllamaService) readStream(r io.Reader) (string, error) {
	var sb strings.Builder

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !gjson.Valid(line) {
			s.log.Debug("skipping unparsable stream line", zap.String("line", line))
			continue
		}
		if content := gjson.Get(line, "message.content"); content.Exists() {
			sb.WriteString(content.String())
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (s *OllamaService) IsAvailable(ctx context.Context) error {
	tagsURL, err := s.tagsURL()
	if err != nil {
		return fmt.Errorf("invalid Ollama URL: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tagsURL, nil)
	if err != nil {
		return fmt.Errorf("invalid Ollama URL: %w", err)
	}
	s.authorize(req)
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("Ollama not available: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Ollama returned status %d", resp.StatusCode)
	}
	return nil
}

// authorize adds the bearer token for servers behind an authenticating proxy.
func (s *OllamaService) authorize(req *http.Request) {
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}
}

// tagsURL points at /api/tags on the host of the chat endpoint.
func (s *OllamaService) tagsURL() (string, error) {
	u, err := url.Parse(s.endpoint)
	if err != nil {
		return "", err
	}
	u.Path = "/api/tags"
	u.RawQuery = ""
	return u.String(), nil
}
