package translator

import (
	"context"
	"fmt"
	"time"

	translate "cloud.google.com/go/translate"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleService uses Google Cloud Translation instead of a language model.
type GoogleService struct {
	credentials string
	log         *zap.Logger
}

func NewGoogleService(cfg ServiceConfig, log *zap.Logger) *GoogleService {
	if log == nil {
		log = zap.NewNop()
	}
	return &GoogleService{credentials: cfg.Credentials, log: log.Named("google")}
}

func (s *GoogleService) Name() string {
	return "google"
}

func (s *GoogleService) clientOptions() []option.ClientOption {
	var opts []option.ClientOption
	if s.credentials != "" {
		opts = append(opts, option.WithCredentialsFile(s.credentials))
	}
	return opts
}

func (s *GoogleService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	targetLangTag, err := language.Parse(req.TargetLang)
	if err != nil {
		result.Error = fmt.Sprintf("invalid target language: %v", err)
		return result, fmt.Errorf("invalid target language: %w", err)
	}

	client, err := translate.NewClient(ctx, s.clientOptions()...)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create client: %v", err)
		return result, fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	s.log.Debug("translating", zap.String("target_lang", targetLangTag.String()))

	translations, err := client.Translate(ctx, []string{req.Text}, targetLangTag, &translate.Options{
		Format: translate.Text,
	})
	if err != nil {
		result.Error = fmt.Sprintf("translation failed: %v", err)
		return result, fmt.Errorf("translation failed: %w", err)
	}

	if len(translations) == 0 {
		result.Error = "no translation returned"
		return result, fmt.Errorf("no translation returned")
	}

	result.TranslatedText = translations[0].Text
	return result, nil
}

func (s *GoogleService) IsAvailable(ctx context.Context) error {
	client, err := translate.NewClient(ctx, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("Google Translate not available: %w", err)
	}
	return client.Close()
}
