package orchestrator

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/valpere/quicktran/internal/segmenter"
	"github.com/valpere/quicktran/internal/translator"
)

const (
	DefaultDelay     = 500 * time.Millisecond
	DefaultFastDelay = 100 * time.Millisecond
)

// Translator translates one piece of text.
type Translator interface {
	Translate(ctx context.Context, req translator.TranslateRequest) (*translator.ServiceResult, error)
}

// TranslatorFunc adapts a plain function to Translator.
type TranslatorFunc func(ctx context.Context, text, targetLang string) (string, error)

func (f TranslatorFunc) Translate(ctx context.Context, req translator.TranslateRequest) (*translator.ServiceResult, error) {
	text, err := f(ctx, req.Text, req.TargetLang)
	if err != nil {
		return &translator.ServiceResult{Error: err.Error()}, err
	}
	return &translator.ServiceResult{TranslatedText: text}, nil
}

type OrchestratorConfig struct {
	Threshold        int
	MaxSegmentLength int
	Delay            time.Duration
	FastDelay        time.Duration
	Fast             bool
	Newlines         segmenter.NewlineCounting
}

type OrchestratorResult struct {
	Text     string
	Segments int
	Failed   int
	Latency  time.Duration
}

// Orchestrator translates short text in one call and long text segment by
// segment, strictly in order.
type Orchestrator struct {
	translator Translator
	config     OrchestratorConfig
	log        *zap.Logger
	sleep      func(time.Duration)
}

func New(t Translator, config OrchestratorConfig, log *zap.Logger) (*Orchestrator, error) {
	if config.MaxSegmentLength <= 0 {
		return nil, fmt.Errorf("invalid orchestrator config: %w", segmenter.ErrInvalidMaxLength)
	}
	if config.Delay <= 0 {
		config.Delay = DefaultDelay
	}
	if config.FastDelay <= 0 {
		config.FastDelay = DefaultFastDelay
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		translator: t,
		config:     config,
		log:        log.Named("orchestrator"),
		sleep:      time.Sleep,
	}, nil
}

// pause is the wait between two segment requests.
func (o *Orchestrator) pause() time.Duration {
	if o.config.Fast {
		return o.config.FastDelay
	}
	return o.config.Delay
}

// Translate returns the translation of text into targetLang.
//
// Errors are returned only for short text. For long text a failed segment is
// replaced by an error marker and the remaining segments are still
// translated.
func (o *Orchestrator) Translate(ctx context.Context, text, targetLang string) (*OrchestratorResult, error) {
	start := time.Now()
	result := &OrchestratorResult{}
	defer func() { result.Latency = time.Since(start) }()

	if !segmenter.IsLongWith(text, o.config.Threshold, o.config.Newlines) {
		result.Segments = 1
		translated, err := o.translateOne(ctx, text, targetLang)
		if err != nil {
			return nil, err
		}
		result.Text = translated
		return result, nil
	}

	segments, err := segmenter.Segment(text, o.config.MaxSegmentLength)
	if err != nil {
		return nil, err
	}
	result.Segments = len(segments)

	o.log.Debug("translating long text",
		zap.Int("segments", len(segments)),
		zap.String("target_lang", targetLang),
	)

	translated := make([]string, 0, len(segments))
	for i, seg := range segments {
		out, err := o.translateOne(ctx, seg, targetLang)
		if err != nil {
			o.log.Warn("segment translation failed", zap.Int("segment", i), zap.Error(err))
			out = ErrorMarker(err)
			result.Failed++
		}
		translated = append(translated, out)

		if i < len(segments)-1 {
			o.sleep(o.pause())
		}
	}

	result.Text = segmenter.Join(translated, text)
	return result, nil
}

func (o *Orchestrator) translateOne(ctx context.Context, text, targetLang string) (string, error) {
	res, err := o.translator.Translate(ctx, translator.TranslateRequest{Text: text, TargetLang: targetLang})
	if err != nil {
		return "", err
	}
	if res == nil {
		return "", fmt.Errorf("translator returned no result")
	}
	if res.Error != "" {
		return "", fmt.Errorf("%s: %s", res.ServiceName, res.Error)
	}
	return res.TranslatedText, nil
}

// ErrorMarker is the text that stands in for a segment that failed.
func ErrorMarker(err error) string {
	return fmt.Sprintf("[Translation error: %v]", err)
}
