package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/kdduha/foto2latex/internal/config"
	"github.com/kdduha/foto2latex/internal/imaging"
	"github.com/kdduha/foto2latex/internal/metrics"
	"github.com/openai/openai-go/v3"
)

type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

type ErrorKind string

const (
	KindDecode ErrorKind = "decode_error"
	KindAPI    ErrorKind = "api_error"
)

// ExtractError is the failure side of an extraction. The caller shows it and keeps its current state.
type ExtractError struct {
	Kind ErrorKind
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of an extraction error, or "" for anything else.
func KindOf(err error) ErrorKind {
	var extractErr *ExtractError
	if errors.As(err, &extractErr) {
		return extractErr.Kind
	}
	return ""
}

type ExtractService struct {
	logger       *log.Logger
	openaiClient openai.Client
	modelName    string
	cache        Cache
}

func NewExtractService(logger *log.Logger, openaiClient openai.Client, cfg config.OpenAIConfig) *ExtractService {
	return &ExtractService{
		logger:       logger,
		openaiClient: openaiClient,
		modelName:    cfg.Model,
	}
}

func (e *ExtractService) SetCacheClient(cache Cache) {
	e.cache = cache
}

// Extract sends the image to the model once and returns the trimmed reply.
// An empty string with a nil error means the model returned no content.
// Failures are returned as *ExtractError; nothing is retried.
func (e *ExtractService) Extract(ctx context.Context, data []byte, format string) (string, error) {
	start := time.Now()

	payload, err := imaging.Normalize(data, format)
	if err != nil {
		e.observe(string(KindDecode), start)
		return "", &ExtractError{Kind: KindDecode, Err: err}
	}

	key := getCacheKey(e.modelName, payload)
	if e.cache != nil {
		cached, found, err := e.cache.Get(ctx, key)
		if err != nil {
			e.logger.Printf("cache get error: %v\n", err)
		}
		if found {
			e.logger.Println("served from cache")
			e.observe("cache_hit", start)
			return cached, nil
		}
	}

	e.logger.Printf("sending %d byte payload to %s\n", len(payload), e.modelName)
	resp, err := e.openaiClient.Chat.Completions.New(ctx, e.buildOpenAIReq(payload))
	if err != nil {
		e.observe(string(KindAPI), start)
		return "", &ExtractError{Kind: KindAPI, Err: fmt.Errorf("OpenAI client error: %w", err)}
	}

	var snippet string
	if len(resp.Choices) > 0 {
		snippet = strings.TrimSpace(resp.Choices[0].Message.Content)
	}
	if snippet == "" {
		e.observe("empty", start)
		return "", nil
	}

	if e.cache != nil {
		if err := e.cache.Set(ctx, key, snippet); err != nil {
			e.logger.Printf("failed to set cache: %v\n", err)
		}
	}
	e.observe("ok", start)
	return snippet, nil
}

func (e *ExtractService) observe(status string, start time.Time) {
	metrics.ExtractionTotal(status)
	metrics.ExtractionDuration(status, time.Since(start))
}

func getCacheKey(model, payload string) string {
	hash := sha256.Sum256([]byte(model + "-" + payload))
	return hex.EncodeToString(hash[:])
}
