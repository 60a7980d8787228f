package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/interview-coach-team/interview-analyzer/pkg/config"
)

// ErrEmbedderNotConfigured is returned when no API key was provided. The
// caller surfaces this as a "model not ready" condition.
var ErrEmbedderNotConfigured = errors.New("embedding model not configured")

// EmbeddingCache stores embedding vectors keyed by text hash. Implementations
// must be safe for concurrent use. A nil cache degrades to direct API calls.
type EmbeddingCache interface {
	Get(ctx context.Context, key string) ([]float64, bool)
	Set(ctx context.Context, key string, vector []float64)
}

// OpenAIEmbedder maps text collections to fixed-length vectors using the
// OpenAI embeddings API. The underlying client is initialized lazily and
// exactly once; concurrent first calls do not race to construct duplicates.
type OpenAIEmbedder struct {
	cfg    *config.OpenAIConfig
	cache  EmbeddingCache
	logger *zap.Logger

	initOnce sync.Once
	client   *openai.Client
}

// NewOpenAIEmbedder creates an embedder. The API client itself is not built
// until the first Embed call.
func NewOpenAIEmbedder(cfg *config.OpenAIConfig, cache EmbeddingCache, logger *zap.Logger) *OpenAIEmbedder {
	return &OpenAIEmbedder{cfg: cfg, cache: cache, logger: logger}
}

func (e *OpenAIEmbedder) ensureClient() error {
	e.initOnce.Do(func() {
		if e.cfg.APIKey == "" {
			return
		}
		clientCfg := openai.DefaultConfig(e.cfg.APIKey)
		if e.cfg.BaseURL != "" {
			clientCfg.BaseURL = e.cfg.BaseURL
		}
		e.client = openai.NewClientWithConfig(clientCfg)
	})
	if e.client == nil {
		return ErrEmbedderNotConfigured
	}
	return nil
}

// Embed returns one vector per input text, in input order. Cached vectors
// are reused; only cache misses are sent to the API, in a single request.
func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if err := e.ensureClient(); err != nil {
		return nil, err
	}

	vectors := make([][]float64, len(texts))
	var missing []string
	var missingIdx []int
	for i, text := range texts {
		if e.cache != nil {
			if vec, ok := e.cache.Get(ctx, e.cacheKey(text)); ok {
				vectors[i] = vec
				continue
			}
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}
	if len(missing) == 0 {
		return vectors, nil
	}

	var resp openai.EmbeddingResponse
	requestFn := func() error {
		var err error
		resp, err = e.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
			Input: missing,
			Model: openai.EmbeddingModel(e.cfg.EmbeddingModel),
		})
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(requestFn, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Data) != len(missing) {
		return nil, fmt.Errorf("embedding response size mismatch: want %d, got %d", len(missing), len(resp.Data))
	}

	for i, data := range resp.Data {
		vec := make([]float64, len(data.Embedding))
		for j, v := range data.Embedding {
			vec[j] = float64(v)
		}
		vectors[missingIdx[i]] = vec
		if e.cache != nil {
			e.cache.Set(ctx, e.cacheKey(missing[i]), vec)
		}
	}

	if e.logger != nil {
		e.logger.Debug("embedded texts",
			zap.Int("requested", len(texts)),
			zap.Int("cache_hits", len(texts)-len(missing)),
		)
	}
	return vectors, nil
}

func (e *OpenAIEmbedder) cacheKey(text string) string {
	h := sha256.New()
	h.Write([]byte(e.cfg.EmbeddingModel))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return "emb:" + hex.EncodeToString(h.Sum(nil))
}
