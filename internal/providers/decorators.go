package providers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/felixgeelhaar/fortify/timeout"

	"github.com/dshills/archon/internal/cache"
)

type timeoutCompleter struct {
	inner Completer
	limit time.Duration
}

// WithTimeout bounds every Complete call of inner by limit.
func WithTimeout(inner Completer, limit time.Duration) Completer {
	return &timeoutCompleter{inner: inner, limit: limit}
}

func (t *timeoutCompleter) Name() string { return t.inner.Name() }

func (t *timeoutCompleter) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	tm := timeout.New[string](timeout.Config{DefaultTimeout: t.limit})
	return tm.Execute(ctx, t.limit, func(ctx context.Context) (string, error) {
		return t.inner.Complete(ctx, messages, opts)
	})
}

type cachedCompleter struct {
	inner Completer
	cache *cache.Cache
}

// WithCache serves repeated identical requests from c. Errors and empty
// completions are never stored.
func WithCache(inner Completer, c *cache.Cache) Completer {
	return &cachedCompleter{inner: inner, cache: c}
}

func (c *cachedCompleter) Name() string { return c.inner.Name() }

func (c *cachedCompleter) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	key, err := requestKey(c.inner.Name(), messages, opts)
	if err != nil {
		return c.inner.Complete(ctx, messages, opts)
	}
	if text, ok := c.cache.Get(key); ok {
		return text, nil
	}
	text, err := c.inner.Complete(ctx, messages, opts)
	if err != nil {
		return "", err
	}
	if text != "" {
		c.cache.Put(key, text)
	}
	return text, nil
}

func requestKey(name string, messages []Message, opts Options) (string, error) {
	payload, err := json.Marshal(struct {
		Messages    []Message `json:"messages"`
		Temperature float64   `json:"temperature"`
		MaxTokens   int       `json:"maxTokens"`
	}{messages, opts.temperature(), opts.maxTokens()})
	if err != nil {
		return "", err
	}
	return cache.BuildCacheKey(name, string(payload)), nil
}
