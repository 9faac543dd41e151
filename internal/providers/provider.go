package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/dshills/archon/internal/cache"
)

// Role tags a message in a completion conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged turn of a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Options tunes a single completion. Zero values select the defaults.
type Options struct {
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   int      `json:"maxTokens,omitempty"`
}

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 4096
)

func (o Options) temperature() float64 {
	if o.Temperature == nil {
		return defaultTemperature
	}
	return *o.Temperature
}

func (o Options) maxTokens() int {
	if o.MaxTokens <= 0 {
		return defaultMaxTokens
	}
	return o.MaxTokens
}

// Temperature returns a pointer suitable for Options.Temperature.
func Temperature(t float64) *float64 { return &t }

// Completer is the provider abstraction: send messages, get text back.
//
// Complete returns the first choice's text, or "" when the provider returned
// no content. Authentication, rate limit and request failures are reported as
// *APIError and never retried.
type Completer interface {
	Complete(ctx context.Context, messages []Message, opts Options) (string, error)
	Name() string
}

// Names lists the supported provider names.
var Names = []string{"groq", "openai", "anthropic", "gemini", "ollama"}

// New creates a provider by name.
func New(provider, model string) (Completer, error) {
	switch provider {
	case "groq", "":
		return NewGroq(model)
	case "anthropic":
		return NewAnthropic(model)
	case "openai":
		return NewOpenAI(model)
	case "gemini", "google":
		return NewGemini(model)
	case "ollama", "lmstudio":
		return NewOllama(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}

// Factory builds decorated completers for one provider. A zero Timeout
// disables the per-call deadline and a nil Cache disables caching.
type Factory struct {
	Provider string
	Timeout  time.Duration
	Cache    *cache.Cache
}

// New returns a completer for model wrapped with the factory's decorators.
func (f Factory) New(model string) (Completer, error) {
	c, err := New(f.Provider, model)
	if err != nil {
		return nil, err
	}
	return f.Wrap(c), nil
}

// Wrap applies the factory's decorators to an existing completer.
func (f Factory) Wrap(c Completer) Completer {
	if f.Timeout > 0 {
		c = WithTimeout(c, f.Timeout)
	}
	if f.Cache != nil && f.Cache.Enabled() {
		c = WithCache(c, f.Cache)
	}
	return c
}
