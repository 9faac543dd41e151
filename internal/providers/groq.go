package providers

import (
	"fmt"
	"net/http"
	"os"
	"time"
)

const (
	groqAPIURL       = "https://api.groq.com/openai/v1/chat/completions"
	DefaultGroqModel = "llama-3.3-70b-versatile"
)

// NewGroq creates a provider for Groq's OpenAI-compatible chat completions API.
func NewGroq(model string) (*OpenAI, error) {
	key := os.Getenv("GROQ_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("GROQ_API_KEY environment variable is not set")
	}
	if model == "" {
		model = DefaultGroqModel
	}
	return &OpenAI{
		name:    "groq",
		apiKey:  key,
		model:   model,
		baseURL: groqAPIURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}, nil
}
