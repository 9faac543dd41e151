package providers

import (
	"cmp"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultOllamaHost  = "http://localhost:11434"
	defaultOllamaModel = "llama3.3"
	chatCompletionPath = "/v1/chat/completions"
)

// NewOllama creates a provider for a local Ollama or LM Studio server through
// its OpenAI-compatible endpoint. OLLAMA_HOST selects the server and
// ARCHON_OLLAMA_API_KEY is sent as a bearer token when set.
func NewOllama(model string) (*OpenAI, error) {
	return &OpenAI{
		name:    "ollama",
		apiKey:  os.Getenv("ARCHON_OLLAMA_API_KEY"),
		model:   cmp.Or(model, defaultOllamaModel),
		baseURL: ollamaEndpoint(os.Getenv("OLLAMA_HOST")),
		client:  &http.Client{Timeout: 300 * time.Second},
	}, nil
}

// ollamaEndpoint accepts a bare host, a host ending in /v1 or the full chat
// completions URL.
func ollamaEndpoint(host string) string {
	host = strings.TrimRight(cmp.Or(host, defaultOllamaHost), "/")
	for _, suffix := range []string{chatCompletionPath, "/v1"} {
		host = strings.TrimSuffix(host, suffix)
	}
	return host + chatCompletionPath
}
