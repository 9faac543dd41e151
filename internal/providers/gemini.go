package providers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	genai "google.golang.org/genai"
)

// Gemini implements the Completer interface on top of the official genai SDK.
type Gemini struct {
	cli   *genai.Client
	model string
}

// NewGemini creates a new Gemini provider.
func NewGemini(model string) (*Gemini, error) {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		key = os.Getenv("GOOGLE_API_KEY")
	}
	if key == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY (or GOOGLE_API_KEY) environment variable is not set")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	cli, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &Gemini{cli: cli, model: model}, nil
}

func (g *Gemini) Name() string { return "gemini:" + g.model }

func (g *Gemini) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	system, contents := geminiContents(messages)

	temp := float32(opts.temperature())
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: system,
		Temperature:       &temp,
		MaxOutputTokens:   int32(opts.maxTokens()),
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", geminiError(err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var content strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			content.WriteString(part.Text)
		}
	}
	return content.String(), nil
}

// geminiContents splits a conversation into the system instruction and the
// turn list. Gemini calls the assistant role "model".
func geminiContents(messages []Message) (*genai.Content, []*genai.Content) {
	var system []*genai.Part
	var contents []*genai.Content
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, &genai.Part{Text: m.Content})
		case RoleAssistant:
			contents = append(contents, &genai.Content{Role: "model", Parts: []*genai.Part{{Text: m.Content}}})
		default:
			contents = append(contents, &genai.Content{Role: "user", Parts: []*genai.Part{{Text: m.Content}}})
		}
	}
	if len(system) == 0 {
		return nil, contents
	}
	return &genai.Content{Parts: system}, contents
}

func geminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Provider:   "gemini",
			StatusCode: apiErr.Code,
			Kind:       kindForStatus(apiErr.Code),
			Message:    apiErr.Message,
		}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &APIError{
			Provider:   "gemini",
			StatusCode: apiErrPtr.Code,
			Kind:       kindForStatus(apiErrPtr.Code),
			Message:    apiErrPtr.Message,
		}
	}
	return fmt.Errorf("gemini generate content: %w", err)
}
