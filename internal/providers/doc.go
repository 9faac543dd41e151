// Package providers turns a role-tagged conversation into completion text.
//
// Groq is the default backend. OpenAI, Anthropic, Gemini and Ollama/LM Studio
// are also supported; Groq, OpenAI and Ollama share one OpenAI-compatible
// client. Provider failures surface as *APIError and are never retried.
//
// [Factory] builds a completer for a given model and layers the optional
// per-call timeout and response cache on top of it.
package providers
