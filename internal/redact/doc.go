// Package redact scrubs secrets from text before it leaves the process.
//
// Detection is heuristic: API keys, JWTs, private key headers, AWS keys,
// bearer tokens, provider tokens (Groq, Anthropic, OpenAI, GitHub, Slack) and
// credentials embedded in connection URLs.
package redact
