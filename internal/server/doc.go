// Package server exposes the review pipeline over HTTP.
//
// Routes:
//
//	POST /api/reviews       validate, parse and review a document (201)
//	GET  /api/reviews       list stored reviews
//	GET  /api/reviews/{id}  fetch one review (404 when unknown)
//	GET  /health            liveness
//
// Request bodies are validated against a JSON schema; failures are reported
// as {"error":"Validation error","details":[{path,message}]}. Provider
// failures map to 500 with error "API Error" and the provider's message.
package server
