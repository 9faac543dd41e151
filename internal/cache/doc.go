// Package cache keeps recent completion responses in memory.
//
// Keys are SHA-256 hashes of the provider name and the serialized request, so
// a different model, temperature or prompt never collides. Entries live for a
// fixed TTL inside a bounded LRU.
package cache
