// Package store holds completed reviews in process memory. Nothing survives a
// restart.
package store
