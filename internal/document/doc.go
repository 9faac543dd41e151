// Package document turns a free-text architecture document into sections and
// diagrams.
package document
