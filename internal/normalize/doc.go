// Package normalize is the only path from a model's free-text completion to a
// typed value.
//
// Hosted models do not reliably honor "JSON only" instructions, so [Clean]
// removes reasoning blocks, prose preambles and code fences, and [ParseAs]
// decodes the remainder with a single repair attempt for raw control
// characters inside string literals. Callers still have to handle
// *[ParseError].
package normalize
