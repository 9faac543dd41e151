// Package output renders architecture reviews for the terminal, for files and
// for other tools.
//
// Supported formats:
//   - text: terminal summary with issues grouped by severity (default)
//   - json: the full review record
//   - markdown (or md): the generated report followed by an issue table
//
// Use [GetWriter] to obtain a [Writer] for a format string, or [WriteReview]
// to pick the destination as well.
package output
