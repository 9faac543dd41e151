// Package cli implements the archon command tree with cobra.
//
// Commands: serve, review, parse, config (init, show, set), models (list,
// doctor) and version. [Run] returns the process exit code.
package cli
