// Archon reviews software architecture documents with LLM providers.
//
// A markdown design document is parsed into sections and diagrams, an
// architecture model is extracted from it, architectural risks are detected
// and a narrative report is written. Reviews are served over an HTTP API or
// produced locally.
//
// Usage:
//
//	archon serve                          # start the HTTP API on :3001
//	archon review design.md               # review a document
//	archon review - --format markdown     # review stdin, markdown output
//	archon parse design.md                # show parsed sections and diagrams
//	archon models doctor                  # check provider credentials
package main
