// Package config loads and merges archon configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (ARCHON_PROVIDER, ARCHON_MODEL, PORT, FRONTEND_URL,
//     ARCHON_LOG_LEVEL, ...), optionally seeded from a .env file
//  3. Config file ($XDG_CONFIG_HOME/archon/config.yaml)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write the config file and
// [SetField] to update a single key.
package config
