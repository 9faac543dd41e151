package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dshills/archon/internal/cache"
	"github.com/dshills/archon/internal/config"
	"github.com/dshills/archon/internal/providers"
	"github.com/dshills/archon/internal/review"
)

var providerFlagUsage = "LLM provider (" + strings.Join(providers.Names, ", ") + ")"

// Shared flags
var (
	flagProvider    string
	flagModel       string
	flagFormat      string
	flagOut         string
	flagAddr        string
	flagFrontendURL string
	flagNoRedact    bool
)

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagAddr != "" {
		m["server.addr"] = flagAddr
	}
	if flagFrontendURL != "" {
		m["server.frontendUrl"] = flagFrontendURL
	}
	return m
}

// loadConfig reads .env from the working directory and then the layered
// config with flag overrides on top.
func loadConfig() (config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return config.Config{}, err
	}
	return config.Load(buildOverrides())
}

func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// modelFor drops the default Groq model when another provider is selected,
// so that provider's own default applies.
func modelFor(cfg config.Config) string {
	if cfg.Provider != "groq" && cfg.Provider != "" && cfg.Model == config.Default().Model {
		return ""
	}
	return cfg.Model
}

// buildEngine wires the configured provider, its decorators and the store
// into a review engine. The returned cache is shared by every completer the
// engine builds.
func buildEngine(cfg config.Config, store review.Saver, logger *slog.Logger) (*review.Engine, *cache.Cache, error) {
	completions := cache.New(cfg.Cache.Enabled, cfg.Cache.Size, cfg.CacheTTL())
	factory := providers.Factory{
		Provider: cfg.Provider,
		Timeout:  cfg.ProviderTimeout(),
		Cache:    completions,
	}
	c, err := factory.New(modelFor(cfg))
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("provider ready", "provider", c.Name(), "timeout", cfg.ProviderTimeout(), "cache", cfg.Cache.Enabled)

	engine := review.NewEngine(c, store,
		review.WithFactory(factory),
		review.WithLogger(logger),
		review.WithRedaction(cfg.Privacy.RedactSecrets),
	)
	return engine, completions, nil
}

func logCacheStats(logger *slog.Logger, level slog.Level, c *cache.Cache) {
	if !c.Enabled() {
		return
	}
	st := c.Stats()
	logger.Log(context.Background(), level, "completion cache", "entries", st.Entries, "hits", st.Hits, "misses", st.Misses)
}

// readInput reads a document from path, or from stdin when path is "-".
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// failWith reports err on stderr and sets the exit code for it.
func failWith(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if providers.IsAuthError(err) {
		exitCode = ExitAuthError
		return
	}
	exitCode = ExitRuntimeError
}
