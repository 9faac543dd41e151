package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dshills/archon/internal/document"
	"github.com/dshills/archon/internal/output"
	"github.com/dshills/archon/internal/review"
	"github.com/dshills/archon/internal/store"
)

var reviewCmd = &cobra.Command{
	Use:   "review <file|->",
	Short: "Review an architecture document",
	Long:  "Run the extract, detect and report stages on a markdown architecture document and print the review.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if flagNoRedact {
			cfg.Privacy.RedactSecrets = false
			fmt.Fprintln(cmd.ErrOrStderr(), "WARNING: secret redaction is disabled")
		}

		text, err := readInput(args[0], cmd.InOrStdin())
		if err != nil {
			failWith(cmd.ErrOrStderr(), err)
			return nil
		}

		logger := newLogger(cfg.Log, cmd.ErrOrStderr())
		engine, completions, err := buildEngine(cfg, store.NewMemory(), logger)
		if err != nil {
			failWith(cmd.ErrOrStderr(), err)
			return nil
		}

		rev, err := engine.Review(context.Background(), document.Parse(text), review.Options{})
		logCacheStats(logger, slog.LevelDebug, completions)
		if err != nil {
			failWith(cmd.ErrOrStderr(), err)
			return nil
		}

		if flagOut == "" {
			writer, err := output.GetWriter(cfg.Format)
			if err == nil {
				err = writer.Write(cmd.OutOrStdout(), &rev)
			}
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing output: %v\n", err)
				exitCode = ExitRuntimeError
			}
			return nil
		}
		if err := output.WriteReview(&rev, cfg.Format, flagOut); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
		}
		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <file|->",
	Short: "Print the parsed sections and diagrams of a document as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args[0], cmd.InOrStdin())
		if err != nil {
			failWith(cmd.ErrOrStderr(), err)
			return nil
		}
		return output.JSON(cmd.OutOrStdout(), document.Parse(text))
	},
}

func init() {
	reviewCmd.Flags().StringVar(&flagProvider, "provider", "", providerFlagUsage)
	reviewCmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	reviewCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown)")
	reviewCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	reviewCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
}
