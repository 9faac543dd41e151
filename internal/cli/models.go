package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/archon/internal/providers"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Provider and model management",
}

type modelInfo struct {
	Provider string
	Env      string
	Models   []string
}

var knownModels = []modelInfo{
	{
		Provider: "groq",
		Env:      "GROQ_API_KEY",
		Models: []string{
			"llama-3.3-70b-versatile",
			"llama-3.1-8b-instant",
			"mixtral-8x7b-32768",
		},
	},
	{
		Provider: "openai",
		Env:      "OPENAI_API_KEY",
		Models: []string{
			"gpt-4o",
			"gpt-4.1-mini",
			"o3-mini",
		},
	},
	{
		Provider: "anthropic",
		Env:      "ANTHROPIC_API_KEY",
		Models: []string{
			"claude-sonnet-4-6",
			"claude-opus-4-6",
			"claude-haiku-4-5",
		},
	},
	{
		Provider: "gemini",
		Env:      "GEMINI_API_KEY",
		Models: []string{
			"gemini-2.5-flash",
			"gemini-2.5-pro",
		},
	},
	{
		Provider: "ollama",
		Env:      "OLLAMA_HOST",
		Models: []string{
			"llama3.3",
			"qwen2.5",
			"mistral",
		},
	},
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known providers and models",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, info := range knownModels {
			fmt.Fprintf(out, "%s (%s):\n", info.Provider, info.Env)
			for _, m := range info.Models {
				fmt.Fprintf(out, "  - %s\n", m)
			}
			fmt.Fprintln(out)
		}
	},
}

var modelsDoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Validate provider credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Checking %s...\n", cfg.Provider)

		p, err := providers.New(cfg.Provider, modelFor(cfg))
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "FAIL: %v\n", err)
			exitCode = ExitAuthError
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, err = p.Complete(ctx, []providers.Message{
			{Role: providers.RoleSystem, Content: "Respond with exactly: ok"},
			{Role: providers.RoleUser, Content: "ping"},
		}, providers.Options{MaxTokens: 10})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "FAIL: %v\n", err)
			if providers.IsAuthError(err) {
				exitCode = ExitAuthError
			} else {
				exitCode = ExitRuntimeError
			}
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "OK: %s is configured and responding\n", p.Name())
		return nil
	},
}

func init() {
	modelsCmd.AddCommand(modelsListCmd)
	modelsCmd.AddCommand(modelsDoctorCmd)
	modelsDoctorCmd.Flags().StringVar(&flagProvider, "provider", "", providerFlagUsage)
	modelsDoctorCmd.Flags().StringVar(&flagModel, "model", "", "Model to check")
}
