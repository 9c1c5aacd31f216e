package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"mindtree/internal/config"
	"mindtree/internal/logger"
	"mindtree/internal/service"
	"mindtree/internal/store"
)

var (
	cfgFile string
	output  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "treectl",
	Short: "Inspect and update the mood tree",
	Long: `treectl reads and writes the check-in document through the configured store.

Commands:
  health    Show the tree's health score and tier
  history   List stored check-ins
  checkin   Record a check-in (calls the configured LLM)
  reset     Start over from health 50 with no entries`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		logger.InitTo(os.Stderr, level)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: etc/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "Output format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
}

// openStore loads the config and opens the configured store. Only the
// store section is validated unless withLLM is set.
func openStore(withLLM bool) (*config.Config, store.DocumentStore, func() error, error) {
	cfg := config.Load(cfgFile)
	validate := cfg.ValidateStore
	if withLLM {
		validate = cfg.Validate
	}
	if err := validate(); err != nil {
		return nil, nil, nil, err
	}

	st, closeStore, err := store.Open(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}
	return cfg, st, closeStore, nil
}

// openService builds a CheckinService over the configured store. The llm
// client is only built when withLLM is set, so read-only commands work
// without credentials.
func openService(ctx context.Context, withLLM bool) (*service.CheckinService, func() error, error) {
	cfg, st, closeStore, err := openStore(withLLM)
	if err != nil {
		return nil, nil, err
	}

	var (
		classifier service.SentimentClassifier
		generator  service.FeedbackGenerator
	)
	if withLLM {
		llm, err := service.NewLLM(ctx, cfg.LLM)
		if err != nil {
			closeStore()
			return nil, nil, fmt.Errorf("init llm: %w", err)
		}
		ai := service.NewAIService(llm)
		classifier, generator = ai, ai
	}
	return service.NewCheckinService(classifier, generator, st, cfg.LLMTimeout()), closeStore, nil
}

func jsonOutput() bool {
	return output == "json"
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
