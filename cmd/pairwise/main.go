// Command pairwise runs an interactive paired comparison analysis
// session: every unordered pair of items is put to the judge, weights
// are collected, and the aggregate ranking is printed or saved.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ahrav/pairwise/infrastructure/console"
	"github.com/ahrav/pairwise/infrastructure/middleware"
	"github.com/ahrav/pairwise/infrastructure/shell"
	"github.com/ahrav/pairwise/infrastructure/storage"
	"github.com/ahrav/pairwise/internal/application"
	"github.com/ahrav/pairwise/internal/domain"
	"github.com/ahrav/pairwise/internal/logging"
	"github.com/ahrav/pairwise/internal/ports"
)

// env holds defaults read from PAIRWISE_* environment variables.
// Flags override env values; env values override session file values.
type env struct {
	Output    string `envconfig:"OUTPUT"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	Metrics   bool   `envconfig:"METRICS"`
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var defaults env
	cmd := &cobra.Command{
		Use:   "pairwise",
		Short: "Interactive paired comparison analysis",
		Long: `pairwise ranks a set of items by asking you to judge every pair,
then weighing each judgment (1 is a little, 3 is a lot) and aggregating
the weights into a ranked list with percentage shares.

Items come from "add" commands in the shell, a flat text file (--file),
or a YAML session file (--session).`,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return envconfig.Process("pairwise", &defaults)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, defaults)
		},
	}

	cmd.Flags().StringP("file", "f", "", "read item labels from a text file (one per line)")
	cmd.Flags().StringP("output", "o", "", "save results to this file on quit")
	cmd.Flags().String("session", "", "load a YAML session file (items, output, conflict policy)")
	cmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().String("log-format", "", "log format (text, json)")
	cmd.Flags().Bool("metrics", false, "register Prometheus elicitation counters")

	return cmd
}

func run(cmd *cobra.Command, defaults env) error {
	ctx := cmd.Context()

	logLevel := firstNonEmpty(flagString(cmd, "log-level"), defaults.LogLevel)
	logFormat := firstNonEmpty(flagString(cmd, "log-format"), defaults.LogFormat)
	logger := logging.New(os.Stderr, logLevel, logFormat)

	items := domain.NewItemSet()
	outPath := ""
	policy := application.ConflictPrompt

	if sessionPath := flagString(cmd, "session"); sessionPath != "" {
		loader, err := application.NewSessionLoader()
		if err != nil {
			return err
		}
		cfg, err := loader.LoadFromFile(sessionPath)
		if err != nil {
			return fmt.Errorf("session %s: %w", sessionPath, err)
		}
		if items, err = cfg.ItemSet(); err != nil {
			return fmt.Errorf("session %s: %w", sessionPath, err)
		}
		outPath = cfg.Output.Path
		if cfg.Output.OnConflict != "" {
			policy = cfg.Output.OnConflict
		}
		logger.Debug("session loaded", "name", cfg.Session.Name, "items", items.Len())
	}

	if filePath := flagString(cmd, "file"); filePath != "" {
		source := storage.NewFileSource(filePath)
		labels, err := source.Items(ctx)
		if err != nil {
			return err
		}
		for _, label := range labels {
			if _, err := items.Add(domain.Item(label)); err != nil {
				return fmt.Errorf("item file %s: %w", filePath, err)
			}
		}
	}

	outPath = firstNonEmpty(flagString(cmd, "output"), defaults.Output, outPath)

	sessionID := uuid.NewString()
	var collector ports.MetricsCollector = ports.NoopMetrics{}
	if metrics, _ := cmd.Flags().GetBool("metrics"); metrics || defaults.Metrics {
		collector = middleware.NewPrometheusMetrics(prometheus.DefaultRegisterer, sessionID)
	}

	judge := console.New(os.Stdin, os.Stdout)
	engine := application.NewEngine(judge,
		application.WithSessionID(sessionID),
		application.WithMetrics(collector),
	)

	logger.Debug("session starting", "session_id", sessionID, "items", items.Len())

	return shell.New(shell.Config{
		Judge:          judge,
		Engine:         engine,
		Items:          items,
		OutputPath:     outPath,
		ConflictPolicy: policy,
		Logger:         logger,
	}).Run(ctx)
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
