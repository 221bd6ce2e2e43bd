// Package main provides the hpvco binary entry point.
// hpvco is a consumer toolkit for the HPV Cancer Ontology: it fetches,
// parses, and validates the published RDF/XML document and serves
// class and property lookups over it.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uthealth/hpvco/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "hpvco"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cliOptions carries the global flags shared by every subcommand.
type cliOptions struct {
	configPath string
	logLevel   string
}

func rootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "HPV Cancer Ontology toolkit",
		Long: `hpvco is a consumer toolkit for the HPV Cancer Ontology.

It provides:
- Document retrieval from the permanent ontology URL
- RDF/XML parsing into an in-memory triple store
- Schema validation against the supported OWL subset
- Class and property lookup by IRI or label
- Export to Turtle, N-Triples, JSON-LD, and RDF/XML

The serve command runs the lookup API and graph publishing components
over NATS.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(opts.logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		fetchCmd(opts),
		validateCmd(opts),
		lookupCmd(opts),
		statsCmd(opts),
		enrichCmd(opts),
		exportCmd(opts),
		serveCmd(opts),
		versionCmd(),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

// configureLogging sets the default slog logger.
func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadToolkitConfig loads layered config, then the explicit file if given.
func loadToolkitConfig(opts *cliOptions) (*config.Config, error) {
	loader := config.NewLoader(slog.Default())
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if opts.configPath != "" {
		fileCfg, err := config.LoadFromFile(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg.Merge(fileCfg)
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}

	return cfg, nil
}
