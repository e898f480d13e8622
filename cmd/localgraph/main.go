// Package main provides the localgraph binary entry point.
// Localgraph assembles schema.org structured-data graphs for local
// business sites: single locations, franchises sharing one organization,
// and independent branch organizations.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/placewise/localgraph/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "localgraph"
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

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	dataPath   string
	logLevel   string
}

func rootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Structured-data graph assembler for local business sites",
		Long: `Localgraph assembles schema.org JSON-LD graphs for local business
sites. It resolves the site topology (single location, one organization
with many locations, or independent branches), builds the Organization,
PostalAddress, OpeningHoursSpecification, logo and ItemList nodes for a
page, and wires them together by @id references.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Optional .env for local development; absence is fine.
			_ = godotenv.Load()
			configureLogging(flags.logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&flags.dataPath, "data", "", "Location data file (overrides config)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(renderCmd(flags))
	cmd.AddCommand(serveCmd(flags))
	cmd.AddCommand(publishCmd(flags))
	cmd.AddCommand(locationsCmd(flags))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

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

// loadOptions loads the options snapshot from the explicit config path or
// the layered loader, applying flag overrides.
func loadOptions(flags *rootFlags) (*config.Options, error) {
	var (
		opts *config.Options
		err  error
	)
	if flags.configPath != "" {
		opts, err = config.LoadFromFile(flags.configPath)
		if err == nil {
			err = opts.Validate()
		}
	} else {
		opts, err = config.NewLoader(slog.Default()).Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if flags.dataPath != "" {
		opts.LocationsFile = flags.dataPath
	}
	return opts, nil
}
