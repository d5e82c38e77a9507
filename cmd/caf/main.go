package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/gocaf/cmd/ui"
	"github.com/utkarsh5026/gocaf/pkg/common/logger"
)

var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	CommitSHA = "unknown"
)

var (
	logLevel  string
	logFormat string
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "caf",
		Short:   "caf - a content-addressable object store",
		Long:    getBanner(),
		Version: fmt.Sprintf("%s (built: %s, commit: %s)", Version, BuildTime, CommitSHA),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (sets log level to debug)")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newHashObjectCmd())
	rootCmd.AddCommand(newCatFileCmd())
	rootCmd.AddCommand(newLsTreeCmd())
	rootCmd.AddCommand(newCommitTreeCmd())
	rootCmd.AddCommand(newTagCmd())
	rootCmd.AddCommand(newCountObjectsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorMessage(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

func getBanner() string {
	return `
╔══════════════════════════════════════════════╗
║                                              ║
║    ██████╗ █████╗ ███████╗                   ║
║   ██╔════╝██╔══██╗██╔════╝                   ║
║   ██║     ███████║█████╗                     ║
║   ██║     ██╔══██║██╔══╝                     ║
║   ╚██████╗██║  ██║██║                        ║
║    ╚═════╝╚═╝  ╚═╝╚═╝                        ║
║                                              ║
╚══════════════════════════════════════════════╝

  📦 A content-addressable object store

  Objects are identified by the SHA-256 digest of
  their serialized form: identical content is stored
  once, and every digest verifiably names its bytes.

  Get started with: caf init
  Store a file:     caf hash-object -w <file>
  Inspect anything: caf cat-file -p <digest>

`
}

func setupLogging() {
	level := logger.LevelInfo
	if verbose {
		level = logger.LevelDebug
	} else {
		switch logLevel {
		case "debug":
			level = logger.LevelDebug
		case "info":
			level = logger.LevelInfo
		case "warn":
			level = logger.LevelWarn
		case "error":
			level = logger.LevelError
		}
	}

	format := logger.FormatText
	if logFormat == "json" {
		format = logger.FormatJSON
	}

	logger.Default = logger.New(logger.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
	})
}
