package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fdiskit/fdiskit/fdisk"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	configPath string

	cfg config
)

var rootCmd = &cobra.Command{
	Use:   "fdiskctl",
	Short: "Inspect and manipulate partition tables",
	Long: `fdiskctl is a tool for inspecting and modifying partition tables
(DOS/MBR, GPT, BSD, SGI, SUN) on block devices and disk images. It is a
thin front end over the fdiskit library and never prompts interactively;
every change must be stated on the command line.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default ~/.config/fdiskctl/config.toml)")
}

func setup() error {
	level := logrus.WarnLevel
	if verbose {
		level = logrus.DebugLevel
	}
	if env := os.Getenv("FDISKCTL_LOG"); env != "" {
		parsed, err := logrus.ParseLevel(env)
		if err != nil {
			return fmt.Errorf("parse FDISKCTL_LOG: %w", err)
		}
		level = parsed
	}
	logrus.SetLevel(level)

	// Native debug mask; first initialization wins for the process.
	if env := os.Getenv("FDISKIT_DEBUG"); env != "" {
		mask, err := strconv.ParseUint(env, 0, 32)
		if err != nil {
			return fmt.Errorf("parse FDISKIT_DEBUG: %w", err)
		}
		fdisk.EnableDebug(uint32(mask))
	}

	loaded, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// openContext opens a device with the configured defaults.
func openContext(device string, readWrite bool) (*fdisk.Context, error) {
	b := fdisk.NewContextBuilder().Assign(device)
	if readWrite {
		b.ReadWrite()
	}
	if cfg.Wipe {
		b.Wipe()
	}
	b.SizeFormat(cfg.sizeFormat())
	b.Unit(cfg.displayUnit())

	cxt, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", device, err)
	}
	return cxt, nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
