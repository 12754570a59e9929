// Package main is the entry point for the vimlet editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/vimlet/internal/app"
	"github.com/dshills/vimlet/internal/config"
	"github.com/dshills/vimlet/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type cliOptions struct {
	configPath string
	logLevel   string
	debug      bool
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.debug {
		cfg.LogLevel = "debug"
	}

	logger := app.NullLogger
	if cfg.LogFile != "" {
		fileLogger, closer, err := app.OpenFileLogger(cfg.LogFile, app.ParseLogLevel(cfg.LogLevel))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer closer.Close()
		logger = fileLogger
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application := app.New(app.Options{
		Backend: term,
		Config:  cfg,
		Logger:  logger,
	})

	if opts.file != "" {
		if err := application.LoadFile(opts.file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	err = application.Run()
	switch {
	case err == nil, errors.Is(err, app.ErrQuit):
		// The edited buffer goes to stdout on a clean exit.
		if werr := application.WriteTo(os.Stdout); werr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", werr)
			return 1
		}
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}

func parseFlags() cliOptions {
	var opts cliOptions
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", defaultConfigPath(), "Path to configuration file")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vimlet - modal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: vimlet [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nOn quit the buffer is written to stdout, one line per line.\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("vimlet %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if lv := opts.logLevel; lv != "" {
		switch lv {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", lv)
			os.Exit(1)
		}
	}

	if flag.NArg() > 0 {
		opts.file = flag.Arg(0)
	}

	return opts
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vimlet", "config.json")
}
