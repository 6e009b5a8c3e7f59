package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"go.creack.net/exprparse/repl"
)

func main() {
	defaults := repl.DefaultConfig()
	engine := flag.String("engine", defaults.Engine, "parser engine (pratt, descent, shunt, all)")
	traceRules := flag.Bool("trace", defaults.Trace, "log the grammar rules visited by the descent engine")
	logLevel := flag.String("log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	configPath := flag.String("config", "", "TOML config file")
	expr := flag.String("e", "", "evaluate one expression and exit")
	flag.Parse()

	cfg := defaults
	if *configPath != "" {
		var err error
		if cfg, err = repl.LoadConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Fail: %s.\n", err)
			os.Exit(2)
		}
	}
	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "engine":
			cfg.Engine = *engine
		case "trace":
			cfg.Trace = *traceRules
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if *expr != "" {
		cfg.Prompt = ""
	}

	level, levelErr := cfg.Level()
	if cfg.Trace && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(level)
	if levelErr != nil {
		logger.Warn().Err(levelErr).Str("log_level", cfg.LogLevel).Msg("falling back to info")
	}

	r, err := repl.New(cfg, os.Stdout, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	if *expr != "" {
		if err := r.Eval(*expr); err != nil {
			os.Exit(1)
		}
		return
	}

	logger.Debug().Str("engine", cfg.Engine).Bool("trace", cfg.Trace).Msg("starting")
	fmt.Println("Enter expression. Press Ctrl-d to exit.")
	if err := r.Run(os.Stdin); err != nil {
		logger.Fatal().Err(err).Msg("repl exited")
	}
}
