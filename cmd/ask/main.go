// Package main implements ask, a one-shot command that sends a prompt through
// the gardening assistant and prints the answer. Like the server it never
// fails because the provider is down; it prints a fallback answer instead.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/phrazzld/gardenmate/internal/config"
	"github.com/phrazzld/gardenmate/internal/fallback"
	"github.com/phrazzld/gardenmate/internal/gate"
	"github.com/phrazzld/gardenmate/internal/generation"
	"github.com/phrazzld/gardenmate/internal/platform/gemini"
	"github.com/phrazzld/gardenmate/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, nil))
}

// run parses args and answers the prompt. provider may be nil, in which case
// one is built from configuration. It returns the process exit code.
func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider generation.Provider,
) int {
	fs := flag.NewFlagSet("ask", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a config.yaml file")
	verbose := fs.Bool("v", false, "print where the answer came from to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: ask [-config path] [-v] <prompt words...>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	prompt := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if prompt == "" {
		fmt.Fprintln(stderr, generation.ErrEmptyPrompt)
		fs.Usage()
		return 2
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load configuration: %v\n", err)
		return 1
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	l := logger.New(stderr, level)

	if provider == nil {
		provider, err = gemini.NewProvider(ctx, l, cfg.LLM)
		if err != nil {
			fmt.Fprintf(stderr, "failed to initialize LLM provider: %v\n", err)
			return 1
		}
	}

	client, err := generation.NewClient(
		provider,
		gate.New(cfg.LLM.Cooldown()),
		fallback.NewOracle(nil),
		l,
		generation.WithTimeout(cfg.LLM.RequestTimeout()),
	)
	if err != nil {
		fmt.Fprintf(stderr, "failed to create generation client: %v\n", err)
		return 1
	}

	result := client.Generate(ctx, prompt)
	fmt.Fprintln(stdout, result.Text)

	if *verbose {
		if result.Degraded() {
			fmt.Fprintf(stderr, "source=%s category=%s reason=%s\n",
				result.Source, result.Category, generation.ReasonLabel(result.Reason))
		} else {
			fmt.Fprintf(stderr, "source=%s\n", result.Source)
		}
	}

	return 0
}
