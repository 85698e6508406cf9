// Command chartctl turns a prompt into a chart config or an assistant reply
// from the command line, using the same backend settings as the service.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"chart-assist/internal/assistant"
	"chart-assist/internal/chart"
	"chart-assist/internal/config"

	"gopkg.in/yaml.v3"
)

const usage = "usage: chartctl [-mode chart|text|synthesize] [-format json|yaml] <prompt...>"

type textReply struct {
	Reply   string `json:"reply" yaml:"reply"`
	Offline bool   `json:"offline" yaml:"offline"`
}

func main() {
	mode := flag.String("mode", "chart", "chart, text or synthesize")
	format := flag.String("format", "json", "json or yaml")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	prompt := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if prompt == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *format != "json" && *format != "yaml" {
		fmt.Fprintf(os.Stderr, "unknown format %q\n%s\n", *format, usage)
		os.Exit(2)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := run(ctx, *mode, prompt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := write(os.Stdout, *format, out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, mode, prompt string) (any, error) {
	if mode == "synthesize" {
		return chart.Synthesize(prompt), nil
	}

	backend, err := config.LoadBackend()
	if err != nil {
		return nil, err
	}
	svc, closeClient := assistant.NewServiceFromConfig(ctx, *backend, nil)
	defer closeClient()

	switch mode {
	case "chart":
		return svc.GenerateChart(ctx, prompt, nil), nil
	case "text":
		return textReply{Reply: svc.Interpret(ctx, prompt, nil), Offline: !svc.CredentialValid()}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q\n%s", mode, usage)
	}
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
