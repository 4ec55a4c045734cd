// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/specialistvlad/lightbot/internal/app"
	"github.com/specialistvlad/lightbot/internal/cli"
	"github.com/specialistvlad/lightbot/internal/config"
	"github.com/specialistvlad/lightbot/internal/hcl"
	"github.com/specialistvlad/lightbot/internal/tomlconfig"
	"github.com/specialistvlad/lightbot/internal/yamlconfig"
)

// main is the entrypoint for the lightbot application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, logW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// A panic past this point is a bug; report it as an error instead of a
	// stack trace.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application panicked | %v", r)
		}
	}()

	// Every supported format is loaded from the same paths and merged.
	loader := config.MultiLoader{hcl.NewLoader(), yamlconfig.NewLoader(), tomlconfig.NewLoader()}
	lightbotApp, err := app.NewApp(outW, logW, appConfig, loader)
	if err != nil {
		return err
	}

	return lightbotApp.Run(ctx)
}
