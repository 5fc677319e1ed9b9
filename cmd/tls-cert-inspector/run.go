// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/cli"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/logger"
	verpkg "github.com/H0llyW00dzZ/tls-cert-inspector/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	// Create CLI logger
	log := logger.NewCLILogger()

	// Set up signal handling using signal.NotifyContext for cleaner cancellation
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, log))
}

// run executes the CLI and maps its outcome to an exit status.
func run(ctx context.Context, log logger.Logger) int {
	done := make(chan error, 1)

	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("Error: %v", err)
			return 1
		}
		return 0
	case <-ctx.Done():
		// Give the CLI a moment to stop watchers and servers
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
		return 130 // Standard exit code for SIGINT
	}
}
