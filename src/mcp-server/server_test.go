// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"bufio"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Scan: config.ScanConfig{
			Timeout:     5 * time.Second,
			Concurrency: 2,
			Port:        config.DefaultPort,
		},
		Log:    config.LogConfig{Level: "info", Format: "text"},
		Output: config.OutputConfig{Format: "json"},
	}
}

func TestNewServer(t *testing.T) {
	s, err := NewServer("1.2.3", testConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestLoadInstructions(t *testing.T) {
	tools := createTools(newToolHandlers(testConfig(), nil))

	instructions, err := loadInstructions(tools)
	require.NoError(t, err)

	for _, tool := range tools {
		assert.Contains(t, instructions, "`"+tool.Tool.Name+"`")
		assert.Contains(t, instructions, tool.Tool.Description)
	}
	assert.NotContains(t, instructions, "{{", "template actions must be rendered")
}

func TestRun(t *testing.T) {
	t.Run("Initialize Round Trip", func(t *testing.T) {
		inReader, inWriter := io.Pipe()
		outReader, outWriter := io.Pipe()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan error, 1)
		go func() {
			done <- Run(ctx, "1.2.3", testConfig(), zaptest.NewLogger(t), inReader, outWriter)
		}()

		go func() {
			_, _ = io.WriteString(inWriter, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1.0"}}}`+"\n")
		}()

		line, err := bufio.NewReader(outReader).ReadString('\n')
		require.NoError(t, err)
		assert.Contains(t, line, `"id":1`)
		assert.Contains(t, line, serverName)
		assert.Contains(t, line, "1.2.3")

		cancel()
		inWriter.Close()
		outReader.Close()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(5 * time.Second):
			t.Fatal("Run did not return after cancellation")
		}
	})

	t.Run("Canceled Context", func(t *testing.T) {
		inReader, inWriter := io.Pipe()
		defer inWriter.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Run(ctx, "1.2.3", testConfig(), nil, inReader, io.Discard)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
