// Package testutil provides shared helpers for end-to-end session tests.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/sumloop/internal/app"
	"github.com/vk/sumloop/internal/hcl_adapter"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an end-to-end session run.
type HarnessResult struct {
	// Transcript is everything the session wrote to stdout.
	Transcript string
	// ErrOutput is everything written to stderr: logs plus diagnostics
	// such as the overflow notice.
	ErrOutput string
	Err       error
	App       *app.App
}

// RunSessionTest provides a standardized harness for running a full
// session against scripted stdin. The files map holds HCL profile files by
// relative name; an empty map runs with the built-in defaults. mutate, if
// non-nil, may adjust the app config before startup (e.g. flag overrides).
func RunSessionTest(t *testing.T, files map[string]string, input string, mutate func(*app.Config)) *HarnessResult {
	t.Helper()
	return RunSessionTestWithContext(context.Background(), t, files, input, mutate)
}

// RunSessionTestWithContext is RunSessionTest with a caller-provided
// context.
func RunSessionTestWithContext(ctx context.Context, t *testing.T, files map[string]string, input string, mutate func(*app.Config)) *HarnessResult {
	t.Helper()

	appConfig := &app.Config{
		LogFormat: "text",
		LogLevel:  "error",
	}

	if len(files) > 0 {
		tmpDir := t.TempDir()
		for name, content := range files {
			filePath := filepath.Join(tmpDir, name)
			require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
			require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
		}
		appConfig.ProfilePath = tmpDir
	}

	if mutate != nil {
		mutate(appConfig)
	}

	outBuffer := &SafeBuffer{}
	errBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(strings.NewReader(input), outBuffer, errBuffer, appConfig, hcl_adapter.NewLoader())
	}()

	if panicErr != nil {
		return &HarnessResult{
			Transcript: outBuffer.String(),
			ErrOutput:  errBuffer.String(),
			Err:        fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(ctx)

	return &HarnessResult{
		Transcript: outBuffer.String(),
		ErrOutput:  errBuffer.String(),
		Err:        runErr,
		App:        testApp,
	}
}
