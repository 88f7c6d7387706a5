package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/sumloop/internal/config"
)

// stubLoader returns a fixed profile without touching the filesystem.
type stubLoader struct {
	profile *config.Profile
	err     error
}

func (s *stubLoader) Load(_ context.Context, _ ...string) (*config.Model, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &config.Model{Profile: s.profile}, nil
}

func TestNewConfig_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{Iterations: -1})
	require.Error(t, err)

	_, err = NewConfig(Config{Attempts: -2})
	require.Error(t, err)

	cfg, err := NewConfig(Config{Iterations: 2, Attempts: 1})
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Iterations)
}

func TestNewApp_DefaultsWithoutProfile(t *testing.T) {
	t.Parallel()

	cfg := &Config{LogFormat: "text", LogLevel: "error"}

	a := NewApp(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, cfg, &stubLoader{})

	require.Equal(t, config.DefaultProfile(), a.Profile())
}

func TestNewApp_FlagOverridesBeatProfile(t *testing.T) {
	t.Parallel()

	loader := &stubLoader{profile: &config.Profile{Iterations: 9, Attempts: 9, Prompt: "p "}}
	cfg := &Config{
		ProfilePath: "ignored-by-stub",
		LogFormat:   "text",
		LogLevel:    "error",
		Iterations:  1,
	}

	a := NewApp(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, cfg, loader)

	require.Equal(t, 1, a.Profile().Iterations, "flag value must win")
	require.Equal(t, 9, a.Profile().Attempts, "unset flag must defer to the profile")
	require.Equal(t, "p ", a.Profile().Prompt)
}

func TestNewApp_PanicsOnLoaderFailure(t *testing.T) {
	t.Parallel()

	loader := &stubLoader{err: context.DeadlineExceeded}
	cfg := &Config{ProfilePath: "somewhere", LogFormat: "text", LogLevel: "error"}

	require.Panics(t, func() {
		NewApp(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, cfg, loader)
	})
}

func TestRun_ProducesTranscript(t *testing.T) {
	t.Parallel()

	loader := &stubLoader{profile: &config.Profile{Iterations: 1, Attempts: 1, Prompt: "? "}}
	cfg := &Config{ProfilePath: "stub", LogFormat: "text", LogLevel: "error"}
	out := &bytes.Buffer{}

	a := NewApp(strings.NewReader("20\n22\n"), out, &bytes.Buffer{}, cfg, loader)
	require.NoError(t, a.Run(context.Background()))

	require.Contains(t, out.String(), "Final sum: 42\n")
}
