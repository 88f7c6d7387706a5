package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/sumloop/internal/config"
	"github.com/vk/sumloop/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	inR     io.Reader
	outW    io.Writer
	errW    io.Writer
	logger  *slog.Logger
	profile *config.Profile
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a resolved
// session profile. The console transcript goes to outW; logs and
// diagnostics go to errW so they never interleave with the transcript.
func NewApp(inR io.Reader, outW, errW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	profile := config.DefaultProfile()
	if appConfig.ProfilePath != "" {
		model, err := loader.Load(ctx, appConfig.ProfilePath)
		if err != nil {
			// A failure to load the profile is a fatal startup error.
			panic(fmt.Errorf("failed to load session profile: %w", err))
		}
		profile = model.Profile
		logger.Debug("Session profile loaded.", "path", appConfig.ProfilePath)
	}

	// CLI flags take precedence over the profile.
	if appConfig.Iterations > 0 {
		profile.Iterations = appConfig.Iterations
	}
	if appConfig.Attempts > 0 {
		profile.Attempts = appConfig.Attempts
	}

	return &App{
		inR:     inR,
		outW:    outW,
		errW:    errW,
		logger:  logger,
		profile: profile,
	}
}

// Profile returns the resolved session profile. This is primarily for
// testing.
func (a *App) Profile() *config.Profile {
	return a.profile
}
