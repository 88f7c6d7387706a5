package app

import (
	"context"

	"github.com/vk/sumloop/internal/ctxlog"
	"github.com/vk/sumloop/internal/session"
)

// Run executes one addition session based on the resolved profile.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	ctl := session.New(session.Config{
		Iterations: a.profile.Iterations,
		Attempts:   a.profile.Attempts,
		Prompt:     a.profile.Prompt,
	}, a.inR, a.outW, a.errW)

	sum, err := ctl.Run(ctx)
	if err != nil {
		return err
	}

	a.logger.Info("Session finished.", "final_sum", sum)
	a.logger.Debug("App.Run method finished.")
	return nil
}
