package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"vanity-notify/internal/domain/ports"
	"vanity-notify/internal/usecase"
)

// App drives result delivery, either once or on a cron schedule.
type App struct {
	cron     *cron.Cron
	announce *usecase.Announce
	source   ports.ResultSource
	logger   ports.Logger
	schedule string
}

// New constructs an App instance. An empty schedule means a single pass.
func New(announce *usecase.Announce, source ports.ResultSource, logger ports.Logger, schedule string) *App {
	return &App{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		announce: announce,
		source:   source,
		logger:   logger,
		schedule: schedule,
	}
}

// Run delivers pending results. In one-shot mode the first transport error is returned
// after every result has been attempted.
// In watch mode it polls immediately, then on schedule until ctx is done.
func (a *App) Run(ctx context.Context) error {
	if a.schedule == "" {
		return a.deliver(ctx)
	}

	if err := a.scheduleJob(); err != nil {
		return err
	}

	a.logger.Info(ctx, "polling results immediately")
	if err := a.deliver(ctx); err != nil {
		a.logger.Error(ctx, "initial poll failed", "error", err)
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) deliver(ctx context.Context) error {
	results, err := a.source.Results(ctx)
	if err != nil {
		return err
	}

	var firstErr error
	for _, result := range results {
		if err := a.announce.Run(ctx, result.Content); err != nil {
			a.logger.Error(ctx, "result not delivered", "source", result.Source, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := a.deliver(ctx); err != nil {
			a.logger.Error(ctx, "scheduled poll failed", "error", err)
		}
	})
	return err
}
