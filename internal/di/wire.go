//go:build wireinject

package di

import (
	"github.com/google/wire"

	"vanity-notify/internal/adapter/logging"
	"vanity-notify/internal/app"
	"vanity-notify/internal/config"
	"vanity-notify/internal/domain/ports"
	"vanity-notify/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideHTTPClient,
		provideNotifier,
		provideResultSource,
		usecase.NewAnnounce,
		provideSchedule,
		app.New,
	)
	return nil, nil
}
