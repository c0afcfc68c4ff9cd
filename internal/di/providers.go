package di

import (
	"log/slog"
	"net/http"
	"os"

	"vanity-notify/internal/adapter/discord"
	"vanity-notify/internal/adapter/logging"
	"vanity-notify/internal/adapter/results"
	"vanity-notify/internal/adapter/transport"
	"vanity-notify/internal/config"
	"vanity-notify/internal/domain/ports"
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewJSON(os.Stdout, cfg.LogLevel)
}

func provideHTTPClient(cfg *config.Config) *http.Client {
	return transport.NewHTTPClient(cfg.RequestTimeout, cfg.ProxyURL)
}

func provideNotifier(cfg *config.Config, client *http.Client) ports.Notifier {
	return discord.NewWebhook(cfg.DiscordWebhookURL, client)
}

func provideResultSource(cfg *config.Config, logger ports.Logger) ports.ResultSource {
	if cfg.Watch() {
		return results.NewFileTail(cfg.ResultFile, logger)
	}
	return results.NewStatic(cfg.ResultContent, cfg.ResultFile, os.Stdin)
}

func provideSchedule(cfg *config.Config) string {
	return cfg.ScheduleCron
}
