package usecase

import (
	"context"
	"errors"
	"fmt"

	"vanity-notify/internal/domain/model"
	"vanity-notify/internal/domain/ports"
)

const (
	resultTitle = "🎉 成功跑出靓号！"
	resultColor = 0x00FF00 // green, 65280
	// content is placed verbatim inside the fence; a ``` in it breaks the rendering.
	resultTemplate = "以下是地址私钥信息，请妥善保存：\n\n```text\n%s\n```"
)

// Announce delivers generator results to the configured notifier.
type Announce struct {
	notifier ports.Notifier
	logger   ports.Logger
}

// NewAnnounce constructs an Announce use case.
func NewAnnounce(notifier ports.Notifier, logger ports.Logger) *Announce {
	return &Announce{
		notifier: notifier,
		logger:   logger,
	}
}

// NewResultNotification builds the embed-ready notification for content.
func NewResultNotification(content string) model.Notification {
	return model.Notification{
		Title:       resultTitle,
		Description: fmt.Sprintf(resultTemplate, content),
		Color:       resultColor,
	}
}

// Run sends content once. A rejected delivery is logged and is not an error;
// transport failures are returned.
func (a *Announce) Run(ctx context.Context, content string) error {
	err := a.notifier.Send(ctx, NewResultNotification(content))

	var statusErr *model.StatusError
	switch {
	case err == nil:
		a.logger.Info(ctx, "webhook sent successfully")
		return nil
	case errors.As(err, &statusErr):
		a.logger.Error(ctx, "webhook delivery failed", "status", statusErr.Code)
		return nil
	default:
		return fmt.Errorf("send notification: %w", err)
	}
}
