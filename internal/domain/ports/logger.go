package ports

import "context"

// Logger is the structured logging surface shared by use cases and adapters.
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}
