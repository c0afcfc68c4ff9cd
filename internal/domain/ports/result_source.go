package ports

import (
	"context"

	"vanity-notify/internal/domain/model"
)

// ResultSource yields generator results that have not been announced yet.
type ResultSource interface {
	Results(ctx context.Context) ([]model.Result, error)
}
