package results

import (
	"context"
	"fmt"
	"io"
	"os"

	"vanity-notify/internal/domain/model"
	"vanity-notify/internal/domain/ports"
)

// Static yields a single result read from inline content, a file, or a reader.
type Static struct {
	content string
	path    string
	reader  io.Reader
}

var _ ports.ResultSource = (*Static)(nil)

// NewStatic picks content first, then the file at path, then reader.
func NewStatic(content, path string, reader io.Reader) *Static {
	return &Static{content: content, path: path, reader: reader}
}

// Results returns exactly one result with the content left untouched.
func (s *Static) Results(ctx context.Context) ([]model.Result, error) {
	switch {
	case s.content != "":
		return []model.Result{{Content: s.content, Source: "env"}}, nil
	case s.path != "":
		data, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read result file: %w", err)
		}
		return []model.Result{{Content: string(data), Source: s.path}}, nil
	case s.reader != nil:
		data, err := io.ReadAll(s.reader)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []model.Result{{Content: string(data), Source: "stdin"}}, nil
	default:
		return nil, fmt.Errorf("no result content configured")
	}
}
