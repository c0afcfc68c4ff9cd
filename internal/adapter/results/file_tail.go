package results

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"vanity-notify/internal/domain/model"
	"vanity-notify/internal/domain/ports"
)

// FileTail yields blank-line separated records appended to a generator's output file.
// A record is returned once an empty line follows it. Lines holding only
// whitespace belong to the record.
type FileTail struct {
	path   string
	logger ports.Logger

	mu     sync.Mutex
	offset int64
	prev   os.FileInfo
}

var _ ports.ResultSource = (*FileTail)(nil)

// NewFileTail watches path starting from its beginning.
func NewFileTail(path string, logger ports.Logger) *FileTail {
	return &FileTail{path: path, logger: logger}
}

// Results returns the records completed since the previous call.
func (f *FileTail) Results(ctx context.Context) ([]model.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open result file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat result file: %w", err)
	}
	switch {
	case f.prev != nil && !os.SameFile(f.prev, info):
		if f.logger != nil {
			f.logger.Info(ctx, "result file replaced, rereading", "path", f.path)
		}
		f.offset = 0
	case info.Size() < f.offset:
		if f.logger != nil {
			f.logger.Info(ctx, "result file truncated, rereading", "path", f.path)
		}
		f.offset = 0
	}
	f.prev = info

	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek result file: %w", err)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read result file: %w", err)
	}

	records, consumed := splitRecords(string(data))
	f.offset += int64(consumed)

	results := make([]model.Result, 0, len(records))
	for _, record := range records {
		results = append(results, model.Result{Content: record, Source: f.path})
	}
	return results, nil
}

// splitRecords returns the complete records in data and how many bytes they span.
// Bytes after the last blank line stay unconsumed.
func splitRecords(data string) ([]string, int) {
	var (
		records  []string
		current  []string
		consumed int
		pos      int
	)

	for {
		idx := strings.IndexByte(data[pos:], '\n')
		if idx < 0 {
			break
		}
		line := strings.TrimRight(data[pos:pos+idx], "\r")
		pos += idx + 1

		if line == "" {
			if len(current) > 0 {
				records = append(records, strings.Join(current, "\n"))
				current = current[:0]
			}
			consumed = pos
			continue
		}
		current = append(current, line)
	}

	return records, consumed
}
