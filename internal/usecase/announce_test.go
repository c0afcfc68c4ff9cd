package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"vanity-notify/internal/domain/model"
)

type logLine struct {
	level string
	msg   string
	args  []any
}

type recordingLogger struct {
	mu    sync.Mutex
	lines []logLine
}

func (l *recordingLogger) Info(_ context.Context, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, logLine{level: "info", msg: msg, args: args})
}

func (l *recordingLogger) Error(_ context.Context, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, logLine{level: "error", msg: msg, args: args})
}

type stubNotifier struct {
	err  error
	sent []model.Notification
}

func (s *stubNotifier) Send(_ context.Context, n model.Notification) error {
	s.sent = append(s.sent, n)
	return s.err
}

func TestNewResultNotificationTemplate(t *testing.T) {
	inputs := []string{
		"Address: TXXXXX...\nPrivkey: 5XXXXX...",
		"",
		"unicode ✓ 靓号",
		"  leading and trailing  \n",
	}
	for _, content := range inputs {
		n := NewResultNotification(content)
		want := "以下是地址私钥信息，请妥善保存：\n\n```text\n" + content + "\n```"
		if n.Description != want {
			t.Fatalf("description mismatch:\nwant %q\ngot  %q", want, n.Description)
		}
		if n.Color != 65280 {
			t.Fatalf("expected color 65280 got %d", n.Color)
		}
		if n.Title != "🎉 成功跑出靓号！" {
			t.Fatalf("unexpected title %q", n.Title)
		}
	}
}

func TestRunSuccessLogsOnlySuccess(t *testing.T) {
	logger := &recordingLogger{}
	notifier := &stubNotifier{}

	if err := NewAnnounce(notifier, logger).Run(context.Background(), "Address: T1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("expected one send got %d", len(notifier.sent))
	}
	if len(logger.lines) != 1 {
		t.Fatalf("expected exactly one log line got %d", len(logger.lines))
	}
	if logger.lines[0].level != "info" || logger.lines[0].msg != "webhook sent successfully" {
		t.Fatalf("unexpected log line %+v", logger.lines[0])
	}
}

func TestRunStatusFailureIsReported(t *testing.T) {
	for _, code := range []int{400, 404, 500} {
		logger := &recordingLogger{}
		notifier := &stubNotifier{err: &model.StatusError{Code: code}}

		if err := NewAnnounce(notifier, logger).Run(context.Background(), "x"); err != nil {
			t.Fatalf("status %d should not be an error: %v", code, err)
		}
		if len(logger.lines) != 1 {
			t.Fatalf("expected one log line got %d", len(logger.lines))
		}
		line := logger.lines[0]
		if line.level != "error" || line.msg != "webhook delivery failed" {
			t.Fatalf("unexpected log line %+v", line)
		}
		if got := fmt.Sprint(line.args...); !strings.Contains(got, fmt.Sprint(code)) {
			t.Fatalf("expected code %d in %q", code, got)
		}
	}
}

func TestRunTransportFailurePropagates(t *testing.T) {
	logger := &recordingLogger{}
	cause := errors.New("dial tcp: connection refused")
	notifier := &stubNotifier{err: cause}

	err := NewAnnounce(notifier, logger).Run(context.Background(), "x")
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped transport error got %v", err)
	}
	if len(logger.lines) != 0 {
		t.Fatalf("expected no log lines got %d", len(logger.lines))
	}
}
