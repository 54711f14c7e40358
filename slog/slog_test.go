package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/instantdoc"
	"github.com/fwojciec/instantdoc/loop"
	"github.com/fwojciec/instantdoc/mock"
	idslog "github.com/fwojciec/instantdoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingLister_ListFiles(t *testing.T) {
	t.Parallel()

	t.Run("logs root, count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FileLister{
			ListFilesFn: func(_ context.Context, _ string) ([]string, error) {
				return []string{"/docs/A.html", "/docs/B.html"}, nil
			},
		}

		lister := idslog.NewLoggingLister(inner, logger)
		paths, err := lister.ListFiles(context.Background(), "/docs")

		require.NoError(t, err)
		assert.Len(t, paths, 2)
		output := buf.String()
		assert.Contains(t, output, "list files")
		assert.Contains(t, output, "root=/docs")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FileLister{
			ListFilesFn: func(_ context.Context, _ string) ([]string, error) {
				return nil, errors.New("permission denied")
			},
		}

		lister := idslog.NewLoggingLister(inner, logger)
		_, err := lister.ListFiles(context.Background(), "/docs")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "permission denied")
	})
}

func TestLoggingLocator_Locate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.RootLocator{
		LocateFn: func(_ context.Context, installDir string) (string, error) {
			return installDir + "/Data/Documentation/en/ScriptReference", nil
		},
	}

	root, err := idslog.NewLoggingLocator(inner, logger).Locate(context.Background(), "/opt/editor")

	require.NoError(t, err)
	assert.Equal(t, "/opt/editor/Data/Documentation/en/ScriptReference", root)
	assert.Contains(t, buf.String(), "locate documentation")
	assert.Contains(t, buf.String(), "install=/opt/editor")
}

func TestLoggingOpener_Open(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	var opened string
	inner := &mock.Opener{
		OpenFn: func(_ context.Context, location string) error {
			opened = location
			return nil
		},
	}

	err := idslog.NewLoggingOpener(inner, logger).Open(context.Background(), "/docs/Mesh.html")

	require.NoError(t, err)
	assert.Equal(t, "/docs/Mesh.html", opened)
	assert.Contains(t, buf.String(), "location=/docs/Mesh.html")
}

func TestLoggingReader_Read(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.DocumentReader{
		ReadFn: func(_ context.Context, id, location string) (*instantdoc.Document, error) {
			return &instantdoc.Document{Identifier: id, Location: location, Content: "hello"}, nil
		},
	}

	doc, err := idslog.NewLoggingReader(inner, logger).Read(context.Background(), "Mesh", "/docs/Mesh.html")

	require.NoError(t, err)
	assert.Equal(t, "Mesh", doc.Identifier)
	assert.Contains(t, buf.String(), "read document")
	assert.Contains(t, buf.String(), "bytes=5")
}

func TestLoggingSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	inner := &mock.Summarizer{
		SummarizeFn: func(_ string) (string, error) {
			return "", errors.New("parse failure")
		},
	}

	_, err := idslog.NewLoggingSummarizer(inner, logger).Summarize("<html>")

	require.Error(t, err)
	assert.Contains(t, buf.String(), "parse failure")
}

func TestLoggingScheduler_LogsCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := loop.New()
	scheduler := idslog.NewLoggingScheduler(l, logger)

	calls := 0
	ticket := scheduler.Register(func() bool {
		calls++
		return calls == 3
	})
	for l.Step() > 0 {
	}

	assert.False(t, ticket.Active())
	assert.Contains(t, buf.String(), "tick work done")
	assert.Contains(t, buf.String(), "ticks=3")
}

func TestLoggingScheduler_ReturnsWrappedTicket(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cancelled := false
	inner := &mock.Ticket{
		CancelFn: func() { cancelled = true },
		ActiveFn: func() bool { return !cancelled },
	}
	var registered instantdoc.TickFunc
	next := &mock.Scheduler{
		RegisterFn: func(fn instantdoc.TickFunc) instantdoc.Ticket {
			registered = fn
			return inner
		},
	}

	ticket := idslog.NewLoggingScheduler(next, logger).Register(func() bool { return false })
	require.NotNil(t, registered)
	assert.False(t, registered())

	ticket.Cancel()

	assert.True(t, cancelled)
	assert.False(t, ticket.Active())
	assert.Empty(t, buf.String())
}
