package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"crimson/config"
	deliverycontext "crimson/internal/delivery/context"
	"crimson/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBufferedQueryLogger(debug bool) (*queryLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg).(*queryLogger), buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}

	return lines
}

func sqlFn() (string, int64) {
	return "SELECT * FROM listings", 3
}

func TestQueryLogger_Trace(t *testing.T) {
	t.Run("failed query uses the request logger", func(t *testing.T) {
		l, buf := newBufferedQueryLogger(false)
		ctx := deliverycontext.WithLogger(context.Background(), l.base.With(slog.String("request_id", "req-9")))

		l.Trace(ctx, time.Now(), sqlFn, errors.New("connection reset"))

		lines := logLines(t, buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "query failed", lines[0]["msg"])
		assert.Equal(t, "ERROR", lines[0]["level"])
		assert.Equal(t, "req-9", lines[0]["request_id"])
		assert.Equal(t, "SELECT * FROM listings", lines[0]["sql"])
	})

	t.Run("record not found is not logged", func(t *testing.T) {
		l, buf := newBufferedQueryLogger(false)

		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow query warns", func(t *testing.T) {
		l, buf := newBufferedQueryLogger(false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		lines := logLines(t, buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "slow query", lines[0]["msg"])
		assert.Equal(t, "WARN", lines[0]["level"])
	})

	t.Run("fast queries only in debug", func(t *testing.T) {
		quiet, quietBuf := newBufferedQueryLogger(false)
		quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, quietBuf.String())

		verbose, verboseBuf := newBufferedQueryLogger(true)
		verbose.Trace(context.Background(), time.Now(), sqlFn, nil)
		lines := logLines(t, verboseBuf)
		require.Len(t, lines, 1)
		assert.Equal(t, "query", lines[0]["msg"])
	})
}
