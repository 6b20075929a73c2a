package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/dasdy/vilviz/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandlerAddsAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(logging.ContextHandler{Handler: slog.NewJSONHandler(&buf, nil)})

	ctx := logging.PackageCtx("web")
	ctx = logging.AppendCtx(ctx, slog.Int("layer", 3))

	logger.InfoContext(ctx, "rendered")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "rendered", record["msg"])
	assert.Equal(t, "web", record[logging.PackageName])
	assert.InDelta(t, 3, record["layer"], 0)
}

func TestAppendCtxDoesNotShareAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(logging.ContextHandler{Handler: slog.NewJSONHandler(&buf, nil)})

	base := logging.PackageCtx("cmd")
	first := logging.AppendCtx(base, slog.String("file", "a.vil"))
	_ = logging.AppendCtx(base, slog.String("file", "b.vil"))

	logger.InfoContext(first, "loaded")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "a.vil", record["file"])
}

func TestWithAttrsKeepsContext(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(logging.ContextHandler{Handler: slog.NewJSONHandler(&buf, nil)}).With("theme", "dark")
	logger.InfoContext(logging.PackageCtx("viewer"), "selected")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "dark", record["theme"])
	assert.Equal(t, "viewer", record[logging.PackageName])
}

func TestParseLevel(t *testing.T) {
	level, err := logging.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = logging.ParseLevel("loud")
	require.Error(t, err)
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(logging.NewHandler(&buf, slog.LevelInfo, false))
	logger.DebugContext(context.Background(), "hidden")
	logger.InfoContext(logging.PackageCtx("cmd"), "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
