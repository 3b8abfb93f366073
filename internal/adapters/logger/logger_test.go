package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/breeze/internal/adapters/logger"
	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden")
	lg.Info("built app.css")
	lg.Warn("no entries")

	assert.Equal(t, "built app.css\n! no entries\n", buf.String())
}

func TestLogger_Verbose(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.SetVerbose(true)
	lg.Debug("app.css: full rebuild")
	lg.SetVerbose(false)
	lg.Debug("dropped")

	assert.Equal(t, "app.css: full rebuild\n", buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.With(zerr.Wrap(domain.ErrPluginNotFound, domain.ErrCompilerConstruction.Error()), "input", "app.css")
	err = zerr.With(err, "line", 3)
	lg.Error(err)

	goldie.New(t).Assert(t, "error_chain", buf.Bytes())
}

func TestLogger_ErrorStandard(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.New("plain failure"))
	lg.Error(nil)

	assert.Equal(t, "✗ Error: plain failure\n", buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("hello")
	lg.Error(zerr.With(zerr.Wrap(domain.ErrFileNotFound, "stat"), "path", "/tmp/app.css"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "hello", info["msg"])

	var failure map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "stat: file not found", failure["msg"])
	assert.Equal(t, "/tmp/app.css", failure["path"])
}

func TestLogger_SetOutputKeepsMode(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	var buf bytes.Buffer
	lg.SetOutput(&buf)
	lg.Info("still json")

	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
