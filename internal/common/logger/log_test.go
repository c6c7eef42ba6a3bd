package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevel(t *testing.T) {
	var out bytes.Buffer
	l := InitLogger(&out, "warn", map[string]string{"mod": "test"})

	l.Info("dropped %d", 1)
	assert.Empty(t, out.String())

	l.Warn("kept %d", 2)
	assert.Contains(t, out.String(), "kept 2")
	assert.Contains(t, out.String(), "mod=test")
}

func TestWith(t *testing.T) {
	var out bytes.Buffer
	l := InitLogger(&out, "", nil).With("pdu", "52")
	l.Error("failed")
	assert.Contains(t, out.String(), "pdu=52")
	assert.Contains(t, out.String(), "failed")
}

func TestOutputRotatingFile(t *testing.T) {
	out, closeLog := Output(RotatingFile{})
	assert.Equal(t, os.Stderr, out)
	assert.NoError(t, closeLog())

	path := filepath.Join(t.TempDir(), "esm.log")
	out, closeLog = Output(RotatingFile{Filename: path, MaxSize: 1})
	InitLogger(out, "info", nil).Info("written to file")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
