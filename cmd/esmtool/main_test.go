package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"esmtool", "--log-level", "error"}, args...))
	return out.String(), err
}

func TestEncode(t *testing.T) {
	out, err := run(t, "encode", "--ebi", "5", "--pti", "1", "--cause", "26")
	require.NoError(t, err)
	assert.Equal(t, "5201e81a", strings.TrimSpace(out))
}

func TestEncodeOutOfRange(t *testing.T) {
	_, err := run(t, "encode", "--ebi", "16")
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	_, err := run(t, "decode", "5201e86f")
	assert.NoError(t, err)

	_, err = run(t, "decode", "5701e86f")
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	_, err := run(t, "verify", "--config", "../../config/vectors.yml")
	assert.NoError(t, err)
}
