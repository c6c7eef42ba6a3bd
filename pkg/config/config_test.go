package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vectors.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
vectors:
  - name: status
    message: ESM status
    pdu: 52 01 e8 6f
  - name: short
    pdu: 52 01 e8
    error: invalid_buffer
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.Len(t, cfg.Vectors, 2)

	b, err := cfg.Vectors[0].Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x52, 0x01, 0xe8, 0x6f}, b)
	assert.Equal(t, "invalid_buffer", cfg.Vectors[1].Error)
}

func TestLoadBundledVectors(t *testing.T) {
	cfg, err := Load("../../config/vectors.yml")
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Vectors)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorContains(t, err, "read config file")

	_, err = Load(writeConfig(t, "vectors: 5"))
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		vectors []Vector
		err     string
	}{
		{"valid", []Vector{{Name: "a", Pdu: "02 0b d9"}}, ""},
		{"missing name", []Vector{{Pdu: "02"}}, "vectors[0].name is required"},
		{"missing pdu", []Vector{{Name: "a"}}, "vectors[0].pdu is required"},
		{"duplicate name", []Vector{{Name: "a", Pdu: "02"}, {Name: "a", Pdu: "03"}}, "vectors[1].name \"a\" is duplicated"},
		{"bad hex", []Vector{{Name: "a", Pdu: "0x02"}}, "bad pdu"},
		{"odd hex", []Vector{{Name: "a", Pdu: "02 0"}}, "bad pdu"},
		{"unknown error kind", []Vector{{Name: "a", Pdu: "02", Error: "oops"}}, "vectors[0].error \"oops\" is unknown"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{Vectors: tc.vectors}
			err := cfg.Validate()
			if tc.err == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.err)
		})
	}

	cfg := Config{Log: LogConfig{File: "esm.log", MaxAge: -1}}
	assert.ErrorContains(t, cfg.Validate(), "must not be negative")
}
