package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log     LogConfig `yaml:"log"`
	Vectors []Vector  `yaml:"vectors"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// File, when set, also writes the log to a rotated file.
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"maxSize"` // megabytes
	MaxBackups int    `yaml:"maxBackups"`
	MaxAge     int    `yaml:"maxAge"` // days
	Compress   bool   `yaml:"compress"`
}

// Vector is one ESM PDU checked by the verify command. A vector with Error
// set must fail to decode with that error; otherwise it must decode to
// Message and re-encode to the same octets.
type Vector struct {
	Name    string `yaml:"name"`
	Pdu     string `yaml:"pdu"`     // hex, spaces allowed
	Message string `yaml:"message"` // expected message type name, optional
	Error   string `yaml:"error"`   // expected error kind, optional
}

// known values of Vector.Error
var ErrorKinds = []string{
	"invalid_buffer",
	"buffer_too_short",
	"invalid_length",
	"value_out_of_range",
	"unexpected_iei",
	"comprehension_required",
	"invalid_protocol_discriminator",
	"unknown_message_type",
}

// Bytes decodes the hex PDU of the vector.
func (v *Vector) Bytes() ([]byte, error) {
	s := strings.Join(strings.Fields(v.Pdu), "")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("vector %q: bad pdu: %w", v.Name, err)
	}
	return b, nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		return fmt.Errorf("log rotation limits must not be negative")
	}
	names := make(map[string]bool, len(c.Vectors))
	for i := range c.Vectors {
		v := &c.Vectors[i]
		if v.Name == "" {
			return fmt.Errorf("vectors[%d].name is required", i)
		}
		if names[v.Name] {
			return fmt.Errorf("vectors[%d].name %q is duplicated", i, v.Name)
		}
		names[v.Name] = true
		if v.Pdu == "" {
			return fmt.Errorf("vectors[%d].pdu is required", i)
		}
		if _, err := v.Bytes(); err != nil {
			return err
		}
		if v.Error != "" && !knownErrorKind(v.Error) {
			return fmt.Errorf("vectors[%d].error %q is unknown", i, v.Error)
		}
	}
	return nil
}

func knownErrorKind(kind string) bool {
	for _, k := range ErrorKinds {
		if k == kind {
			return true
		}
	}
	return false
}
