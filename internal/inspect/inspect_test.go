package inspect

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nas_esm/internal/common/logger"
	"nas_esm/pkg/config"
	"nas_esm/pkg/nas/codec"
	"nas_esm/pkg/nas/esm"
	"nas_esm/pkg/nas/ies"
)

func newTestInspector() *Inspector {
	return New(logger.InitLogger(io.Discard, "trace", nil))
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "comprehension_required", ErrorKind(codec.DecodeError("IE 0x05", codec.ErrComprehensionRequired)))
	assert.Equal(t, "", ErrorKind(errors.New("other")))

	// every kind the config accepts can be produced
	for _, k := range errorKinds {
		assert.Contains(t, config.ErrorKinds, k.kind)
	}
}

func TestDecode(t *testing.T) {
	var out bytes.Buffer
	i := New(logger.InitLogger(&out, "info", map[string]string{"mod": "test"}))

	msg, err := i.Decode([]byte{0x02, 0x07, 0xd5, 0x1a, 0x37, 0x01, 0x21, 0x6b, 0x01, 0x03})
	require.NoError(t, err)
	reject, ok := msg.(*esm.BearerResourceAllocationReject)
	require.True(t, ok)
	assert.Equal(t, ies.EsmCauseInsufficientResources, reject.EsmCause)
	assert.Contains(t, out.String(), "Insufficient resources")
	assert.Contains(t, out.String(), "T3496: 1h0m0s")

	_, err = i.Decode([]byte{0x57, 0x01, 0xe8})
	assert.ErrorIs(t, err, codec.ErrInvalidProtocolDiscriminator)
}

func TestVerify(t *testing.T) {
	testCases := []struct {
		name   string
		vector config.Vector
		passed bool
	}{
		{"round trip", config.Vector{Name: "a", Pdu: "52 01 e8 6f", Message: "ESM status"}, true},
		{"trailing octets ignored", config.Vector{Name: "b", Pdu: "52 01 e8 6f 00"}, true},
		{"expected failure", config.Vector{Name: "c", Pdu: "02 01 c1", Error: "unknown_message_type"}, true},
		{"wrong message", config.Vector{Name: "d", Pdu: "02 0b d9", Message: "ESM status"}, false},
		{"wrong error kind", config.Vector{Name: "e", Pdu: "02 01 c1", Error: "invalid_length"}, false},
		{"unexpected success", config.Vector{Name: "f", Pdu: "02 0b d9", Error: "invalid_length"}, false},
		{"unexpected failure", config.Vector{Name: "g", Pdu: "02 01 c1"}, false},
		// spare half octet of the LBI is not re-encoded
		{"non canonical", config.Vector{Name: "h", Pdu: "02 0a d2 f5"}, false},
	}
	i := newTestInspector()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := i.Verify(tc.vector)
			assert.Equal(t, tc.vector.Name, r.Name)
			assert.Equal(t, tc.passed, r.Passed, r.Reason)
			if !tc.passed {
				assert.NotEmpty(t, r.Reason)
			}
		})
	}
}

func TestVerifyBundledVectors(t *testing.T) {
	cfg, err := config.Load("../../config/vectors.yml")
	require.NoError(t, err)

	ok, results := newTestInspector().VerifyAll(cfg.Vectors)
	for _, r := range results {
		assert.True(t, r.Passed, "%s: %s", r.Name, r.Reason)
	}
	assert.True(t, ok)
	assert.Len(t, results, len(cfg.Vectors))
}
