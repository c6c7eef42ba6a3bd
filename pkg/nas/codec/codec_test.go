package codec

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record is a two field message used to drive Tail.
type record struct {
	A *uint8 // TV, IEI 0x30, one value octet
	B *uint8 // TV1, IEI 0xa0
}

const (
	aPresent PresenceMask = 1 << iota
	bPresent
)

func newTail(policy TailPolicy) Tail[record] {
	return Tail[record]{
		Policy: policy,
		IEs: []OptionalIE[record]{
			{
				Name: "A", IEI: 0x30, Format: FormatTV, Bit: aPresent, MaxLength: 2,
				Present: func(m *record) bool { return m.A != nil },
				Decode: func(m *record, buf []byte) (int, error) {
					if len(buf) < 2 {
						return 0, DecodeError("A", ErrBufferTooShort)
					}
					v := buf[1]
					m.A = &v
					return 2, nil
				},
				Encode: func(m *record, buf []byte) (int, error) {
					if len(buf) < 2 {
						return 0, EncodeError("A", ErrBufferTooShort)
					}
					buf[0], buf[1] = 0x30, *m.A
					return 2, nil
				},
			},
			{
				Name: "B", IEI: 0xa0, Format: FormatTV1, Bit: bPresent, MaxLength: 1,
				Present: func(m *record) bool { return m.B != nil },
				Decode: func(m *record, buf []byte) (int, error) {
					v := buf[0] & 0x0f
					m.B = &v
					return 1, nil
				},
				Encode: func(m *record, buf []byte) (int, error) {
					if len(buf) < 1 {
						return 0, EncodeError("B", ErrBufferTooShort)
					}
					buf[0] = 0xa0 | *m.B
					return 1, nil
				},
			},
		},
	}
}

func u8(v uint8) *uint8 { return &v }

func TestCheck(t *testing.T) {
	testCases := []struct {
		name string
		buf  []byte
		min  int
		want error
	}{
		{"nil buffer", nil, 0, ErrInvalidBuffer},
		{"empty buffer", []byte{}, 1, ErrInvalidBuffer},
		{"empty buffer, empty message", []byte{}, 0, nil},
		{"short buffer", []byte{1, 2}, 3, ErrBufferTooShort},
		{"exact", []byte{1, 2, 3}, 3, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckDecode("Msg", tc.buf, tc.min)
			if tc.want == nil {
				assert.NoError(t, err)
				assert.NoError(t, CheckEncode("Msg", tc.buf, tc.min))
				return
			}
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, "Msg", ElementOf(err))

			err = CheckEncode("Msg", tc.buf, tc.min)
			var cerr *Error
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, OpEncode, cerr.Op)
		})
	}
}

func TestErrorFormat(t *testing.T) {
	err := DecodeError("EsmCause", ErrBufferTooShort)
	assert.Equal(t, "decode EsmCause: nas: buffer too short", err.Error())
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", err), ErrBufferTooShort))
	assert.Empty(t, ElementOf(errors.New("plain")))
}

func TestPresenceMask(t *testing.T) {
	var m PresenceMask
	assert.False(t, m.Has(aPresent))
	m.Set(aPresent)
	m.Set(bPresent)
	assert.True(t, m.Has(aPresent))
	assert.True(t, m.Has(bPresent))
	m.Clear(aPresent)
	assert.False(t, m.Has(aPresent))
	assert.True(t, m.Has(bPresent))
}

func TestTailDecode(t *testing.T) {
	testCases := []struct {
		name     string
		policy   TailPolicy
		buf      []byte
		consumed int
		mask     PresenceMask
		a, b     *uint8
	}{
		{"empty", TailSkip, []byte{}, 0, 0, nil, nil},
		{"both in order", TailSkip, []byte{0x30, 0x07, 0xa3}, 3, aPresent | bPresent, u8(7), u8(3)},
		{"reverse order", TailSkip, []byte{0xa3, 0x30, 0x07}, 3, aPresent | bPresent, u8(7), u8(3)},
		{"duplicate keeps first", TailSkip, []byte{0x30, 0x07, 0x30, 0x09}, 4, aPresent, u8(7), nil},
		{"skip unknown TLV", TailSkip, []byte{0x42, 0x02, 0xff, 0xff, 0xa1}, 5, bPresent, nil, u8(1)},
		{"skip unknown TLV-E", TailSkip, []byte{0x78, 0x00, 0x01, 0xff, 0xa1}, 5, bPresent, nil, u8(1)},
		{"skip unknown type 2", TailSkip, []byte{0x90, 0x30, 0x01}, 3, aPresent, u8(1), nil},
		{"stop at unknown", TailStop, []byte{0x30, 0x05, 0x42, 0x01}, 2, aPresent, u8(5), nil},
		{"stop at first octet", TailStop, []byte{0x00, 0x30, 0x05}, 0, 0, nil, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tail := newTail(tc.policy)
			var m record
			var mask PresenceMask
			n, err := tail.Decode(&m, &mask, tc.buf)
			require.NoError(t, err)
			assert.Equal(t, tc.consumed, n)
			assert.Equal(t, tc.mask, mask)
			assert.Equal(t, tc.a, m.A)
			assert.Equal(t, tc.b, m.B)
		})
	}
}

func TestTailDecodeErrors(t *testing.T) {
	testCases := []struct {
		name    string
		buf     []byte
		want    error
		element string
	}{
		{"comprehension required", []byte{0x05, 0x01, 0x00}, ErrComprehensionRequired, "IE 0x05"},
		{"truncated unknown TLV", []byte{0x42, 0x05, 0x00}, ErrBufferTooShort, "IE 0x42"},
		{"truncated unknown TLV length", []byte{0x42}, ErrBufferTooShort, "IE 0x42"},
		{"truncated unknown TLV-E", []byte{0x7c, 0x00}, ErrBufferTooShort, "IE 0x7c"},
		{"truncated known IE", []byte{0x30}, ErrBufferTooShort, "A"},
		{"truncated duplicate", []byte{0x30, 0x01, 0x30}, ErrBufferTooShort, "A"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tail := newTail(TailSkip)
			var m record
			var mask PresenceMask
			n, err := tail.Decode(&m, &mask, tc.buf)
			assert.Zero(t, n)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.element, ElementOf(err))
		})
	}
}

func TestTailMaxLengthWindow(t *testing.T) {
	// the IE decoder only sees MaxLength octets
	tail := newTail(TailSkip)
	var seen int
	tail.IEs[0].Decode = func(m *record, buf []byte) (int, error) {
		seen = len(buf)
		v := buf[1]
		m.A = &v
		return 2, nil
	}
	var m record
	var mask PresenceMask
	_, err := tail.Decode(&m, &mask, []byte{0x30, 0x01, 0xa1, 0xa2})
	require.NoError(t, err)
	assert.Equal(t, 2, seen)
}

func TestTailEncode(t *testing.T) {
	tail := newTail(TailSkip)
	assert.Equal(t, 3, tail.MaximumLength())

	m := record{A: u8(4), B: u8(2)}
	buf := make([]byte, tail.MaximumLength())

	n, err := tail.Encode(&m, aPresent|bPresent, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x30, 0x04, 0xa2}, buf[:n])

	// populated but not flagged: not emitted
	n, err = tail.Encode(&m, bPresent, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xa2}, buf[:n])

	// flagged but not populated
	m.A = nil
	n, err = tail.Encode(&m, aPresent, buf)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, ErrUnpopulatedOptionalField)
	assert.Equal(t, "A", ElementOf(err))

	// IE codec errors come back unchanged
	m.A = u8(1)
	_, err = tail.Encode(&m, aPresent, buf[:1])
	assert.ErrorIs(t, err, ErrBufferTooShort)
	assert.Equal(t, "A", ElementOf(err))
}

func TestFormatOf(t *testing.T) {
	testCases := []struct {
		iei  uint8
		want Format
		err  error
	}{
		{0x80, FormatT, nil},
		{0xc1, FormatT, nil},
		{0x27, FormatTLV, nil},
		{0x6b, FormatTLV, nil},
		{0x7b, FormatTLVE, nil},
		{0x0f, 0, ErrComprehensionRequired},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("0x%02x", tc.iei), func(t *testing.T) {
			f, err := formatOf(tc.iei)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, f)
		})
	}
}
