package codec

import (
	"encoding/binary"
	"fmt"
)

// Format is the TS 24.007 §11.2.1.1 type of an optional IE.
type Format uint8

const (
	FormatTV1  Format = iota // type 1: 4 bit IEI + 4 bit value
	FormatT                  // type 2: IEI only
	FormatTV                 // type 3: IEI + fixed length value
	FormatTLV                // type 4: IEI + 1 octet length
	FormatTLVE               // type 6: IEI + 2 octet length
)

// TailPolicy decides what a message does with an IEI it does not know.
type TailPolicy uint8

const (
	// TailSkip steps over unknown IEs using the TS 24.007 §11.2.4 IEI coding
	// and keeps decoding. Unknown comprehension required IEs are an error.
	TailSkip TailPolicy = iota
	// TailStop ends the optional part at the first unknown octet and leaves
	// the rest of the buffer unconsumed.
	TailStop
)

// OptionalIE is one row of a message's optional IE table.
type OptionalIE[M any] struct {
	Name      string
	IEI       uint8 // high nibble only for FormatTV1
	Format    Format
	Bit       PresenceMask
	MaxLength int // including the IEI octet

	Present func(m *M) bool
	Decode  func(m *M, buf []byte) (int, error)
	Encode  func(m *M, buf []byte) (int, error)
}

// Tail is the static optional IE table of a message type. Encoding follows
// the order of IEs.
type Tail[M any] struct {
	Policy TailPolicy
	IEs    []OptionalIE[M]
}

func (t *Tail[M]) lookup(iei uint8) int {
	for i := range t.IEs {
		ie := &t.IEs[i]
		if ie.Format == FormatTV1 {
			if iei&0xf0 == ie.IEI {
				return i
			}
		} else if iei == ie.IEI {
			return i
		}
	}
	return -1
}

// MaximumLength is the sum of every optional IE's maximum length.
func (t *Tail[M]) MaximumLength() int {
	total := 0
	for i := range t.IEs {
		total += t.IEs[i].MaxLength
	}
	return total
}

// Decode consumes optional IEs from buf until it is exhausted, or until the
// policy stops at an unknown IEI. Bits of mask are set for every decoded IE;
// IEs absent from buf are left untouched.
func (t *Tail[M]) Decode(m *M, mask *PresenceMask, buf []byte) (int, error) {
	var seen PresenceMask
	n := 0
	for n < len(buf) {
		iei := buf[n]
		i := t.lookup(iei)
		if i < 0 {
			if t.Policy == TailStop {
				return n, nil
			}
			format, err := formatOf(iei)
			if err != nil {
				return 0, DecodeError(fmt.Sprintf("IE 0x%02x", iei), err)
			}
			skipped, err := span(format, buf[n:], 1)
			if err != nil {
				return 0, DecodeError(fmt.Sprintf("IE 0x%02x", iei), err)
			}
			n += skipped
			continue
		}

		ie := &t.IEs[i]
		if seen.Has(ie.Bit) {
			// TS 24.301 §7.6.3: only the first occurrence is handled
			skipped, err := span(ie.Format, buf[n:], ie.MaxLength)
			if err != nil {
				return 0, DecodeError(ie.Name, err)
			}
			n += skipped
			continue
		}

		rest := buf[n:]
		if ie.MaxLength > 0 && len(rest) > ie.MaxLength {
			rest = rest[:ie.MaxLength]
		}
		decoded, err := ie.Decode(m, rest)
		if err != nil {
			return 0, err
		}
		seen.Set(ie.Bit)
		mask.Set(ie.Bit)
		n += decoded
	}
	return n, nil
}

// Encode writes every IE whose bit is set in mask as IEI || value.
func (t *Tail[M]) Encode(m *M, mask PresenceMask, buf []byte) (int, error) {
	n := 0
	for i := range t.IEs {
		ie := &t.IEs[i]
		if !mask.Has(ie.Bit) {
			continue
		}
		if !ie.Present(m) {
			return 0, EncodeError(ie.Name, ErrUnpopulatedOptionalField)
		}
		encoded, err := ie.Encode(m, buf[n:])
		if err != nil {
			return 0, err
		}
		n += encoded
	}
	return n, nil
}

// formatOf derives the format of an IE this side does not know from its IEI.
func formatOf(iei uint8) (Format, error) {
	switch {
	case iei&0x80 != 0:
		return FormatT, nil
	case iei&0xf0 == 0x00:
		return 0, ErrComprehensionRequired
	case iei&0xf0 == 0x70:
		return FormatTLVE, nil
	default:
		return FormatTLV, nil
	}
}

// span returns the number of octets the IE at the start of buf occupies.
// fixed is the length of a FormatTV IE.
func span(format Format, buf []byte, fixed int) (int, error) {
	var l int
	switch format {
	case FormatTV1, FormatT:
		l = 1
	case FormatTV:
		l = fixed
	case FormatTLV:
		if len(buf) < 2 {
			return 0, ErrBufferTooShort
		}
		l = 2 + int(buf[1])
	case FormatTLVE:
		if len(buf) < 3 {
			return 0, ErrBufferTooShort
		}
		l = 3 + int(binary.BigEndian.Uint16(buf[1:3]))
	}
	if l > len(buf) {
		return 0, ErrBufferTooShort
	}
	return l, nil
}
