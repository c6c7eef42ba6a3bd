// Package ies holds the information element codecs used by the EPS session
// management messages. Every IE decodes from the start of the slice it is
// handed and reports how many octets it occupies on the wire. A non zero iei
// argument makes the codec check or write the IEI octet in front of the value.
package ies

import (
	"encoding/binary"

	"nas_esm/pkg/nas/codec"
)

// IEIs shared by the ESM messages (TS 24.301 §8.3)
const (
	ProtocolConfigurationOptionsIEI         uint8 = 0x27
	AccessPointNameIEI                      uint8 = 0x28
	T3496ValueIEI                           uint8 = 0x37
	ReAttemptIndicatorIEI                   uint8 = 0x6b
	ExtendedProtocolConfigurationOptionsIEI uint8 = 0x7b
	DevicePropertiesIEI                     uint8 = 0xc0
	EsmCauseIEI                             uint8 = 0x58
)

func ieiLen(iei uint8) int {
	if iei == 0 {
		return 0
	}
	return 1
}

func decodeIEI(name string, buf []byte, iei uint8) (int, error) {
	if iei == 0 {
		return 0, nil
	}
	if len(buf) < 1 {
		return 0, codec.DecodeError(name, codec.ErrBufferTooShort)
	}
	if buf[0] != iei {
		return 0, codec.DecodeError(name, codec.ErrUnexpectedIEI)
	}
	return 1, nil
}

func encodeIEI(name string, buf []byte, iei uint8) (int, error) {
	if iei == 0 {
		return 0, nil
	}
	if len(buf) < 1 {
		return 0, codec.EncodeError(name, codec.ErrBufferTooShort)
	}
	buf[0] = iei
	return 1, nil
}

// decodeLV reads a one octet length followed by its value, starting at
// buf[off]. The length must lie in [min, max].
func decodeLV(name string, buf []byte, off, min, max int) ([]byte, int, error) {
	if len(buf) < off+1 {
		return nil, 0, codec.DecodeError(name, codec.ErrBufferTooShort)
	}
	l := int(buf[off])
	if l < min || l > max {
		return nil, 0, codec.DecodeError(name, codec.ErrInvalidLength)
	}
	end := off + 1 + l
	if len(buf) < end {
		return nil, 0, codec.DecodeError(name, codec.ErrBufferTooShort)
	}
	return buf[off+1 : end], end, nil
}

// decodeLVE is decodeLV with a two octet length.
func decodeLVE(name string, buf []byte, off, min, max int) ([]byte, int, error) {
	if len(buf) < off+2 {
		return nil, 0, codec.DecodeError(name, codec.ErrBufferTooShort)
	}
	l := int(binary.BigEndian.Uint16(buf[off:]))
	if l < min || l > max {
		return nil, 0, codec.DecodeError(name, codec.ErrInvalidLength)
	}
	end := off + 2 + l
	if len(buf) < end {
		return nil, 0, codec.DecodeError(name, codec.ErrBufferTooShort)
	}
	return buf[off+2 : end], end, nil
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
