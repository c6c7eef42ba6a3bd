package esm

import (
	"nas_esm/pkg/nas/codec"
	"nas_esm/pkg/nas/ies"
)

// 8.3.15 ESM status
//
// Sent by the network or the UE to report certain error conditions. The
// message has no optional part; octets after the ESM cause are not consumed.
type EsmStatus struct {
	Header
	EsmCause ies.EsmCause
}

const (
	EsmStatusMinimumLength = ies.EsmCauseMinimumLength
	EsmStatusMaximumLength = ies.EsmCauseMaximumLength
)

const esmStatusName = "EsmStatus"

var esmStatusTail = codec.Tail[EsmStatus]{Policy: codec.TailStop}

func NewEsmStatus(ebi, pti uint8, cause ies.EsmCause) *EsmStatus {
	return &EsmStatus{
		Header:   newHeader(ies.EsmStatus, ebi, pti),
		EsmCause: cause,
	}
}

func (m *EsmStatus) Type() ies.MessageType { return ies.EsmStatus }
func (m *EsmStatus) MinimumLength() int    { return EsmStatusMinimumLength }
func (m *EsmStatus) MaximumLength() int    { return EsmStatusMaximumLength }

func (m *EsmStatus) Decode(buf []byte) (int, error) {
	return DecodeEsmStatus(m, buf)
}

func (m *EsmStatus) Encode(buf []byte) (int, error) {
	return EncodeEsmStatus(m, buf)
}

func DecodeEsmStatus(m *EsmStatus, buf []byte) (int, error) {
	if err := codec.CheckDecode(esmStatusName, buf, EsmStatusMinimumLength); err != nil {
		return 0, err
	}
	decoded := 0

	r, err := m.EsmCause.Decode(buf[decoded:], 0)
	if err != nil {
		return 0, err
	}
	decoded += r

	var mask codec.PresenceMask
	if r, err = esmStatusTail.Decode(m, &mask, buf[decoded:]); err != nil {
		return 0, err
	}
	decoded += r
	return decoded, nil
}

func EncodeEsmStatus(m *EsmStatus, buf []byte) (int, error) {
	if err := codec.CheckEncode(esmStatusName, buf, EsmStatusMinimumLength); err != nil {
		return 0, err
	}
	encoded := 0

	r, err := m.EsmCause.Encode(buf[encoded:], 0)
	if err != nil {
		return 0, err
	}
	encoded += r
	return encoded, nil
}
