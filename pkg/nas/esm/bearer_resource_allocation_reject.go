package esm

import (
	"nas_esm/pkg/nas/codec"
	"nas_esm/pkg/nas/ies"
)

// 8.3.7 Bearer resource allocation reject
type BearerResourceAllocationReject struct {
	Header
	EsmCause ies.EsmCause

	PresenceMask                         codec.PresenceMask
	ProtocolConfigurationOptions         *ies.ProtocolConfigurationOptions
	T3496Value                           *ies.GprsTimer3
	ReAttemptIndicator                   *ies.ReAttemptIndicator
	ExtendedProtocolConfigurationOptions *ies.ExtendedProtocolConfigurationOptions
}

const (
	BearerResourceAllocationRejectProtocolConfigurationOptionsPresent codec.PresenceMask = 1 << iota
	BearerResourceAllocationRejectT3496ValuePresent
	BearerResourceAllocationRejectReAttemptIndicatorPresent
	BearerResourceAllocationRejectExtendedProtocolConfigurationOptionsPresent
)

const (
	BearerResourceAllocationRejectMinimumLength = ies.EsmCauseMinimumLength

	BearerResourceAllocationRejectMaximumLength = ies.EsmCauseMaximumLength +
		ies.ProtocolConfigurationOptionsMaximumLength +
		ies.GprsTimer3MaximumLength +
		ies.ReAttemptIndicatorMaximumLength +
		ies.ExtendedProtocolConfigurationOptionsMaximumLength
)

const bearerResourceAllocationRejectName = "BearerResourceAllocationReject"

var bearerResourceAllocationRejectTail = codec.Tail[BearerResourceAllocationReject]{
	Policy: codec.TailSkip,
	IEs: []codec.OptionalIE[BearerResourceAllocationReject]{
		optionalIE("ProtocolConfigurationOptions",
			ies.ProtocolConfigurationOptionsIEI, codec.FormatTLV,
			BearerResourceAllocationRejectProtocolConfigurationOptionsPresent,
			ies.ProtocolConfigurationOptionsMaximumLength,
			func(m *BearerResourceAllocationReject) **ies.ProtocolConfigurationOptions {
				return &m.ProtocolConfigurationOptions
			}),
		optionalIE("T3496Value",
			ies.T3496ValueIEI, codec.FormatTLV,
			BearerResourceAllocationRejectT3496ValuePresent,
			ies.GprsTimer3MaximumLength,
			func(m *BearerResourceAllocationReject) **ies.GprsTimer3 {
				return &m.T3496Value
			}),
		optionalIE("ReAttemptIndicator",
			ies.ReAttemptIndicatorIEI, codec.FormatTLV,
			BearerResourceAllocationRejectReAttemptIndicatorPresent,
			ies.ReAttemptIndicatorMaximumLength,
			func(m *BearerResourceAllocationReject) **ies.ReAttemptIndicator {
				return &m.ReAttemptIndicator
			}),
		optionalIE("ExtendedProtocolConfigurationOptions",
			ies.ExtendedProtocolConfigurationOptionsIEI, codec.FormatTLVE,
			BearerResourceAllocationRejectExtendedProtocolConfigurationOptionsPresent,
			ies.ExtendedProtocolConfigurationOptionsMaximumLength,
			func(m *BearerResourceAllocationReject) **ies.ExtendedProtocolConfigurationOptions {
				return &m.ExtendedProtocolConfigurationOptions
			}),
	},
}

func NewBearerResourceAllocationReject(pti uint8, cause ies.EsmCause) *BearerResourceAllocationReject {
	return &BearerResourceAllocationReject{
		Header:   newHeader(ies.BearerResourceAllocationReject, EpsBearerIdentityUnassigned, pti),
		EsmCause: cause,
	}
}

func (m *BearerResourceAllocationReject) Type() ies.MessageType {
	return ies.BearerResourceAllocationReject
}

func (m *BearerResourceAllocationReject) MinimumLength() int {
	return BearerResourceAllocationRejectMinimumLength
}

func (m *BearerResourceAllocationReject) MaximumLength() int {
	return BearerResourceAllocationRejectMaximumLength
}

func (m *BearerResourceAllocationReject) Decode(buf []byte) (int, error) {
	if err := codec.CheckDecode(bearerResourceAllocationRejectName, buf, BearerResourceAllocationRejectMinimumLength); err != nil {
		return 0, err
	}
	decoded := 0

	r, err := m.EsmCause.Decode(buf[decoded:], 0)
	if err != nil {
		return 0, err
	}
	decoded += r

	if r, err = bearerResourceAllocationRejectTail.Decode(m, &m.PresenceMask, buf[decoded:]); err != nil {
		return 0, err
	}
	decoded += r
	return decoded, nil
}

func (m *BearerResourceAllocationReject) Encode(buf []byte) (int, error) {
	if err := codec.CheckEncode(bearerResourceAllocationRejectName, buf, BearerResourceAllocationRejectMinimumLength); err != nil {
		return 0, err
	}
	encoded := 0

	r, err := m.EsmCause.Encode(buf[encoded:], 0)
	if err != nil {
		return 0, err
	}
	encoded += r

	if r, err = bearerResourceAllocationRejectTail.Encode(m, m.PresenceMask, buf[encoded:]); err != nil {
		return 0, err
	}
	encoded += r
	return encoded, nil
}
