package esm

import (
	"nas_esm/pkg/nas/codec"
	"nas_esm/pkg/nas/ies"
)

// 8.3.22 PDN disconnect request
type PdnDisconnectRequest struct {
	Header
	LinkedEpsBearerIdentity ies.LinkedEpsBearerIdentity

	PresenceMask                         codec.PresenceMask
	ProtocolConfigurationOptions         *ies.ProtocolConfigurationOptions
	ExtendedProtocolConfigurationOptions *ies.ExtendedProtocolConfigurationOptions
}

const (
	PdnDisconnectRequestProtocolConfigurationOptionsPresent codec.PresenceMask = 1 << iota
	PdnDisconnectRequestExtendedProtocolConfigurationOptionsPresent
)

const (
	PdnDisconnectRequestMinimumLength = ies.LinkedEpsBearerIdentityMinimumLength

	PdnDisconnectRequestMaximumLength = ies.LinkedEpsBearerIdentityMaximumLength +
		ies.ProtocolConfigurationOptionsMaximumLength +
		ies.ExtendedProtocolConfigurationOptionsMaximumLength
)

const pdnDisconnectRequestName = "PdnDisconnectRequest"

var pdnDisconnectRequestTail = codec.Tail[PdnDisconnectRequest]{
	Policy: codec.TailSkip,
	IEs: []codec.OptionalIE[PdnDisconnectRequest]{
		optionalIE("ProtocolConfigurationOptions",
			ies.ProtocolConfigurationOptionsIEI, codec.FormatTLV,
			PdnDisconnectRequestProtocolConfigurationOptionsPresent,
			ies.ProtocolConfigurationOptionsMaximumLength,
			func(m *PdnDisconnectRequest) **ies.ProtocolConfigurationOptions {
				return &m.ProtocolConfigurationOptions
			}),
		optionalIE("ExtendedProtocolConfigurationOptions",
			ies.ExtendedProtocolConfigurationOptionsIEI, codec.FormatTLVE,
			PdnDisconnectRequestExtendedProtocolConfigurationOptionsPresent,
			ies.ExtendedProtocolConfigurationOptionsMaximumLength,
			func(m *PdnDisconnectRequest) **ies.ExtendedProtocolConfigurationOptions {
				return &m.ExtendedProtocolConfigurationOptions
			}),
	},
}

func NewPdnDisconnectRequest(pti uint8, lbi ies.LinkedEpsBearerIdentity) *PdnDisconnectRequest {
	return &PdnDisconnectRequest{
		Header:                  newHeader(ies.PdnDisconnectRequest, EpsBearerIdentityUnassigned, pti),
		LinkedEpsBearerIdentity: lbi,
	}
}

func (m *PdnDisconnectRequest) Type() ies.MessageType { return ies.PdnDisconnectRequest }
func (m *PdnDisconnectRequest) MinimumLength() int    { return PdnDisconnectRequestMinimumLength }
func (m *PdnDisconnectRequest) MaximumLength() int    { return PdnDisconnectRequestMaximumLength }

func (m *PdnDisconnectRequest) Decode(buf []byte) (int, error) {
	if err := codec.CheckDecode(pdnDisconnectRequestName, buf, PdnDisconnectRequestMinimumLength); err != nil {
		return 0, err
	}
	decoded := 0

	r, err := m.LinkedEpsBearerIdentity.Decode(buf[decoded:], 0)
	if err != nil {
		return 0, err
	}
	decoded += r

	if r, err = pdnDisconnectRequestTail.Decode(m, &m.PresenceMask, buf[decoded:]); err != nil {
		return 0, err
	}
	decoded += r
	return decoded, nil
}

func (m *PdnDisconnectRequest) Encode(buf []byte) (int, error) {
	if err := codec.CheckEncode(pdnDisconnectRequestName, buf, PdnDisconnectRequestMinimumLength); err != nil {
		return 0, err
	}
	encoded := 0

	r, err := m.LinkedEpsBearerIdentity.Encode(buf[encoded:], 0)
	if err != nil {
		return 0, err
	}
	encoded += r

	if r, err = pdnDisconnectRequestTail.Encode(m, m.PresenceMask, buf[encoded:]); err != nil {
		return 0, err
	}
	encoded += r
	return encoded, nil
}
