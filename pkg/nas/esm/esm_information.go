package esm

import (
	"nas_esm/pkg/nas/codec"
	"nas_esm/pkg/nas/ies"
)

// 8.3.13 ESM information request. The message is the header alone.
type EsmInformationRequest struct {
	Header
}

const (
	EsmInformationRequestMinimumLength = 0
	EsmInformationRequestMaximumLength = 0
)

const esmInformationRequestName = "EsmInformationRequest"

var esmInformationRequestTail = codec.Tail[EsmInformationRequest]{Policy: codec.TailStop}

func NewEsmInformationRequest(pti uint8) *EsmInformationRequest {
	return &EsmInformationRequest{
		Header: newHeader(ies.EsmInformationRequest, EpsBearerIdentityUnassigned, pti),
	}
}

func (m *EsmInformationRequest) Type() ies.MessageType { return ies.EsmInformationRequest }
func (m *EsmInformationRequest) MinimumLength() int    { return EsmInformationRequestMinimumLength }
func (m *EsmInformationRequest) MaximumLength() int    { return EsmInformationRequestMaximumLength }

func (m *EsmInformationRequest) Decode(buf []byte) (int, error) {
	if err := codec.CheckDecode(esmInformationRequestName, buf, EsmInformationRequestMinimumLength); err != nil {
		return 0, err
	}
	var mask codec.PresenceMask
	return esmInformationRequestTail.Decode(m, &mask, buf)
}

func (m *EsmInformationRequest) Encode(buf []byte) (int, error) {
	if err := codec.CheckEncode(esmInformationRequestName, buf, EsmInformationRequestMinimumLength); err != nil {
		return 0, err
	}
	return 0, nil
}

// 8.3.14 ESM information response
type EsmInformationResponse struct {
	Header

	PresenceMask                         codec.PresenceMask
	AccessPointName                      *ies.AccessPointName
	ProtocolConfigurationOptions         *ies.ProtocolConfigurationOptions
	ExtendedProtocolConfigurationOptions *ies.ExtendedProtocolConfigurationOptions
}

const (
	EsmInformationResponseAccessPointNamePresent codec.PresenceMask = 1 << iota
	EsmInformationResponseProtocolConfigurationOptionsPresent
	EsmInformationResponseExtendedProtocolConfigurationOptionsPresent
)

const (
	EsmInformationResponseMinimumLength = 0

	EsmInformationResponseMaximumLength = ies.AccessPointNameMaximumLength +
		ies.ProtocolConfigurationOptionsMaximumLength +
		ies.ExtendedProtocolConfigurationOptionsMaximumLength
)

const esmInformationResponseName = "EsmInformationResponse"

var esmInformationResponseTail = codec.Tail[EsmInformationResponse]{
	Policy: codec.TailSkip,
	IEs: []codec.OptionalIE[EsmInformationResponse]{
		optionalIE("AccessPointName",
			ies.AccessPointNameIEI, codec.FormatTLV,
			EsmInformationResponseAccessPointNamePresent,
			ies.AccessPointNameMaximumLength,
			func(m *EsmInformationResponse) **ies.AccessPointName {
				return &m.AccessPointName
			}),
		optionalIE("ProtocolConfigurationOptions",
			ies.ProtocolConfigurationOptionsIEI, codec.FormatTLV,
			EsmInformationResponseProtocolConfigurationOptionsPresent,
			ies.ProtocolConfigurationOptionsMaximumLength,
			func(m *EsmInformationResponse) **ies.ProtocolConfigurationOptions {
				return &m.ProtocolConfigurationOptions
			}),
		optionalIE("ExtendedProtocolConfigurationOptions",
			ies.ExtendedProtocolConfigurationOptionsIEI, codec.FormatTLVE,
			EsmInformationResponseExtendedProtocolConfigurationOptionsPresent,
			ies.ExtendedProtocolConfigurationOptionsMaximumLength,
			func(m *EsmInformationResponse) **ies.ExtendedProtocolConfigurationOptions {
				return &m.ExtendedProtocolConfigurationOptions
			}),
	},
}

func NewEsmInformationResponse(pti uint8) *EsmInformationResponse {
	return &EsmInformationResponse{
		Header: newHeader(ies.EsmInformationResponse, EpsBearerIdentityUnassigned, pti),
	}
}

func (m *EsmInformationResponse) Type() ies.MessageType { return ies.EsmInformationResponse }
func (m *EsmInformationResponse) MinimumLength() int    { return EsmInformationResponseMinimumLength }
func (m *EsmInformationResponse) MaximumLength() int    { return EsmInformationResponseMaximumLength }

func (m *EsmInformationResponse) Decode(buf []byte) (int, error) {
	if err := codec.CheckDecode(esmInformationResponseName, buf, EsmInformationResponseMinimumLength); err != nil {
		return 0, err
	}
	return esmInformationResponseTail.Decode(m, &m.PresenceMask, buf)
}

func (m *EsmInformationResponse) Encode(buf []byte) (int, error) {
	if err := codec.CheckEncode(esmInformationResponseName, buf, EsmInformationResponseMinimumLength); err != nil {
		return 0, err
	}
	return esmInformationResponseTail.Encode(m, m.PresenceMask, buf)
}
