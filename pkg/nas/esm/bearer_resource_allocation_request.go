package esm

import (
	"nas_esm/pkg/nas/codec"
	"nas_esm/pkg/nas/ies"
)

// 8.3.8 Bearer resource allocation request
//
// Sent by the UE to the network to request the allocation of a dedicated
// bearer resource.
type BearerResourceAllocationRequest struct {
	Header
	LinkedEpsBearerIdentity ies.LinkedEpsBearerIdentity
	TrafficFlowAggregate    ies.TrafficFlowAggregateDescription
	RequiredTrafficFlowQos  ies.EpsQualityOfService

	PresenceMask                         codec.PresenceMask
	ProtocolConfigurationOptions         *ies.ProtocolConfigurationOptions
	DeviceProperties                     *ies.DeviceProperties
	ExtendedProtocolConfigurationOptions *ies.ExtendedProtocolConfigurationOptions
}

const (
	BearerResourceAllocationRequestProtocolConfigurationOptionsPresent codec.PresenceMask = 1 << iota
	BearerResourceAllocationRequestDevicePropertiesPresent
	BearerResourceAllocationRequestExtendedProtocolConfigurationOptionsPresent
)

const (
	BearerResourceAllocationRequestProtocolConfigurationOptionsIEI         = ies.ProtocolConfigurationOptionsIEI
	BearerResourceAllocationRequestDevicePropertiesIEI                     = ies.DevicePropertiesIEI
	BearerResourceAllocationRequestExtendedProtocolConfigurationOptionsIEI = ies.ExtendedProtocolConfigurationOptionsIEI
)

const (
	BearerResourceAllocationRequestMinimumLength = ies.LinkedEpsBearerIdentityMinimumLength +
		ies.TrafficFlowAggregateDescriptionMinimumLength +
		ies.EpsQualityOfServiceMinimumLength

	BearerResourceAllocationRequestMaximumLength = ies.LinkedEpsBearerIdentityMaximumLength +
		ies.TrafficFlowAggregateDescriptionMaximumLength +
		ies.EpsQualityOfServiceMaximumLength +
		ies.ProtocolConfigurationOptionsMaximumLength +
		ies.DevicePropertiesMaximumLength +
		ies.ExtendedProtocolConfigurationOptionsMaximumLength
)

const bearerResourceAllocationRequestName = "BearerResourceAllocationRequest"

var bearerResourceAllocationRequestTail = codec.Tail[BearerResourceAllocationRequest]{
	Policy: codec.TailSkip,
	IEs: []codec.OptionalIE[BearerResourceAllocationRequest]{
		optionalIE("ProtocolConfigurationOptions",
			BearerResourceAllocationRequestProtocolConfigurationOptionsIEI, codec.FormatTLV,
			BearerResourceAllocationRequestProtocolConfigurationOptionsPresent,
			ies.ProtocolConfigurationOptionsMaximumLength,
			func(m *BearerResourceAllocationRequest) **ies.ProtocolConfigurationOptions {
				return &m.ProtocolConfigurationOptions
			}),
		optionalIE("DeviceProperties",
			BearerResourceAllocationRequestDevicePropertiesIEI, codec.FormatTV1,
			BearerResourceAllocationRequestDevicePropertiesPresent,
			ies.DevicePropertiesMaximumLength,
			func(m *BearerResourceAllocationRequest) **ies.DeviceProperties {
				return &m.DeviceProperties
			}),
		optionalIE("ExtendedProtocolConfigurationOptions",
			BearerResourceAllocationRequestExtendedProtocolConfigurationOptionsIEI, codec.FormatTLVE,
			BearerResourceAllocationRequestExtendedProtocolConfigurationOptionsPresent,
			ies.ExtendedProtocolConfigurationOptionsMaximumLength,
			func(m *BearerResourceAllocationRequest) **ies.ExtendedProtocolConfigurationOptions {
				return &m.ExtendedProtocolConfigurationOptions
			}),
	},
}

func NewBearerResourceAllocationRequest(pti uint8, lbi ies.LinkedEpsBearerIdentity) *BearerResourceAllocationRequest {
	return &BearerResourceAllocationRequest{
		Header:                  newHeader(ies.BearerResourceAllocationRequest, EpsBearerIdentityUnassigned, pti),
		LinkedEpsBearerIdentity: lbi,
	}
}

func (m *BearerResourceAllocationRequest) Type() ies.MessageType {
	return ies.BearerResourceAllocationRequest
}

func (m *BearerResourceAllocationRequest) MinimumLength() int {
	return BearerResourceAllocationRequestMinimumLength
}

func (m *BearerResourceAllocationRequest) MaximumLength() int {
	return BearerResourceAllocationRequestMaximumLength
}

func (m *BearerResourceAllocationRequest) Decode(buf []byte) (int, error) {
	return DecodeBearerResourceAllocationRequest(m, buf)
}

func (m *BearerResourceAllocationRequest) Encode(buf []byte) (int, error) {
	return EncodeBearerResourceAllocationRequest(m, buf)
}

func DecodeBearerResourceAllocationRequest(m *BearerResourceAllocationRequest, buf []byte) (int, error) {
	if err := codec.CheckDecode(bearerResourceAllocationRequestName, buf, BearerResourceAllocationRequestMinimumLength); err != nil {
		return 0, err
	}
	decoded := 0

	r, err := m.LinkedEpsBearerIdentity.Decode(buf[decoded:], 0)
	if err != nil {
		return 0, err
	}
	decoded += r

	if r, err = m.TrafficFlowAggregate.Decode(buf[decoded:], 0); err != nil {
		return 0, err
	}
	decoded += r

	if r, err = m.RequiredTrafficFlowQos.Decode(buf[decoded:], 0); err != nil {
		return 0, err
	}
	decoded += r

	if r, err = bearerResourceAllocationRequestTail.Decode(m, &m.PresenceMask, buf[decoded:]); err != nil {
		return 0, err
	}
	decoded += r
	return decoded, nil
}

func EncodeBearerResourceAllocationRequest(m *BearerResourceAllocationRequest, buf []byte) (int, error) {
	if err := codec.CheckEncode(bearerResourceAllocationRequestName, buf, BearerResourceAllocationRequestMinimumLength); err != nil {
		return 0, err
	}
	encoded := 0

	r, err := m.LinkedEpsBearerIdentity.Encode(buf[encoded:], 0)
	if err != nil {
		return 0, err
	}
	encoded += r

	if r, err = m.TrafficFlowAggregate.Encode(buf[encoded:], 0); err != nil {
		return 0, err
	}
	encoded += r

	if r, err = m.RequiredTrafficFlowQos.Encode(buf[encoded:], 0); err != nil {
		return 0, err
	}
	encoded += r

	if r, err = bearerResourceAllocationRequestTail.Encode(m, m.PresenceMask, buf[encoded:]); err != nil {
		return 0, err
	}
	encoded += r
	return encoded, nil
}
