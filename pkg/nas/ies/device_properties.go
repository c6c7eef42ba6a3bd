package ies

import "nas_esm/pkg/nas/codec"

// 9.9.2.0A Device properties. Type 1 IE: the IEI sits in bits 8-5 of the
// same octet as the value.
type DeviceProperties uint8

const (
	DevicePropertiesMinimumLength = 1
	DevicePropertiesMaximumLength = 1
)

const (
	DevicePropertiesNotLowPriority DeviceProperties = 0
	DevicePropertiesLowPriority    DeviceProperties = 1
)

const devicePropertiesName = "DeviceProperties"

func (d *DeviceProperties) Decode(buf []byte, iei uint8) (int, error) {
	if len(buf) < 1 {
		return 0, codec.DecodeError(devicePropertiesName, codec.ErrBufferTooShort)
	}
	if iei != 0 && buf[0]&0xf0 != iei {
		return 0, codec.DecodeError(devicePropertiesName, codec.ErrUnexpectedIEI)
	}
	*d = DeviceProperties(buf[0] & 0x01)
	return 1, nil
}

func (d DeviceProperties) Encode(buf []byte, iei uint8) (int, error) {
	if d > DevicePropertiesLowPriority {
		return 0, codec.EncodeError(devicePropertiesName, codec.ErrValueOutOfRange)
	}
	if len(buf) < 1 {
		return 0, codec.EncodeError(devicePropertiesName, codec.ErrBufferTooShort)
	}
	buf[0] = iei&0xf0 | uint8(d)
	return 1, nil
}
