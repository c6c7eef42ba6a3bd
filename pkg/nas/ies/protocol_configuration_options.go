package ies

import (
	"encoding/binary"

	"nas_esm/pkg/nas/codec"
)

// 10.5.6.3 Protocol configuration options (TS 24.008)
type ProtocolConfigurationOptions struct {
	// configuration protocol of octet 3, 0 is PPP
	ConfigurationProtocol uint8
	Units                 []PcoUnit
}

// PcoUnit is one protocol or container of the options list.
type PcoUnit struct {
	Id       uint16
	Contents []byte
}

// 9.9.4.26 Extended protocol configuration options. Same contents as the
// protocol configuration options, with a two octet length.
type ExtendedProtocolConfigurationOptions ProtocolConfigurationOptions

const (
	ProtocolConfigurationOptionsMinimumLength = 3
	ProtocolConfigurationOptionsMaximumLength = 253

	ExtendedProtocolConfigurationOptionsMinimumLength = 4
	ExtendedProtocolConfigurationOptionsMaximumLength = 65538
)

// protocol and container identifiers, TS 24.008 table 10.5.154
const (
	PcoIdPcscfIPv6AddressRequest                  uint16 = 0x0001
	PcoIdImCnSubsystemSignalingFlag               uint16 = 0x0002
	PcoIdDnsServerIPv6AddressRequest              uint16 = 0x0003
	PcoIdMsSupportOfNetworkRequestedBearerControl uint16 = 0x0005
	PcoIdDsmipv6HomeAgentAddressRequest           uint16 = 0x0007
	PcoIdIPAddressAllocationViaNasSignalling      uint16 = 0x000a
	PcoIdIPv4AddressAllocationViaDhcpv4           uint16 = 0x000b
	PcoIdPcscfIPv4AddressRequest                  uint16 = 0x000c
	PcoIdDnsServerIPv4AddressRequest              uint16 = 0x000d
	PcoIdMsisdnRequest                            uint16 = 0x000e
	PcoIdIPv4LinkMtuRequest                       uint16 = 0x0010
	PcoIdMsSupportOfLocalAddressInTftIndicator    uint16 = 0x0011
	PcoIdPcscfReselectionSupport                  uint16 = 0x0012
	PcoIdNbifomRequestIndicator                   uint16 = 0x0013
	PcoIdNonIPLinkMtuRequest                      uint16 = 0x0015
	PcoIdAPNRateControlSupportIndicator           uint16 = 0x0016
	PcoIdLcp                                      uint16 = 0xc021
	PcoIdPap                                      uint16 = 0xc023
	PcoIdChap                                     uint16 = 0xc223
	PcoIdIpcp                                     uint16 = 0x8021
)

const (
	protocolConfigurationOptionsName         = "ProtocolConfigurationOptions"
	extendedProtocolConfigurationOptionsName = "ExtendedProtocolConfigurationOptions"
)

func (p *ProtocolConfigurationOptions) Decode(buf []byte, iei uint8) (int, error) {
	n, err := decodeIEI(protocolConfigurationOptionsName, buf, iei)
	if err != nil {
		return 0, err
	}
	v, end, err := decodeLV(protocolConfigurationOptionsName, buf, n, 1, ProtocolConfigurationOptionsMaximumLength-2)
	if err != nil {
		return 0, err
	}
	proto, units, err := decodePcoContents(protocolConfigurationOptionsName, v)
	if err != nil {
		return 0, err
	}
	p.ConfigurationProtocol = proto
	p.Units = units
	return end, nil
}

func (p ProtocolConfigurationOptions) Encode(buf []byte, iei uint8) (int, error) {
	l, err := pcoContentsLength(protocolConfigurationOptionsName, p.ConfigurationProtocol, p.Units, ProtocolConfigurationOptionsMaximumLength-2)
	if err != nil {
		return 0, err
	}
	if len(buf) < ieiLen(iei)+1+l {
		return 0, codec.EncodeError(protocolConfigurationOptionsName, codec.ErrBufferTooShort)
	}
	n, _ := encodeIEI(protocolConfigurationOptionsName, buf, iei)
	buf[n] = uint8(l)
	return n + 1 + putPcoContents(buf[n+1:], p.ConfigurationProtocol, p.Units), nil
}

func (p *ExtendedProtocolConfigurationOptions) Decode(buf []byte, iei uint8) (int, error) {
	n, err := decodeIEI(extendedProtocolConfigurationOptionsName, buf, iei)
	if err != nil {
		return 0, err
	}
	v, end, err := decodeLVE(extendedProtocolConfigurationOptionsName, buf, n, 1, ExtendedProtocolConfigurationOptionsMaximumLength-3)
	if err != nil {
		return 0, err
	}
	proto, units, err := decodePcoContents(extendedProtocolConfigurationOptionsName, v)
	if err != nil {
		return 0, err
	}
	p.ConfigurationProtocol = proto
	p.Units = units
	return end, nil
}

func (p ExtendedProtocolConfigurationOptions) Encode(buf []byte, iei uint8) (int, error) {
	l, err := pcoContentsLength(extendedProtocolConfigurationOptionsName, p.ConfigurationProtocol, p.Units, ExtendedProtocolConfigurationOptionsMaximumLength-3)
	if err != nil {
		return 0, err
	}
	if len(buf) < ieiLen(iei)+2+l {
		return 0, codec.EncodeError(extendedProtocolConfigurationOptionsName, codec.ErrBufferTooShort)
	}
	n, _ := encodeIEI(extendedProtocolConfigurationOptionsName, buf, iei)
	binary.BigEndian.PutUint16(buf[n:], uint16(l))
	return n + 2 + putPcoContents(buf[n+2:], p.ConfigurationProtocol, p.Units), nil
}

// Find returns the contents of the first unit with the given identifier.
func (p *ProtocolConfigurationOptions) Find(id uint16) ([]byte, bool) {
	for _, u := range p.Units {
		if u.Id == id {
			return u.Contents, true
		}
	}
	return nil, false
}

func decodePcoContents(name string, v []byte) (uint8, []PcoUnit, error) {
	// octet 3: ext bit, 4 spare bits, configuration protocol
	proto := v[0] & 0x07
	var units []PcoUnit
	for p := 1; p < len(v); {
		if p+3 > len(v) {
			return 0, nil, codec.DecodeError(name, codec.ErrInvalidLength)
		}
		ul := int(v[p+2])
		if p+3+ul > len(v) {
			return 0, nil, codec.DecodeError(name, codec.ErrInvalidLength)
		}
		units = append(units, PcoUnit{
			Id:       binary.BigEndian.Uint16(v[p:]),
			Contents: clone(v[p+3 : p+3+ul]),
		})
		p += 3 + ul
	}
	return proto, units, nil
}

func pcoContentsLength(name string, proto uint8, units []PcoUnit, max int) (int, error) {
	if proto > 0x07 {
		return 0, codec.EncodeError(name, codec.ErrValueOutOfRange)
	}
	l := 1
	for _, u := range units {
		if len(u.Contents) > 0xff {
			return 0, codec.EncodeError(name, codec.ErrValueOutOfRange)
		}
		l += 3 + len(u.Contents)
	}
	if l > max {
		return 0, codec.EncodeError(name, codec.ErrValueOutOfRange)
	}
	return l, nil
}

func putPcoContents(buf []byte, proto uint8, units []PcoUnit) int {
	buf[0] = 0x80 | proto
	p := 1
	for _, u := range units {
		binary.BigEndian.PutUint16(buf[p:], u.Id)
		buf[p+2] = uint8(len(u.Contents))
		p += 3 + copy(buf[p+3:], u.Contents)
	}
	return p
}
