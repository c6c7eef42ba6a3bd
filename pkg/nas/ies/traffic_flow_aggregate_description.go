package ies

import "nas_esm/pkg/nas/codec"

// 9.9.4.15 Traffic flow aggregate description. It is coded as the traffic
// flow template IE of TS 24.008 §10.5.6.12; the component list of every
// packet filter is kept as raw octets.
type TrafficFlowAggregateDescription struct {
	OperationCode uint8
	PacketFilters []PacketFilter
	// non empty Parameters sets the E bit
	Parameters []TftParameter
}

// PacketFilter is one entry of the packet filter list. For the "delete
// packet filters from existing TFT" operation only Identifier is on the wire.
type PacketFilter struct {
	Direction  uint8
	Identifier uint8
	Precedence uint8
	Contents   []byte
}

type TftParameter struct {
	Identifier uint8
	Contents   []byte
}

const (
	TrafficFlowAggregateDescriptionMinimumLength = 2
	TrafficFlowAggregateDescriptionMaximumLength = 256
)

// TFT operation codes
const (
	TftOpSpare                uint8 = 0
	TftOpCreateNewTft         uint8 = 1
	TftOpDeleteExistingTft    uint8 = 2
	TftOpAddPacketFilters     uint8 = 3
	TftOpReplacePacketFilters uint8 = 4
	TftOpDeletePacketFilters  uint8 = 5
	TftOpNoTftOperation       uint8 = 6
	TftOpReserved             uint8 = 7
)

const (
	PacketFilterDirectionPreRel7       uint8 = 0
	PacketFilterDirectionDownlinkOnly  uint8 = 1
	PacketFilterDirectionUplinkOnly    uint8 = 2
	PacketFilterDirectionBidirectional uint8 = 3
)

// parameter identifiers of the parameters list
const (
	TftParameterAuthorizationToken     uint8 = 0x01
	TftParameterFlowIdentifier         uint8 = 0x02
	TftParameterPacketFilterIdentifier uint8 = 0x03
)

const trafficFlowAggregateDescriptionName = "TrafficFlowAggregateDescription"

func (t *TrafficFlowAggregateDescription) Decode(buf []byte, iei uint8) (int, error) {
	n, err := decodeIEI(trafficFlowAggregateDescriptionName, buf, iei)
	if err != nil {
		return 0, err
	}
	v, end, err := decodeLV(trafficFlowAggregateDescriptionName, buf, n, 1, TrafficFlowAggregateDescriptionMaximumLength-1)
	if err != nil {
		return 0, err
	}

	invalid := codec.DecodeError(trafficFlowAggregateDescriptionName, codec.ErrInvalidLength)
	op := v[0] >> 5
	ebit := v[0]&0x10 != 0
	count := int(v[0] & 0x0f)

	var filters []PacketFilter
	p := 1
	for i := 0; i < count; i++ {
		if op == TftOpDeletePacketFilters {
			if p+1 > len(v) {
				return 0, invalid
			}
			filters = append(filters, PacketFilter{Identifier: v[p] & 0x0f})
			p++
			continue
		}
		if p+3 > len(v) {
			return 0, invalid
		}
		fl := int(v[p+2])
		if p+3+fl > len(v) {
			return 0, invalid
		}
		filters = append(filters, PacketFilter{
			Direction:  v[p] >> 4 & 0x03,
			Identifier: v[p] & 0x0f,
			Precedence: v[p+1],
			Contents:   clone(v[p+3 : p+3+fl]),
		})
		p += 3 + fl
	}

	var params []TftParameter
	if ebit {
		for p < len(v) {
			if p+2 > len(v) {
				return 0, invalid
			}
			pl := int(v[p+1])
			if p+2+pl > len(v) {
				return 0, invalid
			}
			params = append(params, TftParameter{Identifier: v[p], Contents: clone(v[p+2 : p+2+pl])})
			p += 2 + pl
		}
	}
	if p != len(v) {
		return 0, invalid
	}

	t.OperationCode = op
	t.PacketFilters = filters
	t.Parameters = params
	return end, nil
}

func (t TrafficFlowAggregateDescription) Encode(buf []byte, iei uint8) (int, error) {
	outOfRange := codec.EncodeError(trafficFlowAggregateDescriptionName, codec.ErrValueOutOfRange)
	if t.OperationCode > 7 || len(t.PacketFilters) > 0x0f {
		return 0, outOfRange
	}

	l := 1
	for _, f := range t.PacketFilters {
		if f.Identifier > 0x0f || f.Direction > 0x03 || len(f.Contents) > 0xff {
			return 0, outOfRange
		}
		if t.OperationCode == TftOpDeletePacketFilters {
			l++
		} else {
			l += 3 + len(f.Contents)
		}
	}
	for _, prm := range t.Parameters {
		if len(prm.Contents) > 0xff {
			return 0, outOfRange
		}
		l += 2 + len(prm.Contents)
	}
	if l > TrafficFlowAggregateDescriptionMaximumLength-1 {
		return 0, outOfRange
	}
	if len(buf) < ieiLen(iei)+1+l {
		return 0, codec.EncodeError(trafficFlowAggregateDescriptionName, codec.ErrBufferTooShort)
	}

	n, _ := encodeIEI(trafficFlowAggregateDescriptionName, buf, iei)
	buf[n] = uint8(l)
	first := t.OperationCode<<5 | uint8(len(t.PacketFilters))
	if len(t.Parameters) > 0 {
		first |= 0x10
	}
	buf[n+1] = first
	p := n + 2
	for _, f := range t.PacketFilters {
		if t.OperationCode == TftOpDeletePacketFilters {
			buf[p] = f.Identifier
			p++
			continue
		}
		buf[p] = f.Direction<<4 | f.Identifier
		buf[p+1] = f.Precedence
		buf[p+2] = uint8(len(f.Contents))
		p += 3 + copy(buf[p+3:], f.Contents)
	}
	for _, prm := range t.Parameters {
		buf[p] = prm.Identifier
		buf[p+1] = uint8(len(prm.Contents))
		p += 2 + copy(buf[p+2:], prm.Contents)
	}
	return p, nil
}
