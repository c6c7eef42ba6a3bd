package ies

import "nas_esm/pkg/nas/codec"

// 9.9.4.3 EPS quality of service
type EpsQualityOfService struct {
	Qci uint8
	// octets 4-7, present when the bearer is a GBR bearer
	BitRates *EpsBitRates
	// octets 8-11, only valid together with BitRates
	BitRatesExt *EpsBitRates
	// octets 12-15, only valid together with BitRatesExt
	BitRatesExt2 *EpsBitRates
}

// EpsBitRates is one group of four bit rate octets. The coding of each octet
// depends on the group it belongs to, see TS 24.301 table 9.9.4.3.1.
type EpsBitRates struct {
	MaxBitRateUplink          uint8
	MaxBitRateDownlink        uint8
	GuaranteedBitRateUplink   uint8
	GuaranteedBitRateDownlink uint8
}

const (
	EpsQualityOfServiceMinimumLength = 2
	EpsQualityOfServiceMaximumLength = 14
)

const epsQualityOfServiceName = "EpsQualityOfService"

func (q *EpsQualityOfService) Decode(buf []byte, iei uint8) (int, error) {
	n, err := decodeIEI(epsQualityOfServiceName, buf, iei)
	if err != nil {
		return 0, err
	}
	v, end, err := decodeLV(epsQualityOfServiceName, buf, n, 1, EpsQualityOfServiceMaximumLength-1)
	if err != nil {
		return 0, err
	}
	if (len(v)-1)%4 != 0 {
		return 0, codec.DecodeError(epsQualityOfServiceName, codec.ErrInvalidLength)
	}

	groups := make([]*EpsBitRates, 0, 3)
	for off := 1; off < len(v); off += 4 {
		groups = append(groups, &EpsBitRates{
			MaxBitRateUplink:          v[off],
			MaxBitRateDownlink:        v[off+1],
			GuaranteedBitRateUplink:   v[off+2],
			GuaranteedBitRateDownlink: v[off+3],
		})
	}
	q.Qci = v[0]
	q.BitRates, q.BitRatesExt, q.BitRatesExt2 = nil, nil, nil
	if len(groups) > 0 {
		q.BitRates = groups[0]
	}
	if len(groups) > 1 {
		q.BitRatesExt = groups[1]
	}
	if len(groups) > 2 {
		q.BitRatesExt2 = groups[2]
	}
	return end, nil
}

func (q EpsQualityOfService) Encode(buf []byte, iei uint8) (int, error) {
	groups := make([]*EpsBitRates, 0, 3)
	for _, g := range []*EpsBitRates{q.BitRates, q.BitRatesExt, q.BitRatesExt2} {
		if g == nil {
			break
		}
		groups = append(groups, g)
	}
	if (q.BitRatesExt != nil && q.BitRates == nil) || (q.BitRatesExt2 != nil && q.BitRatesExt == nil) {
		return 0, codec.EncodeError(epsQualityOfServiceName, codec.ErrValueOutOfRange)
	}

	l := 1 + 4*len(groups)
	if len(buf) < ieiLen(iei)+1+l {
		return 0, codec.EncodeError(epsQualityOfServiceName, codec.ErrBufferTooShort)
	}
	n, _ := encodeIEI(epsQualityOfServiceName, buf, iei)
	buf[n] = uint8(l)
	buf[n+1] = q.Qci
	off := n + 2
	for _, g := range groups {
		buf[off] = g.MaxBitRateUplink
		buf[off+1] = g.MaxBitRateDownlink
		buf[off+2] = g.GuaranteedBitRateUplink
		buf[off+3] = g.GuaranteedBitRateDownlink
		off += 4
	}
	return off, nil
}

// BitRateKbps converts a bit rate octet of the first group (octets 4-7) to
// kbps. Zero is returned for 0xff, which means 0 kbps.
func BitRateKbps(v uint8) uint32 {
	switch {
	case v == 0xff || v == 0:
		return 0
	case v < 0x40:
		return uint32(v)
	case v < 0x80:
		return 64 + uint32(v-0x40)*8
	default:
		return 576 + uint32(v-0x80)*64
	}
}
