package ies

import "nas_esm/pkg/nas/codec"

// 9.9.4.13A Re-attempt indicator
type ReAttemptIndicator struct {
	// RATC set: the UE may not re-attempt the procedure in A/Gb or Iu mode
	Ratc bool
	// EPLMNC set: the UE may not re-attempt in an equivalent PLMN
	Eplmnc bool
}

const (
	ReAttemptIndicatorMinimumLength = 3
	ReAttemptIndicatorMaximumLength = 3
)

const reAttemptIndicatorName = "ReAttemptIndicator"

func (r *ReAttemptIndicator) Decode(buf []byte, iei uint8) (int, error) {
	n, err := decodeIEI(reAttemptIndicatorName, buf, iei)
	if err != nil {
		return 0, err
	}
	v, end, err := decodeLV(reAttemptIndicatorName, buf, n, 1, 1)
	if err != nil {
		return 0, err
	}
	r.Ratc = v[0]&0x01 != 0
	r.Eplmnc = v[0]&0x02 != 0
	return end, nil
}

func (r ReAttemptIndicator) Encode(buf []byte, iei uint8) (int, error) {
	if len(buf) < ieiLen(iei)+2 {
		return 0, codec.EncodeError(reAttemptIndicatorName, codec.ErrBufferTooShort)
	}
	n, _ := encodeIEI(reAttemptIndicatorName, buf, iei)
	var v uint8
	if r.Ratc {
		v |= 0x01
	}
	if r.Eplmnc {
		v |= 0x02
	}
	buf[n] = 1
	buf[n+1] = v
	return n + 2, nil
}
