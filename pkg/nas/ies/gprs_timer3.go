package ies

import (
	"time"

	"nas_esm/pkg/nas/codec"
)

// 10.5.7.4a GPRS Timer 3 (TS 24.008), carried as T3496 value
type GprsTimer3 struct {
	Unit  uint8
	Value uint8
}

const (
	GprsTimer3MinimumLength = 3
	GprsTimer3MaximumLength = 3
)

const (
	GprsTimer3Unit10Minutes uint8 = iota
	GprsTimer3Unit1Hour
	GprsTimer3Unit10Hours
	GprsTimer3Unit2Seconds
	GprsTimer3Unit30Seconds
	GprsTimer3Unit1Minute
	GprsTimer3Unit320Hours
	GprsTimer3Deactivated
)

const gprsTimer3Name = "GprsTimer3"

func (t *GprsTimer3) Decode(buf []byte, iei uint8) (int, error) {
	n, err := decodeIEI(gprsTimer3Name, buf, iei)
	if err != nil {
		return 0, err
	}
	v, end, err := decodeLV(gprsTimer3Name, buf, n, 1, 1)
	if err != nil {
		return 0, err
	}
	t.Unit = v[0] >> 5
	t.Value = v[0] & 0x1f
	return end, nil
}

func (t GprsTimer3) Encode(buf []byte, iei uint8) (int, error) {
	if t.Unit > 7 || t.Value > 0x1f {
		return 0, codec.EncodeError(gprsTimer3Name, codec.ErrValueOutOfRange)
	}
	if len(buf) < ieiLen(iei)+2 {
		return 0, codec.EncodeError(gprsTimer3Name, codec.ErrBufferTooShort)
	}
	n, _ := encodeIEI(gprsTimer3Name, buf, iei)
	buf[n] = 1
	buf[n+1] = t.Unit<<5 | t.Value
	return n + 2, nil
}

// Duration converts the timer to a time.Duration. ok is false when the timer
// is deactivated.
func (t GprsTimer3) Duration() (d time.Duration, ok bool) {
	v := time.Duration(t.Value)
	switch t.Unit {
	case GprsTimer3Unit10Minutes:
		return v * 10 * time.Minute, true
	case GprsTimer3Unit1Hour:
		return v * time.Hour, true
	case GprsTimer3Unit10Hours:
		return v * 10 * time.Hour, true
	case GprsTimer3Unit2Seconds:
		return v * 2 * time.Second, true
	case GprsTimer3Unit30Seconds:
		return v * 30 * time.Second, true
	case GprsTimer3Unit1Minute:
		return v * time.Minute, true
	case GprsTimer3Unit320Hours:
		return v * 320 * time.Hour, true
	default:
		return 0, false
	}
}
