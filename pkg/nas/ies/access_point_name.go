package ies

import (
	"strings"

	"nas_esm/pkg/nas/codec"
)

// 10.5.6.1 Access point name (TS 24.008). The value is held in dotted form;
// on the wire every label is preceded by its length.
type AccessPointName string

const (
	AccessPointNameMinimumLength = 3
	AccessPointNameMaximumLength = 102
)

const accessPointNameName = "AccessPointName"

func (a *AccessPointName) Decode(buf []byte, iei uint8) (int, error) {
	n, err := decodeIEI(accessPointNameName, buf, iei)
	if err != nil {
		return 0, err
	}
	v, end, err := decodeLV(accessPointNameName, buf, n, 1, AccessPointNameMaximumLength-2)
	if err != nil {
		return 0, err
	}

	labels := make([]string, 0, 4)
	for p := 0; p < len(v); {
		ll := int(v[p])
		if ll == 0 || p+1+ll > len(v) {
			return 0, codec.DecodeError(accessPointNameName, codec.ErrInvalidLength)
		}
		labels = append(labels, string(v[p+1:p+1+ll]))
		p += 1 + ll
	}
	*a = AccessPointName(strings.Join(labels, "."))
	return end, nil
}

func (a AccessPointName) Encode(buf []byte, iei uint8) (int, error) {
	if a == "" {
		return 0, codec.EncodeError(accessPointNameName, codec.ErrValueOutOfRange)
	}
	labels := strings.Split(string(a), ".")
	l := 0
	for _, label := range labels {
		if len(label) == 0 || len(label) > 63 {
			return 0, codec.EncodeError(accessPointNameName, codec.ErrValueOutOfRange)
		}
		l += 1 + len(label)
	}
	if l > AccessPointNameMaximumLength-2 {
		return 0, codec.EncodeError(accessPointNameName, codec.ErrValueOutOfRange)
	}
	if len(buf) < ieiLen(iei)+1+l {
		return 0, codec.EncodeError(accessPointNameName, codec.ErrBufferTooShort)
	}

	n, _ := encodeIEI(accessPointNameName, buf, iei)
	buf[n] = uint8(l)
	p := n + 1
	for _, label := range labels {
		buf[p] = uint8(len(label))
		p += 1 + copy(buf[p+1:], label)
	}
	return p, nil
}
