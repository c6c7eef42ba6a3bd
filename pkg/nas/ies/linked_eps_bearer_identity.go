package ies

import "nas_esm/pkg/nas/codec"

// 9.9.4.6 Linked EPS bearer identity. It is always followed by a spare half
// octet, so the codec handles the whole octet: identity in bits 4-1, spare
// bits 8-5 written as zero and ignored on receipt.
type LinkedEpsBearerIdentity uint8

const (
	LinkedEpsBearerIdentityMinimumLength = 1
	LinkedEpsBearerIdentityMaximumLength = 1
)

const linkedEpsBearerIdentityName = "LinkedEpsBearerIdentity"

func (l *LinkedEpsBearerIdentity) Decode(buf []byte, iei uint8) (int, error) {
	n, err := decodeIEI(linkedEpsBearerIdentityName, buf, iei)
	if err != nil {
		return 0, err
	}
	if len(buf) < n+1 {
		return 0, codec.DecodeError(linkedEpsBearerIdentityName, codec.ErrBufferTooShort)
	}
	*l = LinkedEpsBearerIdentity(buf[n] & 0x0f)
	return n + 1, nil
}

func (l LinkedEpsBearerIdentity) Encode(buf []byte, iei uint8) (int, error) {
	if l > 0x0f {
		return 0, codec.EncodeError(linkedEpsBearerIdentityName, codec.ErrValueOutOfRange)
	}
	if len(buf) < ieiLen(iei)+1 {
		return 0, codec.EncodeError(linkedEpsBearerIdentityName, codec.ErrBufferTooShort)
	}
	n, _ := encodeIEI(linkedEpsBearerIdentityName, buf, iei)
	buf[n] = uint8(l)
	return n + 1, nil
}
