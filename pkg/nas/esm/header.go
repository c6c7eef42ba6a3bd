package esm

import (
	"nas_esm/pkg/nas/codec"
	"nas_esm/pkg/nas/ies"
)

// TS 24.007 §11.2.3.1.1
const ProtocolDiscriminatorEsm uint8 = 0x2

const HeaderLength = 3

const (
	EpsBearerIdentityUnassigned            uint8 = 0
	ProcedureTransactionIdentityUnassigned uint8 = 0
)

const (
	headerName                = "Header"
	protocolDiscriminatorName = "ProtocolDiscriminator"
	epsBearerIdentityName     = "EpsBearerIdentity"
)

// 9.1 header of a plain ESM message
type Header struct {
	ProtocolDiscriminator        uint8
	EpsBearerIdentity            uint8
	ProcedureTransactionIdentity uint8
	MessageType                  ies.MessageType
}

func (h *Header) GetHeader() *Header {
	return h
}

// packHalfOctets puts low in bits 4-1 and high in bits 8-5 of one octet.
func packHalfOctets(low, high uint8) uint8 {
	return high<<4 | low&0x0f
}

func splitHalfOctets(b uint8) (low, high uint8) {
	return b & 0x0f, b >> 4
}

func DecodeHeader(h *Header, buf []byte) (int, error) {
	if err := codec.CheckDecode(headerName, buf, HeaderLength); err != nil {
		return 0, err
	}
	pd, ebi := splitHalfOctets(buf[0])
	if pd != ProtocolDiscriminatorEsm {
		return 0, codec.DecodeError(protocolDiscriminatorName, codec.ErrInvalidProtocolDiscriminator)
	}
	var mt ies.MessageType
	if _, err := mt.Decode(buf[2:], 0); err != nil {
		return 0, err
	}

	h.ProtocolDiscriminator = pd
	h.EpsBearerIdentity = ebi
	h.ProcedureTransactionIdentity = buf[1]
	h.MessageType = mt
	return HeaderLength, nil
}

func EncodeHeader(h *Header, buf []byte) (int, error) {
	if err := codec.CheckEncode(headerName, buf, HeaderLength); err != nil {
		return 0, err
	}
	if h.ProtocolDiscriminator > 0x0f {
		return 0, codec.EncodeError(protocolDiscriminatorName, codec.ErrValueOutOfRange)
	}
	if h.EpsBearerIdentity > 0x0f {
		return 0, codec.EncodeError(epsBearerIdentityName, codec.ErrValueOutOfRange)
	}
	buf[0] = packHalfOctets(h.ProtocolDiscriminator, h.EpsBearerIdentity)
	buf[1] = h.ProcedureTransactionIdentity
	if _, err := h.MessageType.Encode(buf[2:], 0); err != nil {
		return 0, err
	}
	return HeaderLength, nil
}

func newHeader(t ies.MessageType, ebi, pti uint8) Header {
	return Header{
		ProtocolDiscriminator:        ProtocolDiscriminatorEsm,
		EpsBearerIdentity:            ebi,
		ProcedureTransactionIdentity: pti,
		MessageType:                  t,
	}
}
