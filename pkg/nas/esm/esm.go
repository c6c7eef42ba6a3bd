// Package esm implements the plain EPS session management messages of
// 3GPP TS 24.301 §8.3.
//
// Every message record embeds the common Header. Its Decode and Encode
// methods handle the message body that follows the three header octets;
// the package level Decode and Encode handle a whole PDU. All codecs return
// the number of octets consumed or produced, or the first error met by one
// of the IE codecs, unchanged.
package esm

import (
	"nas_esm/pkg/nas/codec"
	"nas_esm/pkg/nas/ies"
)

type Message interface {
	GetHeader() *Header
	Type() ies.MessageType
	MinimumLength() int
	MaximumLength() int
	Decode(buf []byte) (int, error)
	Encode(buf []byte) (int, error)
}

const messageName = "EsmMessage"

// New returns an empty record for message type t, or nil when the type has
// no codec in this package.
func New(t ies.MessageType) Message {
	switch t {
	case ies.EsmStatus:
		return &EsmStatus{}
	case ies.BearerResourceAllocationRequest:
		return &BearerResourceAllocationRequest{}
	case ies.BearerResourceAllocationReject:
		return &BearerResourceAllocationReject{}
	case ies.PdnDisconnectRequest:
		return &PdnDisconnectRequest{}
	case ies.EsmInformationRequest:
		return &EsmInformationRequest{}
	case ies.EsmInformationResponse:
		return &EsmInformationResponse{}
	default:
		return nil
	}
}

// Decode decodes a plain ESM PDU. The returned count may be smaller than
// len(buf) when the message type stops at unknown trailing octets.
func Decode(buf []byte) (Message, int, error) {
	var h Header
	n, err := DecodeHeader(&h, buf)
	if err != nil {
		return nil, 0, err
	}
	msg := New(h.MessageType)
	if msg == nil {
		return nil, 0, codec.DecodeError(messageName, codec.ErrUnknownMessageType)
	}
	*msg.GetHeader() = h

	r, err := msg.Decode(buf[n:])
	if err != nil {
		return nil, 0, err
	}
	return msg, n + r, nil
}

func Encode(msg Message, buf []byte) (int, error) {
	h := msg.GetHeader()
	if h.MessageType != msg.Type() {
		return 0, codec.EncodeError(messageName, codec.ErrMessageTypeMismatch)
	}
	if err := codec.CheckEncode(messageName, buf, HeaderLength+msg.MinimumLength()); err != nil {
		return 0, err
	}

	n, err := EncodeHeader(h, buf)
	if err != nil {
		return 0, err
	}
	r, err := msg.Encode(buf[n:])
	if err != nil {
		return 0, err
	}
	return n + r, nil
}

// Marshal encodes msg into a newly allocated slice.
func Marshal(msg Message) ([]byte, error) {
	buf := make([]byte, HeaderLength+msg.MaximumLength())
	n, err := Encode(msg, buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}
