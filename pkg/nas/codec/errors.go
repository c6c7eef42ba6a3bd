package codec

import (
	"errors"
	"fmt"
)

// Op tells whether an error happened while decoding or encoding.
type Op string

const (
	OpDecode Op = "decode"
	OpEncode Op = "encode"
)

var (
	ErrInvalidBuffer            = errors.New("nas: invalid buffer")
	ErrBufferTooShort           = errors.New("nas: buffer too short")
	ErrInvalidLength            = errors.New("nas: invalid length")
	ErrValueOutOfRange          = errors.New("nas: value out of range")
	ErrUnexpectedIEI            = errors.New("nas: unexpected IEI")
	ErrUnpopulatedOptionalField = errors.New("nas: optional field flagged present but not populated")
	ErrComprehensionRequired    = errors.New("nas: unknown comprehension required IE")

	ErrInvalidProtocolDiscriminator = errors.New("nas: invalid protocol discriminator")
	ErrUnknownMessageType           = errors.New("nas: unknown message type")
	ErrMessageTypeMismatch          = errors.New("nas: message type does not match record")
)

// Error is returned by every decoder and encoder in the nas packages. Element
// names the IE or message that failed, so callers can tell an EsmCause failure
// from a TrafficFlowAggregateDescription failure.
type Error struct {
	Op      Op
	Element string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Element, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// DecodeError builds the error a decoder of element returns.
func DecodeError(element string, err error) *Error {
	return &Error{Op: OpDecode, Element: element, Err: err}
}

// EncodeError builds the error an encoder of element returns.
func EncodeError(element string, err error) *Error {
	return &Error{Op: OpEncode, Element: element, Err: err}
}

// ElementOf returns the name of the element that produced err, or "" if err
// did not come from a codec.
func ElementOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Element
	}
	return ""
}
