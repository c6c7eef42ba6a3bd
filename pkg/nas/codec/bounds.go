package codec

// CheckDecode validates buf before any field of element is read from it. It
// must run once at the start of a message decode.
func CheckDecode(element string, buf []byte, min int) error {
	if err := check(buf, min); err != nil {
		return DecodeError(element, err)
	}
	return nil
}

// CheckEncode is the encoding counterpart of CheckDecode.
func CheckEncode(element string, buf []byte, min int) error {
	if err := check(buf, min); err != nil {
		return EncodeError(element, err)
	}
	return nil
}

func check(buf []byte, min int) error {
	if buf == nil || (len(buf) == 0 && min > 0) {
		return ErrInvalidBuffer
	}
	if len(buf) < min {
		return ErrBufferTooShort
	}
	return nil
}
