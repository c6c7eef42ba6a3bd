package esm

import "nas_esm/pkg/nas/codec"

type valueDecoder[V any] interface {
	*V
	Decode(buf []byte, iei uint8) (int, error)
}

type valueEncoder interface {
	Encode(buf []byte, iei uint8) (int, error)
}

// optionalIE builds the table row binding an optional pointer field of
// message M to the codec of its IE.
func optionalIE[M any, V valueEncoder, PV valueDecoder[V]](
	name string,
	iei uint8,
	format codec.Format,
	bit codec.PresenceMask,
	maxLength int,
	field func(m *M) **V,
) codec.OptionalIE[M] {
	return codec.OptionalIE[M]{
		Name:      name,
		IEI:       iei,
		Format:    format,
		Bit:       bit,
		MaxLength: maxLength,
		Present: func(m *M) bool {
			return *field(m) != nil
		},
		Decode: func(m *M, buf []byte) (int, error) {
			v := new(V)
			n, err := PV(v).Decode(buf, iei)
			if err != nil {
				return 0, err
			}
			*field(m) = v
			return n, nil
		},
		Encode: func(m *M, buf []byte) (int, error) {
			return (**field(m)).Encode(buf, iei)
		},
	}
}
