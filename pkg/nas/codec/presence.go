package codec

// PresenceMask has one bit per optional IE of a message. The bit assignment is
// defined by each message type.
type PresenceMask uint32

func (m PresenceMask) Has(bit PresenceMask) bool {
	return m&bit != 0
}

func (m *PresenceMask) Set(bit PresenceMask) {
	*m |= bit
}

func (m *PresenceMask) Clear(bit PresenceMask) {
	*m &^= bit
}
