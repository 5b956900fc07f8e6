package codec

import "fmt"

// BytesToBits renders a byte payload as a textual bit-string, eight
// characters per byte, most-significant bit first.
func BytesToBits(payload []byte) string {
	bits := make([]byte, 0, 8*len(payload))
	for _, b := range payload {
		for shift := 7; shift >= 0; shift-- {
			bits = append(bits, '0'+((b>>shift)&1))
		}
	}
	return string(bits)
}

// BitsToBytes reconstructs the byte payload from a textual bit-string.
// The length must be a multiple of eight; each 8-character group becomes
// one byte, most-significant bit first.
func BitsToBytes(bits string) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, fmt.Errorf("%w: bit-string length %d is not a multiple of 8", ErrMisalignedBits, len(bits))
	}
	payload := make([]byte, len(bits)/8)
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '1':
			payload[i/8] |= 1 << (7 - i%8)
		case '0':
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidBit, bits[i], i)
		}
	}
	return payload, nil
}
