package codec

import "fmt"

// Nucleotide alphabet. Each symbol carries exactly two bits of payload.
const (
	BaseA = 'A'
	BaseC = 'C'
	BaseG = 'G'
	BaseT = 'T'
)

// nucleotides maps a 2-bit value to its nucleotide.
var nucleotides = [4]byte{BaseA, BaseC, BaseG, BaseT}

// symbolValues maps a nucleotide byte back to its 2-bit value. Entries
// outside the alphabet hold -1 so that corrupt input fails loudly instead
// of decoding to a default symbol.
var symbolValues [256]int8

func init() {
	for i := range symbolValues {
		symbolValues[i] = -1
	}
	symbolValues[BaseA] = 0
	symbolValues[BaseC] = 1
	symbolValues[BaseG] = 2
	symbolValues[BaseT] = 3
}

// EncodeSymbols converts a bit-string into a nucleotide sequence, two
// bits per symbol: 00=A, 01=C, 10=G, 11=T. The bit-string must have even
// length and contain only '0' and '1' characters.
func EncodeSymbols(bits string) (string, error) {
	if len(bits)%2 != 0 {
		return "", fmt.Errorf("%w: bit-string length %d is odd", ErrMisalignedBits, len(bits))
	}
	seq := make([]byte, len(bits)/2)
	for i := 0; i < len(bits); i += 2 {
		hi, err := bitValue(bits[i], i)
		if err != nil {
			return "", err
		}
		lo, err := bitValue(bits[i+1], i+1)
		if err != nil {
			return "", err
		}
		seq[i/2] = nucleotides[hi<<1|lo]
	}
	return string(seq), nil
}

// DecodeSymbols converts a nucleotide sequence back into its bit-string,
// two bits per symbol. Any byte outside {A,C,G,T} fails the decode.
func DecodeSymbols(seq string) (string, error) {
	bits := make([]byte, 2*len(seq))
	for i := 0; i < len(seq); i++ {
		v := symbolValues[seq[i]]
		if v < 0 {
			return "", fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, seq[i], i)
		}
		bits[2*i] = '0' + byte(v>>1)
		bits[2*i+1] = '0' + byte(v&1)
	}
	return string(bits), nil
}

func bitValue(c byte, pos int) (byte, error) {
	if c != '0' && c != '1' {
		return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidBit, c, pos)
	}
	return c - '0', nil
}
