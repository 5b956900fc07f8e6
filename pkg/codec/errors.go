package codec

// Errors
var (
	ErrInvalidSymbol   = &WireError{"invalid nucleotide symbol"}
	ErrInvalidBit      = &WireError{"invalid bit character"}
	ErrMisalignedBits  = &WireError{"misaligned bit-string"}
	ErrInvalidFrame    = &WireError{"invalid frame"}
	ErrMalformedHeader = &WireError{"malformed payload header"}
	ErrUnknownHeader   = &WireError{"unrecognized payload header"}
)

// WireError represents a wire-format error. The package wraps these
// sentinels with positional detail, so match them with errors.Is.
type WireError struct {
	Message string
}

func (e *WireError) Error() string {
	return e.Message
}
