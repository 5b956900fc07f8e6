package codec

import (
	"fmt"
	"strings"
)

// Default marker constants, modeled after regulatory sequences found in
// Saccharomyces cerevisiae. Encoder and decoder must agree on these: a
// decoder configured with different markers cannot read this encoder's
// output.
const (
	DefaultPromoter   = "ATGCATGC"
	DefaultTerminator = "TTAATTAA"
	DefaultMarker     = "GGCCGGCC"
)

// MarkerSet holds the constant sequences wrapped around every encoded
// body. A MarkerSet is fixed for the life of a Codec; swapping marker
// sets is how protocol variants are versioned.
type MarkerSet struct {
	Promoter   string `yaml:"promoter"`
	Terminator string `yaml:"terminator"`
	Marker     string `yaml:"marker"`
}

// DefaultMarkerSet returns the protocol's standard marker constants.
func DefaultMarkerSet() MarkerSet {
	return MarkerSet{
		Promoter:   DefaultPromoter,
		Terminator: DefaultTerminator,
		Marker:     DefaultMarker,
	}
}

// Validate checks that every marker is non-empty and drawn entirely from
// the nucleotide alphabet.
func (m MarkerSet) Validate() error {
	for _, part := range []struct {
		name  string
		value string
	}{
		{"promoter", m.Promoter},
		{"terminator", m.Terminator},
		{"marker", m.Marker},
	} {
		if part.value == "" {
			return fmt.Errorf("%s must not be empty", part.name)
		}
		for i := 0; i < len(part.value); i++ {
			if symbolValues[part.value[i]] < 0 {
				return fmt.Errorf("%s contains non-nucleotide %q", part.name, part.value[i])
			}
		}
	}
	return nil
}

// overhead is the fixed number of nucleotides a frame adds around a body.
func (m MarkerSet) overhead() int {
	return len(m.Promoter) + len(m.Terminator) + len(m.Marker)
}

// Frame wraps an encoded body with the marker constants.
func (m MarkerSet) Frame(body string) string {
	return m.Promoter + body + m.Terminator + m.Marker
}

// Unframe strips the marker constants from a framed sequence and returns
// the encoded body. The sequence must start with the promoter and end
// with terminator and marker, matched exactly.
func (m MarkerSet) Unframe(framed string) (string, error) {
	if len(framed) < m.overhead() {
		return "", fmt.Errorf("%w: sequence length %d is shorter than the %d-nucleotide frame overhead",
			ErrInvalidFrame, len(framed), m.overhead())
	}
	if !strings.HasPrefix(framed, m.Promoter) {
		return "", fmt.Errorf("%w: sequence does not start with promoter %s", ErrInvalidFrame, m.Promoter)
	}
	if !strings.HasSuffix(framed, m.Terminator+m.Marker) {
		return "", fmt.Errorf("%w: sequence does not end with terminator %s and marker %s",
			ErrInvalidFrame, m.Terminator, m.Marker)
	}
	return framed[len(m.Promoter) : len(framed)-len(m.Terminator)-len(m.Marker)], nil
}
