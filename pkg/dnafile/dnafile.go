// Package dnafile reads and writes .dna artifacts: plain files holding a
// framed nucleotide sequence byte-for-byte, with no metadata.
package dnafile

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Ext is the required suffix for encoded artifacts.
const Ext = ".dna"

// ErrNotDNAFile is returned when a path handed to ReadSequence does not
// carry the .dna suffix.
var ErrNotDNAFile = errors.New("not a .dna file")

// EncodedPath returns the artifact path for an input file: the input
// path with the .dna suffix appended.
func EncodedPath(path string) string {
	return path + Ext
}

// WriteSequence writes a framed sequence to path exactly as given, with
// no trailing newline.
func WriteSequence(path, seq string) error {
	if err := os.WriteFile(path, []byte(seq), 0644); err != nil {
		return fmt.Errorf("failed to write sequence file: %w", err)
	}
	return nil
}

// ReadSequence reads a framed sequence back from a .dna artifact. The
// suffix is checked before the file is touched. Contents come back
// byte-for-byte; a stray trailing newline is not stripped here and will
// fail the frame check downstream instead.
func ReadSequence(path string) (string, error) {
	if !strings.HasSuffix(path, Ext) {
		return "", fmt.Errorf("%w: %s", ErrNotDNAFile, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read sequence file: %w", err)
	}
	return string(data), nil
}
