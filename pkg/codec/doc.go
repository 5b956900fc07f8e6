// Package codec maps arbitrary byte payloads onto the four-symbol
// nucleotide alphabet {A, C, G, T} and back. It is the wire format behind
// the dnac tool: text messages and file contents become framed DNA
// sequences suitable for synthesis workflows or plain storage in .dna
// files.
//
// # Wire Format
//
// Encoding runs a fixed pipeline over the payload:
//
//	tag payload, pad to a codon boundary, bytes to bits, bits to nucleotides, frame
//
// Each byte is rendered as 8 bits, most-significant bit first, and each
// 2-bit group maps to one nucleotide:
//
//	00=A  01=C  10=G  11=T
//
// A byte therefore always becomes exactly four nucleotides. The framed
// result is
//
//	PROMOTER ++ body ++ TERMINATOR ++ MARKER
//
// with 8-nucleotide default constants ATGCATGC, TTAATTAA and GGCCGGCC.
// The markers are protocol constants: both sides must be configured with
// the same MarkerSet or decoding fails with ErrInvalidFrame.
//
// # Headers
//
// Payloads carry a plain-text header identifying their kind:
//
//	STRING:<text>
//	FILE:<name>:<contents>
//
// File names cannot contain ':' because the header has no escaping; the
// encoder rejects such names instead of producing an undecodable frame.
//
// # Padding
//
// Biological codon framing requires the nucleotide count to be a multiple
// of three. Since one byte is four nucleotides, the tagged payload is
// extended with trailing spaces (0x20) until 4*len is a multiple of
// three, which appends at most two bytes. The format records no payload length, so
// decoding leaves those spaces in place by default; Config.TrimPadding
// strips them at the cost of also stripping payload bytes that genuinely
// end in spaces.
//
// # Usage
//
//	c, err := codec.New(codec.Config{})
//	if err != nil {
//	    return err
//	}
//
//	seq, err := c.EncodeString("HI")
//	if err != nil {
//	    return err
//	}
//
//	msg, err := c.DecodeString(seq)
//	if err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Every failure mode has a sentinel: ErrInvalidSymbol, ErrInvalidBit,
// ErrMisalignedBits, ErrInvalidFrame, ErrMalformedHeader and
// ErrUnknownHeader. Returned errors wrap a sentinel and add the offending
// byte and position, so callers match with errors.Is. The decoder never
// substitutes defaults for unrecognized input and never returns partial
// output alongside an error.
//
// # Thread Safety
//
// A Codec is immutable after New and safe for concurrent use. The
// package-level conversion functions are pure.
//
// # Compatibility
//
// Frames produced by any implementation of wire-format version 1.1
// decode identically here provided the marker constants agree; the
// TrimPadding policy is decoder-local and never changes encoded output.
package codec
