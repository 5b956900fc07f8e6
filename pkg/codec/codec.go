package codec

import "fmt"

// Version is the wire-format version this codec implements.
const Version = "1.1"

// Config holds codec construction options.
type Config struct {
	// Markers overrides the frame constants. The zero value selects the
	// protocol defaults.
	Markers MarkerSet
	// TrimPadding strips trailing space padding from decoded payloads.
	// Off by default, so decoded output matches the padded wire bytes
	// exactly and stays in parity with frames produced elsewhere.
	TrimPadding bool
}

// Codec converts byte payloads into framed nucleotide sequences and back.
// A Codec is immutable after construction and safe for concurrent use.
type Codec struct {
	markers     MarkerSet
	trimPadding bool
}

// New creates a Codec from config. A zero Markers field selects the
// default marker set; anything else is validated against the alphabet.
func New(config Config) (*Codec, error) {
	markers := config.Markers
	if markers == (MarkerSet{}) {
		markers = DefaultMarkerSet()
	}
	if err := markers.Validate(); err != nil {
		return nil, fmt.Errorf("invalid marker set: %w", err)
	}
	return &Codec{markers: markers, trimPadding: config.TrimPadding}, nil
}

// Markers returns the marker constants this codec frames with.
func (c *Codec) Markers() MarkerSet {
	return c.markers
}

// EncodeString encodes caller text into a framed nucleotide sequence.
func (c *Codec) EncodeString(text string) (string, error) {
	return c.encode(Payload{Kind: KindString, Body: []byte(text)})
}

// DecodeString recovers the text from a framed sequence produced by
// EncodeString. Unless the codec was built with TrimPadding, the result
// keeps up to two trailing spaces the encoder may have appended for
// codon alignment.
func (c *Codec) DecodeString(framed string) (string, error) {
	p, err := c.Decode(framed)
	if err != nil {
		return "", err
	}
	if p.Kind != KindString {
		return "", fmt.Errorf("%w: expected a STRING payload, found %s", ErrMalformedHeader, p.Kind)
	}
	return string(p.Body), nil
}

// EncodeFile encodes file contents under their original name. The name
// must be colon-free and the contents non-empty.
func (c *Codec) EncodeFile(name string, data []byte) (string, error) {
	return c.encode(Payload{Kind: KindFile, Name: name, Body: data})
}

// DecodeFile recovers the original file name and contents from a framed
// sequence produced by EncodeFile. The padding note on DecodeString
// applies to the contents as well.
func (c *Codec) DecodeFile(framed string) (string, []byte, error) {
	p, err := c.Decode(framed)
	if err != nil {
		return "", nil, err
	}
	if p.Kind != KindFile {
		return "", nil, fmt.Errorf("%w: expected a FILE payload, found %s", ErrMalformedHeader, p.Kind)
	}
	return p.Name, p.Body, nil
}

// Decode unframes and decodes a sequence without requiring a particular
// payload kind. Callers that accept both kinds dispatch on Payload.Kind.
func (c *Codec) Decode(framed string) (Payload, error) {
	body, err := c.markers.Unframe(framed)
	if err != nil {
		return Payload{}, err
	}
	bits, err := DecodeSymbols(body)
	if err != nil {
		return Payload{}, err
	}
	raw, err := BitsToBytes(bits)
	if err != nil {
		return Payload{}, err
	}
	p, err := parsePayload(raw)
	if err != nil {
		return Payload{}, err
	}
	if c.trimPadding {
		p.Body = trimPadding(p.Body)
	}
	return p, nil
}

func (c *Codec) encode(p Payload) (string, error) {
	raw, err := encodePayload(p)
	if err != nil {
		return "", err
	}
	seq, err := EncodeSymbols(BytesToBits(pad(raw)))
	if err != nil {
		return "", err
	}
	return c.markers.Frame(seq), nil
}
