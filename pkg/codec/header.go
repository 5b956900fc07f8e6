package codec

import (
	"bytes"
	"fmt"
	"strings"
)

// Payload tags. A tag, together with the name separator for files, forms
// the plain-text header prefixed to every payload before encoding.
const (
	tagString = "STRING:"
	tagFile   = "FILE:"
)

// Kind identifies what a decoded payload carries.
type Kind uint8

const (
	// KindString marks caller-supplied text.
	KindString Kind = iota + 1
	// KindFile marks file contents with an embedded original name.
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "STRING"
	case KindFile:
		return "FILE"
	}
	return "UNKNOWN"
}

// Payload is the tagged byte content recovered from, or destined for, an
// encoded sequence.
type Payload struct {
	Kind Kind
	Name string // original file name; empty for string payloads
	Body []byte
}

// encodePayload renders the tagged header+body form that gets padded and
// encoded. File names must be non-empty and colon-free, and file bodies
// non-empty: the header has no escaping or length field, so anything else
// could not be recovered on decode.
func encodePayload(p Payload) ([]byte, error) {
	switch p.Kind {
	case KindString:
		raw := make([]byte, 0, len(tagString)+len(p.Body))
		raw = append(raw, tagString...)
		return append(raw, p.Body...), nil
	case KindFile:
		if p.Name == "" {
			return nil, fmt.Errorf("%w: file name must not be empty", ErrMalformedHeader)
		}
		if strings.ContainsRune(p.Name, ':') {
			return nil, fmt.Errorf("%w: file name %q must not contain ':'", ErrMalformedHeader, p.Name)
		}
		if len(p.Body) == 0 {
			return nil, fmt.Errorf("%w: file payload must not be empty", ErrMalformedHeader)
		}
		raw := make([]byte, 0, len(tagFile)+len(p.Name)+1+len(p.Body))
		raw = append(raw, tagFile...)
		raw = append(raw, p.Name...)
		raw = append(raw, ':')
		return append(raw, p.Body...), nil
	}
	return nil, fmt.Errorf("%w: unknown payload kind %d", ErrUnknownHeader, p.Kind)
}

// parsePayload inspects the header of a recovered byte payload and splits
// it into kind, name and body. Only the first colon after the FILE tag
// separates the name from the body, so names with colons cannot be
// represented; colons inside the body are untouched.
func parsePayload(raw []byte) (Payload, error) {
	switch {
	case bytes.HasPrefix(raw, []byte(tagString)):
		return Payload{Kind: KindString, Body: raw[len(tagString):]}, nil
	case bytes.HasPrefix(raw, []byte(tagFile)):
		rest := raw[len(tagFile):]
		sep := bytes.IndexByte(rest, ':')
		if sep < 0 {
			return Payload{}, fmt.Errorf("%w: FILE header is missing the name separator", ErrMalformedHeader)
		}
		if sep == 0 {
			return Payload{}, fmt.Errorf("%w: FILE header has an empty name", ErrMalformedHeader)
		}
		body := rest[sep+1:]
		if len(body) == 0 {
			return Payload{}, fmt.Errorf("%w: FILE payload has no content", ErrMalformedHeader)
		}
		return Payload{Kind: KindFile, Name: string(rest[:sep]), Body: body}, nil
	}
	return Payload{}, fmt.Errorf("%w: payload starts with neither %q nor %q", ErrUnknownHeader, tagString, tagFile)
}
