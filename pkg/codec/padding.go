package codec

import "bytes"

// padByte extends tagged payloads up to the next codon boundary. Space
// was chosen by the format so that padded text payloads stay printable.
const padByte = ' '

// pad appends spaces to a tagged payload until the nucleotide sequence it
// will encode to is codon-aligned: each byte becomes four nucleotides, so
// spaces are added while 4*len is not a multiple of three. 4 and 3 are
// coprime, so at most two bytes are ever appended.
func pad(payload []byte) []byte {
	for (4*len(payload))%3 != 0 {
		payload = append(payload, padByte)
	}
	return payload
}

// trimPadding drops trailing spaces from a decoded body. The wire format
// records no payload length, so padding cannot be told apart from payload
// bytes that genuinely end in spaces; those are dropped too.
func trimPadding(body []byte) []byte {
	return bytes.TrimRight(body, string(padByte))
}
