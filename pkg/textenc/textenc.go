// Package textenc decodes raw file bytes into text with a permissive
// fallback, so callers never have to handle a decode failure.
package textenc

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding identifies which decoder produced the text.
type Encoding int

const (
	// EncodingUTF8 means the input was valid UTF-8 and was used as-is.
	EncodingUTF8 Encoding = iota
	// EncodingLatin1 means UTF-8 validation failed and the bytes were
	// decoded as ISO-8859-1 instead.
	EncodingLatin1
)

// String returns the conventional name of the encoding.
func (e Encoding) String() string {
	if e == EncodingLatin1 {
		return "latin-1"
	}
	return "utf-8"
}

// Decode converts raw bytes to a string. UTF-8 is tried first; on failure
// the bytes are decoded as ISO-8859-1, which maps every byte to a code
// point and therefore cannot fail. The returned Encoding tells the caller
// whether the fallback was taken.
func Decode(raw []byte) (string, Encoding) {
	if utf8.Valid(raw) {
		return string(raw), EncodingUTF8
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		// ISO-8859-1 decoding is total; this branch is unreachable.
		return string(raw), EncodingLatin1
	}
	return string(decoded), EncodingLatin1
}
