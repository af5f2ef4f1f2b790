package core

import (
	"bytes"
	"unicode/utf8"
)

// utf8BOM is prepended by some spreadsheet exports.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SanitizeText strips a leading UTF-8 BOM and replaces each invalid UTF-8
// byte with '?' so a bad cell cannot corrupt the rest of the sheet.
func SanitizeText(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data)
	}

	out := make([]byte, 0, len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			out = append(out, '?')
		} else {
			out = append(out, data[:size]...)
		}
		data = data[size:]
	}
	return string(out)
}
