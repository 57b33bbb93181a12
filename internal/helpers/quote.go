package helpers

import "unicode/utf8"

const hexChars = "0123456789ABCDEF"
const firstASCII = 0x20
const lastASCII = 0x7E
const firstHighSurrogate = 0xD800
const lastLowSurrogate = 0xDFFF

func canPrintWithoutEscape(c rune, quoteChar byte) bool {
	if c <= lastASCII {
		return c >= firstASCII && c != '\\' && c != rune(quoteChar)
	}
	return c != '\uFEFF' && c != '\u2028' && c != '\u2029' && (c < firstHighSurrogate || c > lastLowSurrogate)
}

// Quotes the contents of a string literal node. Lone surrogates can't be
// represented in UTF-8 output, so they are always written as "\u" escapes.
func QuoteUTF16(text []uint16, quoteChar byte) []byte {
	var temp [utf8.UTFMax]byte
	bytes := make([]byte, 0, len(text)+2)
	bytes = append(bytes, quoteChar)

	for i := 0; i < len(text); i++ {
		c, width := decodeUTF16(text, i)
		i += width - 1

		if canPrintWithoutEscape(c, quoteChar) {
			size := encodeWTF8Rune(temp[:], c)
			bytes = append(bytes, temp[:size]...)
			continue
		}

		switch c {
		case '\b':
			bytes = append(bytes, "\\b"...)

		case '\f':
			bytes = append(bytes, "\\f"...)

		case '\n':
			bytes = append(bytes, "\\n"...)

		case '\r':
			bytes = append(bytes, "\\r"...)

		case '\t':
			bytes = append(bytes, "\\t"...)

		case '\\':
			bytes = append(bytes, "\\\\"...)

		case rune(quoteChar):
			bytes = append(bytes, '\\', quoteChar)

		default:
			// Only code points in the basic multilingual plane get here
			bytes = append(
				bytes,
				'\\', 'u', hexChars[c>>12], hexChars[(c>>8)&15], hexChars[(c>>4)&15], hexChars[c&15],
			)
		}
	}

	return append(bytes, quoteChar)
}
