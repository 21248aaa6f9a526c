package juggl

import "strconv"

// DecodeDelimiter decodes the escape sequences of a human-supplied
// delimiter string into its raw byte sequence:
//
//	\n \r \t \0   the usual control bytes
//	\xHH          a byte from two hex digits
//	\\            a literal backslash
//	\c            any other escaped character, passed through
//
// A malformed \x sequence (truncated or non-hex digits) is kept as
// literal bytes rather than rejected. Characters outside the escapes are
// truncated to single bytes.
func DecodeDelimiter(s string) []byte {
	runes := []rune(s)
	out := make([]byte, 0, len(runes))

	for i := 0; i < len(runes); {
		if runes[i] != '\\' || i+1 >= len(runes) {
			out = append(out, byte(runes[i]))
			i++

			continue
		}

		switch runes[i+1] {
		case 'n':
			out = append(out, '\n')
			i += 2
		case 'r':
			out = append(out, '\r')
			i += 2
		case 't':
			out = append(out, '\t')
			i += 2
		case '0':
			out = append(out, 0)
			i += 2
		case 'x':
			if i+3 < len(runes) {
				if b, err := strconv.ParseUint(string(runes[i+2:i+4]), 16, 8); err == nil {
					out = append(out, byte(b))
					i += 4

					break
				}
			}

			out = append(out, byte(runes[i]))
			i++
		default:
			out = append(out, byte(runes[i+1]))
			i += 2
		}
	}

	return out
}
