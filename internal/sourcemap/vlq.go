package sourcemap

// Base64 VLQ as used by the standard JSON source map format: little
// endian base64 groups of 5 value bits plus a continuation bit, with
// the sign carried in the lowest bit of the first group.

const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

func appendVLQ(out []byte, value int32) []byte {
	v := uint32(value) << 1
	if value < 0 {
		v = (uint32(-value) << 1) | 1
	}
	for {
		digit := v & 0x1f
		v >>= 5
		if v != 0 {
			digit |= 0x20
		}
		out = append(out, base64Chars[digit])
		if v == 0 {
			return out
		}
	}
}

// decodeVLQ reads one value from the mappings string, returning the
// value and the index past it. Malformed input yields (0, start).
func decodeVLQ(s string, start int) (int32, int) {
	var v uint32
	shift := uint(0)
	i := start
	for i < len(s) {
		c := base64Index(s[i])
		if c < 0 {
			return 0, start
		}
		i++
		v |= uint32(c&0x1f) << shift
		if c&0x20 == 0 {
			value := int32(v >> 1)
			if v&1 != 0 {
				value = -value
			}
			return value, i
		}
		shift += 5
	}
	return 0, start
}

func base64Index(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 26
	case c >= '0' && c <= '9':
		return int(c-'0') + 52
	case c == '+':
		return 62
	case c == '/':
		return 63
	default:
		return -1
	}
}
