// Package cybertoken generates and parses self-describing bearer tokens.
package cybertoken

import "fmt"

// Base62Alphabet is the symbol set of the token body, in digit order.
const Base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const base62 = 62

// base62Index maps an input byte to its digit value, or -1.
var base62Index = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(Base62Alphabet); i++ {
		idx[Base62Alphabet[i]] = int8(i)
	}
	return idx
}()

// EncodeBase62 encodes src as a big-endian base62 number.
//
// Each leading zero byte is written as one leading '0' symbol, so the
// encoding is reversible for any input. An empty input encodes to "".
func EncodeBase62(src []byte) string {
	zeros := 0
	for zeros < len(src) && src[zeros] == 0 {
		zeros++
	}

	// log(256)/log(62) ~= 1.344
	size := (len(src)-zeros)*138/100 + 1
	digits := make([]byte, size)
	length := 0

	for _, b := range src[zeros:] {
		carry := int(b)
		i := 0
		for j := size - 1; (carry != 0 || i < length) && j >= 0; j-- {
			carry += 256 * int(digits[j])
			digits[j] = byte(carry % base62)
			carry /= base62
			i++
		}
		length = i
	}

	start := size - length
	for start < size && digits[start] == 0 {
		start++
	}

	out := make([]byte, 0, zeros+size-start)
	for i := 0; i < zeros; i++ {
		out = append(out, Base62Alphabet[0])
	}
	for _, d := range digits[start:] {
		out = append(out, Base62Alphabet[d])
	}
	return string(out)
}

// DecodeBase62 reverses EncodeBase62.
//
// Any byte outside Base62Alphabet, including parts of multi-byte UTF-8
// sequences, is rejected.
func DecodeBase62(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	zeros := 0
	for zeros < len(s) && s[zeros] == Base62Alphabet[0] {
		zeros++
	}

	// log(62)/log(256) ~= 0.744
	size := (len(s)-zeros)*745/1000 + 1
	buf := make([]byte, size)
	length := 0

	for i := zeros; i < len(s); i++ {
		v := base62Index[s[i]]
		if v < 0 {
			return nil, fmt.Errorf("invalid base62 symbol %q at offset %d", s[i], i)
		}

		carry := int(v)
		n := 0
		for j := size - 1; (carry != 0 || n < length) && j >= 0; j-- {
			carry += base62 * int(buf[j])
			buf[j] = byte(carry & 0xff)
			carry >>= 8
			n++
		}
		length = n
	}

	start := size - length
	for start < size && buf[start] == 0 {
		start++
	}

	out := make([]byte, zeros, zeros+size-start)
	return append(out, buf[start:]...), nil
}
