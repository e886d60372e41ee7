// Package cybertoken generates and parses self-describing bearer tokens.
//
// Token Format:
//
//   - Prefix: caller-chosen identifier without underscores (e.g. "zugriff")
//   - Delimiter: a single underscore
//   - Body: Base62 encoded payload (alphabet 0-9, A-Z, a-z, no padding)
//
// Payload Layout (EntropyBytes = n, default 23):
//
//   - [0, n-1): random bytes from a CSPRNG
//   - [n-1]: marker byte, always 0
//   - [n, n+4): big-endian CRC32 (IEEE) of bytes [0, n)
//
// The checksum catches typos and truncation. It is not a MAC and offers no
// protection against deliberate tampering.
//
// Example:
//
//	ct := cybertoken.New("zugriff")
//	tok := ct.Generate() // zugriff_6Jyot35CwMvmxtv9BvumECX9zbdOtFPfJ6Wj
//	ok := ct.IsTokenString(tok)
package cybertoken
