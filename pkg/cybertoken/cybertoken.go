// Package cybertoken generates and parses self-describing bearer tokens.
package cybertoken

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"strings"
)

const (
	// DefaultEntropyBytes is the default number of random bytes, including
	// the trailing marker byte.
	DefaultEntropyBytes = 23

	// Delimiter separates the prefix from the encoded body.
	Delimiter = "_"

	// checksumLength is the size of the trailing CRC32.
	checksumLength = 4

	// minPayloadLength is one secret byte, the marker byte and the checksum.
	minPayloadLength = 1 + 1 + checksumLength
)

// Config describes one token family. It is an immutable value and is safe
// for concurrent use as long as its random source is.
type Config struct {
	prefix       string
	version      byte
	entropyBytes int
	rand         io.Reader
}

// Option is a function that configures a Config.
type Option func(*Config)

// WithVersion sets the version that Parse requires in the marker byte.
func WithVersion(v byte) Option {
	return func(c *Config) {
		c.version = v
	}
}

// WithEntropyBytes sets the number of random bytes per token, including the
// marker byte.
func WithEntropyBytes(n int) Option {
	return func(c *Config) {
		c.entropyBytes = n
	}
}

// WithRandSource replaces crypto/rand.Reader as the entropy source.
// Tests use it for reproducible tokens.
func WithRandSource(r io.Reader) Option {
	return func(c *Config) {
		c.rand = r
	}
}

// New creates a Config for the given prefix with version 0 and
// DefaultEntropyBytes.
//
// The prefix must be non-empty and must not contain an underscore; it is
// not validated. New panics if the entropy length is below 1.
func New(prefix string, opts ...Option) Config {
	c := Config{
		prefix:       prefix,
		entropyBytes: DefaultEntropyBytes,
		rand:         rand.Reader,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.entropyBytes < 1 {
		panic(fmt.Sprintf("cybertoken: entropy bytes must be at least 1, got %d", c.entropyBytes))
	}
	if c.rand == nil {
		c.rand = rand.Reader
	}
	return c
}

// Prefix returns the token prefix, without the delimiter.
func (c Config) Prefix() string { return c.prefix }

// Version returns the version Parse expects in the marker byte.
//
// Generate always writes a zero marker byte regardless of this value, so
// tokens generated by any Config only parse under version 0.
func (c Config) Version() byte { return c.version }

// EntropyBytes returns the number of random bytes per token, including the
// marker byte.
func (c Config) EntropyBytes() int { return c.entropyBytes }

// Generate returns a new token.
//
// It panics if the random source fails, since no token can be produced
// safely without entropy.
func (c Config) Generate() string {
	n := c.entropyBytes
	buf := make([]byte, n+checksumLength)
	if _, err := io.ReadFull(c.rand, buf[:n]); err != nil {
		panic("cybertoken: random source failed: " + err.Error())
	}

	// Marker byte. Always zero, see Version.
	buf[n-1] = 0

	binary.BigEndian.PutUint32(buf[n:], crc32.ChecksumIEEE(buf[:n]))

	return c.prefix + Delimiter + EncodeBase62(buf)
}

// Contents is the decoded form of a token.
type Contents struct {
	// Prefix is everything before the first underscore. It is not compared
	// against the configured prefix.
	Prefix string `json:"prefix"`

	// Secret holds the random bytes, without marker byte and checksum.
	Secret []byte `json:"secret"`

	// Version is the marker byte.
	Version byte `json:"version"`

	// SuppliedChecksum is the checksum carried by the token.
	SuppliedChecksum []byte `json:"supplied_checksum"`

	// ActualChecksum is the checksum recomputed over secret and marker byte.
	ActualChecksum []byte `json:"actual_checksum"`

	// IsSyntacticallyValid is true when Secret is non-empty and both
	// checksums match.
	IsSyntacticallyValid bool `json:"is_syntactically_valid"`
}

// Parse decodes a token.
//
// It returns a *ParseError when the input cannot be a token of this format:
// no underscore, invalid Base62, a body shorter than six bytes, or a marker
// byte that differs from the configured version. A token whose checksum does
// not match is returned without error and with IsSyntacticallyValid false.
func (c Config) Parse(token string) (*Contents, error) {
	prefix, body, found := strings.Cut(token, Delimiter)
	if !found {
		return nil, ErrMissingDelimiter
	}

	raw, err := DecodeBase62(body)
	if err != nil {
		return nil, ErrBase62Decoding.WithCause(err)
	}

	if len(raw) < minPayloadLength {
		return nil, ErrTokenLength.WithDetails(
			fmt.Sprintf("decoded %d bytes, need at least %d", len(raw), minPayloadLength))
	}

	checksumAt := len(raw) - checksumLength
	version := raw[checksumAt-1]
	if version != c.version {
		return nil, ErrVersionMismatch.WithDetails(
			fmt.Sprintf("got %d, want %d", version, c.version))
	}

	secret := raw[:checksumAt-1 : checksumAt-1]
	supplied := raw[checksumAt:]
	actual := binary.BigEndian.AppendUint32(nil, crc32.ChecksumIEEE(raw[:checksumAt]))

	return &Contents{
		Prefix:               prefix,
		Secret:               secret,
		Version:              version,
		SuppliedChecksum:     supplied,
		ActualChecksum:       actual,
		IsSyntacticallyValid: len(secret) > 0 && bytes.Equal(supplied, actual),
	}, nil
}

// IsTokenString reports whether token parses and carries a matching
// checksum. Callers that need the failure reason should use Parse.
func (c Config) IsTokenString(token string) bool {
	contents, err := c.Parse(token)
	if err != nil {
		return false
	}
	return contents.IsSyntacticallyValid
}
