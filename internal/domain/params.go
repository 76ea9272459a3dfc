package domain

import (
	"fmt"
	"strings"
)

// Hash names the hash function underlying HMAC in HKDF.
type Hash uint8

const (
	_ Hash = iota
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
)

var hashNames = map[Hash]string{
	SHA1:   "SHA1",
	SHA224: "SHA224",
	SHA256: "SHA256",
	SHA384: "SHA384",
	SHA512: "SHA512",
}

func (h Hash) String() string {
	if n, ok := hashNames[h]; ok {
		return n
	}
	return fmt.Sprintf("Hash(%d)", uint8(h))
}

// Valid reports whether h is one of the named hashes.
func (h Hash) Valid() bool {
	_, ok := hashNames[h]
	return ok
}

// ParseHash accepts "SHA256", "sha-256" and "HmacSha256" style names.
func ParseHash(s string) (Hash, error) {
	n := strings.ToUpper(strings.TrimSpace(s))
	n = strings.TrimPrefix(n, "HMAC")
	n = strings.ReplaceAll(n, "-", "")
	for h, name := range hashNames {
		if n == name {
			return h, nil
		}
	}
	return 0, fmt.Errorf("unknown hash %q", s)
}

// PointFormat selects the byte encoding of a curve point.
type PointFormat uint8

const (
	_ PointFormat = iota
	// Uncompressed is 0x04 || X || Y.
	Uncompressed
	// Compressed is 0x02|0x03 || X, the prefix carrying the parity of Y.
	Compressed
	// LegacyUncompressed is X || Y with no marker byte. Only for
	// interoperability with old ciphertexts.
	LegacyUncompressed
)

var pointFormatNames = map[PointFormat]string{
	Uncompressed:       "UNCOMPRESSED",
	Compressed:         "COMPRESSED",
	LegacyUncompressed: "LEGACY_UNCOMPRESSED",
}

func (f PointFormat) String() string {
	if n, ok := pointFormatNames[f]; ok {
		return n
	}
	return fmt.Sprintf("PointFormat(%d)", uint8(f))
}

// Valid reports whether f is one of the three encodings.
func (f PointFormat) Valid() bool {
	_, ok := pointFormatNames[f]
	return ok
}

// ParsePointFormat accepts the canonical names, case-insensitively. The
// historical name DO_NOT_USE_CRUNCHY_UNCOMPRESSED maps to LegacyUncompressed.
func ParsePointFormat(s string) (PointFormat, error) {
	n := strings.ToUpper(strings.TrimSpace(s))
	n = strings.ReplaceAll(n, "-", "_")
	if n == "DO_NOT_USE_CRUNCHY_UNCOMPRESSED" {
		return LegacyUncompressed, nil
	}
	for f, name := range pointFormatNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown point format %q", s)
}

// DerivationParams configures one KEM call.
type DerivationParams struct {
	Hash        Hash
	Salt        []byte
	Info        []byte
	KeySize     int // bytes of symmetric key requested
	PointFormat PointFormat
}

// KemKey is the output of an encapsulation.
//
// EncapsulatedKey is the encoded ephemeral public point and is safe to send
// in the clear. SymmetricKey is secret.
type KemKey struct {
	EncapsulatedKey []byte
	SymmetricKey    []byte
}
