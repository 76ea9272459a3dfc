package crypto

import (
	"crypto/sha1" //nolint:gosec
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"ecieskem/internal/domain"
)

// HashFunc returns the constructor for h.
func HashFunc(h domain.Hash) (func() hash.Hash, error) {
	switch h {
	case domain.SHA1:
		return sha1.New, nil
	case domain.SHA224:
		return sha256.New224, nil
	case domain.SHA256:
		return sha256.New, nil
	case domain.SHA384:
		return sha512.New384, nil
	case domain.SHA512:
		return sha512.New, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedHash, h)
}

// MaxHKDFSize is the longest output HKDF can produce with h: 255 blocks of
// the hash output.
func MaxHKDFSize(h domain.Hash) (int, error) {
	fn, err := HashFunc(h)
	if err != nil {
		return 0, err
	}
	return 255 * fn().Size(), nil
}
