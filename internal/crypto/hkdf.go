package crypto

import (
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"ecieskem/internal/domain"
	"ecieskem/internal/util/memzero"
)

// ComputeHKDF runs HKDF extract-then-expand (RFC 5869) with h and returns
// size bytes. An empty salt is equivalent to a hash-length zero salt.
func ComputeHKDF(h domain.Hash, ikm, salt, info []byte, size int) ([]byte, error) {
	fn, err := HashFunc(h)
	if err != nil {
		return nil, err
	}
	limit := 255 * fn().Size()
	if size <= 0 || size > limit {
		return nil, fmt.Errorf("%w: %d bytes requested, %s allows 1..%d", ErrHKDFLength, size, h, limit)
	}

	out := make([]byte, size)
	if _, err := io.ReadFull(hkdf.New(fn, ikm, salt, info), out); err != nil {
		memzero.Zero(out)
		return nil, fmt.Errorf("%w: %v", ErrHKDFLength, err)
	}
	return out, nil
}

// ComputeEciesHKDFSymmetricKey derives the ECIES-HKDF symmetric key. The
// input keying material is kem || sharedSecret, kem being the encoded
// ephemeral public point exactly as transmitted.
func ComputeEciesHKDFSymmetricKey(
	kem, sharedSecret []byte,
	h domain.Hash,
	salt, info []byte,
	size int,
) ([]byte, error) {
	ikm := make([]byte, 0, len(kem)+len(sharedSecret))
	ikm = append(ikm, kem...)
	ikm = append(ikm, sharedSecret...)
	defer memzero.Zero(ikm)

	return ComputeHKDF(h, ikm, salt, info, size)
}
