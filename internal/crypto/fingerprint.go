package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"ecieskem/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes the curve name and the uncompressed point with SHA-256 and
// truncates to 10 bytes (20 hex chars), so the same coordinates on two
// curves never collide.
func Fingerprint(pub *PublicKey) domain.Fingerprint {
	h := sha256.New()
	h.Write([]byte(pub.curve.String()))
	h.Write([]byte{0})
	h.Write(pub.point)
	sum := h.Sum(nil)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
