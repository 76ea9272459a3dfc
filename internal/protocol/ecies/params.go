package ecies

import (
	"errors"
	"fmt"

	"ecieskem/internal/crypto"
	"ecieskem/internal/domain"
)

// computeSharedSecret is the ECDH step of both KEM sides.
var computeSharedSecret = crypto.ComputeSharedSecret

// checkParams validates per-call parameters before any randomness is drawn.
func checkParams(h domain.Hash, keySize int, f domain.PointFormat) error {
	if !f.Valid() {
		return wrap(ErrInvalidParameters, fmt.Errorf("%w: %s", crypto.ErrUnknownPointFormat, f))
	}
	limit, err := crypto.MaxHKDFSize(h)
	if err != nil {
		return wrap(ErrInvalidParameters, err)
	}
	if keySize <= 0 || keySize > limit {
		return fmt.Errorf("%w: %d bytes requested, %s allows 1..%d", ErrDerivationLength, keySize, h, limit)
	}
	return nil
}

func derivationError(err error) error {
	if errors.Is(err, crypto.ErrHKDFLength) {
		return wrap(ErrDerivationLength, err)
	}
	return wrap(ErrInvalidParameters, err)
}
