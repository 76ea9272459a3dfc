package ecies

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidKey           = errors.New("ecies: invalid key")
	ErrRandomness           = errors.New("ecies: secure random source failed")
	ErrCurveComputation     = errors.New("ecies: shared secret computation failed")
	ErrDerivationLength     = errors.New("ecies: invalid symmetric key length")
	ErrInvalidParameters    = errors.New("ecies: invalid derivation parameters")
	ErrInvalidEncapsulation = errors.New("ecies: invalid encapsulated key")
)

func wrap(kind, cause error) error {
	return fmt.Errorf("%w: %w", kind, cause)
}
