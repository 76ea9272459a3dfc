package crypto

import "errors"

var (
	ErrUnsupportedCurve   = errors.New("crypto: unsupported curve")
	ErrUnsupportedHash    = errors.New("crypto: unsupported hash")
	ErrUnknownPointFormat = errors.New("crypto: unknown point format")
	ErrInvalidPoint       = errors.New("crypto: invalid curve point")
	ErrInvalidScalar      = errors.New("crypto: scalar out of range")
	ErrCurveMismatch      = errors.New("crypto: keys are on different curves")
	ErrPointAtInfinity    = errors.New("crypto: shared point is the point at infinity")
	ErrRandomSource       = errors.New("crypto: random source failed")
	ErrHKDFLength         = errors.New("crypto: invalid HKDF output length")
)
