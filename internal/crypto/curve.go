package crypto

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"

	"ecieskem/internal/domain"
	"ecieskem/internal/util/memzero"
)

// maxScalarDraws bounds rejection sampling in GenerateKey. For every
// supported curve a draw is rejected with probability below 2^-32.
const maxScalarDraws = 16

// engine is the per-curve arithmetic. Points cross this boundary in
// uncompressed SEC1 form only.
type engine interface {
	// size is the byte length of a field element and of a private scalar.
	size() int
	// topMask clears the bits of a sampled scalar's first byte that lie
	// above the group order's bit length.
	topMask() byte
	publicFromScalar(scalar []byte) ([]byte, error)
	decompress(compressed []byte) ([]byte, error)
	validate(point []byte) error
	ecdh(scalar, point []byte) ([]byte, error)
}

func engineFor(c domain.Curve) (engine, error) {
	switch c {
	case domain.P256:
		return p256, nil
	case domain.P384:
		return p384, nil
	case domain.P521:
		return p521, nil
	case domain.Secp256k1:
		return secp256k1Engine{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurve, c)
}

// FieldSize returns the byte length of a field element of c, which is also
// the length of its shared secrets.
func FieldSize(c domain.Curve) (int, error) {
	e, err := engineFor(c)
	if err != nil {
		return 0, err
	}
	return e.size(), nil
}

// PublicKey is a validated point on a named curve.
type PublicKey struct {
	curve domain.Curve
	point []byte // 0x04 || X || Y
}

// Curve returns the curve the point lies on.
func (k *PublicKey) Curve() domain.Curve { return k.curve }

// Bytes returns a copy of the uncompressed encoding.
func (k *PublicKey) Bytes() []byte { return bytes.Clone(k.point) }

// Equal reports whether k and o are the same point on the same curve.
func (k *PublicKey) Equal(o *PublicKey) bool {
	if k == nil || o == nil {
		return k == o
	}
	return k.curve == o.curve && bytes.Equal(k.point, o.point)
}

// Encode returns the point in the requested format.
func (k *PublicKey) Encode(f domain.PointFormat) ([]byte, error) {
	n := (len(k.point) - 1) / 2
	switch f {
	case domain.Uncompressed:
		return bytes.Clone(k.point), nil
	case domain.LegacyUncompressed:
		return bytes.Clone(k.point[1:]), nil
	case domain.Compressed:
		out := make([]byte, 1+n)
		out[0] = 0x02 | (k.point[len(k.point)-1] & 1)
		copy(out[1:], k.point[1:1+n])
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPointFormat, f)
}

// ParsePublicKey decodes encoded in format f and checks that the point lies
// on curve c.
func ParsePublicKey(c domain.Curve, f domain.PointFormat, encoded []byte) (*PublicKey, error) {
	e, err := engineFor(c)
	if err != nil {
		return nil, err
	}
	n := e.size()

	var point []byte
	switch f {
	case domain.Uncompressed:
		if len(encoded) != 1+2*n || encoded[0] != 0x04 {
			return nil, fmt.Errorf("%w: want %d-byte uncompressed encoding", ErrInvalidPoint, 1+2*n)
		}
		point = bytes.Clone(encoded)
	case domain.LegacyUncompressed:
		if len(encoded) != 2*n {
			return nil, fmt.Errorf("%w: want %d-byte legacy encoding", ErrInvalidPoint, 2*n)
		}
		point = append([]byte{0x04}, encoded...)
	case domain.Compressed:
		if len(encoded) != 1+n || (encoded[0] != 0x02 && encoded[0] != 0x03) {
			return nil, fmt.Errorf("%w: want %d-byte compressed encoding", ErrInvalidPoint, 1+n)
		}
		if point, err = e.decompress(encoded); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPointFormat, f)
	}

	if err := e.validate(point); err != nil {
		return nil, err
	}
	return &PublicKey{curve: c, point: point}, nil
}

// PrivateKey is a scalar together with its public point.
type PrivateKey struct {
	pub    PublicKey
	scalar []byte
}

// Public returns the public half of k.
func (k *PrivateKey) Public() *PublicKey { return &k.pub }

// Curve returns the curve of k.
func (k *PrivateKey) Curve() domain.Curve { return k.pub.curve }

// Bytes returns a copy of the big-endian scalar. The caller owns the copy
// and should wipe it.
func (k *PrivateKey) Bytes() []byte { return bytes.Clone(k.scalar) }

// Wipe zeroes the scalar. k must not be used afterwards.
func (k *PrivateKey) Wipe() {
	if k != nil {
		memzero.Zero(k.scalar)
	}
}

// NewPrivateKey builds a key from a big-endian scalar of exactly FieldSize
// bytes. The scalar must lie in [1, n-1]. scalar is copied.
func NewPrivateKey(c domain.Curve, scalar []byte) (*PrivateKey, error) {
	e, err := engineFor(c)
	if err != nil {
		return nil, err
	}
	if len(scalar) != e.size() {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidScalar, e.size(), len(scalar))
	}
	point, err := e.publicFromScalar(scalar)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{
		pub:    PublicKey{curve: c, point: point},
		scalar: bytes.Clone(scalar),
	}, nil
}

// GenerateKey draws a fresh key pair on c, reading scalar bytes from rand.
// Out-of-range draws are discarded and redrawn.
func GenerateKey(c domain.Curve, rand io.Reader) (*PrivateKey, error) {
	e, err := engineFor(c)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, e.size())
	defer memzero.Zero(buf)

	for i := 0; i < maxScalarDraws; i++ {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
		}
		buf[0] &= e.topMask()

		k, err := NewPrivateKey(c, buf)
		if err == nil {
			return k, nil
		}
		if !errors.Is(err, ErrInvalidScalar) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: no valid scalar in %d draws", ErrRandomSource, maxScalarDraws)
}

// ComputeSharedSecret returns the affine x-coordinate of priv·pub, left
// padded to FieldSize bytes. The caller owns the result and should wipe it.
func ComputeSharedSecret(priv *PrivateKey, pub *PublicKey) ([]byte, error) {
	if priv == nil || pub == nil {
		return nil, ErrInvalidPoint
	}
	if priv.pub.curve != pub.curve {
		return nil, fmt.Errorf("%w: %s and %s", ErrCurveMismatch, priv.pub.curve, pub.curve)
	}
	e, err := engineFor(pub.curve)
	if err != nil {
		return nil, err
	}
	z, err := e.ecdh(priv.scalar, pub.point)
	if err != nil {
		return nil, err
	}
	if err := checkSharedSecret(z, e.size()); err != nil {
		memzero.Zero(z)
		return nil, err
	}
	return z, nil
}

// checkSharedSecret rejects an x-coordinate that is not size bytes long or
// is all zero; engines report the point at infinity either way.
func checkSharedSecret(z []byte, size int) error {
	if len(z) != size || subtle.ConstantTimeCompare(z, make([]byte, len(z))) == 1 {
		return ErrPointAtInfinity
	}
	return nil
}
