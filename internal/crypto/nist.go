package crypto

import (
	"crypto/ecdh"
	"crypto/elliptic"
	"fmt"
)

var (
	p256 = nistEngine{curve: ecdh.P256(), params: elliptic.P256(), n: 32, mask: 0xff}
	p384 = nistEngine{curve: ecdh.P384(), params: elliptic.P384(), n: 48, mask: 0xff}
	// P-521 scalars are 66 bytes of which only 521 bits are significant.
	p521 = nistEngine{curve: ecdh.P521(), params: elliptic.P521(), n: 66, mask: 0x01}
)

type nistEngine struct {
	curve  ecdh.Curve
	params elliptic.Curve // point decompression only
	n      int
	mask   byte
}

func (e nistEngine) size() int     { return e.n }
func (e nistEngine) topMask() byte { return e.mask }

func (e nistEngine) publicFromScalar(scalar []byte) ([]byte, error) {
	k, err := e.curve.NewPrivateKey(scalar)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScalar, err)
	}
	return k.PublicKey().Bytes(), nil
}

func (e nistEngine) decompress(compressed []byte) ([]byte, error) {
	x, y := elliptic.UnmarshalCompressed(e.params, compressed)
	if x == nil {
		return nil, fmt.Errorf("%w: not on %s", ErrInvalidPoint, e.params.Params().Name)
	}
	point := make([]byte, 1+2*e.n)
	point[0] = 0x04
	x.FillBytes(point[1 : 1+e.n])
	y.FillBytes(point[1+e.n:])
	return point, nil
}

func (e nistEngine) validate(point []byte) error {
	if _, err := e.curve.NewPublicKey(point); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	return nil
}

func (e nistEngine) ecdh(scalar, point []byte) ([]byte, error) {
	k, err := e.curve.NewPrivateKey(scalar)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScalar, err)
	}
	pub, err := e.curve.NewPublicKey(point)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	z, err := k.ECDH(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPointAtInfinity, err)
	}
	return z, nil
}
