package crypto

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

type secp256k1Engine struct{}

func (secp256k1Engine) size() int     { return 32 }
func (secp256k1Engine) topMask() byte { return 0xff }

// privKey rejects scalars that are zero or not below the group order rather
// than reducing them.
func (secp256k1Engine) privKey(scalar []byte) (*btcec.PrivateKey, error) {
	var s btcec.ModNScalar
	if overflow := s.SetByteSlice(scalar); overflow || s.IsZero() {
		s.Zero()
		return nil, ErrInvalidScalar
	}
	k := btcec.PrivKeyFromScalar(&s)
	s.Zero()
	return k, nil
}

func (e secp256k1Engine) publicFromScalar(scalar []byte) ([]byte, error) {
	k, err := e.privKey(scalar)
	if err != nil {
		return nil, err
	}
	defer k.Zero()
	return k.PubKey().SerializeUncompressed(), nil
}

func (secp256k1Engine) decompress(compressed []byte) ([]byte, error) {
	pub, err := btcec.ParsePubKey(compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	return pub.SerializeUncompressed(), nil
}

func (secp256k1Engine) validate(point []byte) error {
	// ParsePubKey also takes the hybrid 0x06/0x07 prefixes; only 0x04 is
	// canonical here.
	if len(point) != 65 || point[0] != 0x04 {
		return fmt.Errorf("%w: not an uncompressed secp256k1 point", ErrInvalidPoint)
	}
	if _, err := btcec.ParsePubKey(point); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	return nil
}

func (e secp256k1Engine) ecdh(scalar, point []byte) ([]byte, error) {
	k, err := e.privKey(scalar)
	if err != nil {
		return nil, err
	}
	defer k.Zero()
	pub, err := btcec.ParsePubKey(point)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	return btcec.GenerateSharedSecret(k, pub), nil
}
