package ecies

import (
	"errors"

	"ecieskem/internal/crypto"
	"ecieskem/internal/domain"
	"ecieskem/internal/util/memzero"
)

// RecipientKem is the recipient side of the ECIES-HKDF KEM. It borrows the
// private key; the caller keeps ownership and wipes it when done.
type RecipientKem struct {
	priv *crypto.PrivateKey
}

// NewRecipientKem binds a KEM to a recipient private key.
func NewRecipientKem(priv *crypto.PrivateKey) (*RecipientKem, error) {
	if priv == nil {
		return nil, wrap(ErrInvalidKey, errors.New("nil recipient private key"))
	}
	return &RecipientKem{priv: priv}, nil
}

// Decapsulate recovers the symmetric key from the encapsulated key produced
// by a SenderKem with the same parameters.
func (r *RecipientKem) Decapsulate(
	encapsulated []byte,
	hash domain.Hash,
	salt, info []byte,
	keySize int,
	format domain.PointFormat,
) ([]byte, error) {
	if err := checkParams(hash, keySize, format); err != nil {
		return nil, err
	}

	eph, err := crypto.ParsePublicKey(r.priv.Curve(), format, encapsulated)
	if err != nil {
		return nil, wrap(ErrInvalidEncapsulation, err)
	}

	shared, err := computeSharedSecret(r.priv, eph)
	if err != nil {
		return nil, wrap(ErrCurveComputation, err)
	}
	defer memzero.Zero(shared)

	key, err := crypto.ComputeEciesHKDFSymmetricKey(encapsulated, shared, hash, salt, info, keySize)
	if err != nil {
		return nil, derivationError(err)
	}
	return key, nil
}

// DecapsulateParams is Decapsulate with its parameters taken from p.
func (r *RecipientKem) DecapsulateParams(encapsulated []byte, p domain.DerivationParams) ([]byte, error) {
	return r.Decapsulate(encapsulated, p.Hash, p.Salt, p.Info, p.KeySize, p.PointFormat)
}
