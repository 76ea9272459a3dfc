package ecies

import (
	"errors"
	"io"

	"ecieskem/internal/crypto"
	"ecieskem/internal/domain"
	"ecieskem/internal/util/memzero"
)

// SenderKem is the sender side of the ECIES-HKDF KEM, bound to one
// recipient public key.
type SenderKem struct {
	recipient *crypto.PublicKey
	rand      io.Reader
}

// NewSenderKem binds a KEM to recipient. It fails with ErrInvalidKey when
// the key is nil, on an unsupported curve or not a point on its curve.
func NewSenderKem(recipient *crypto.PublicKey, opts ...Option) (*SenderKem, error) {
	if recipient == nil {
		return nil, wrap(ErrInvalidKey, errors.New("nil recipient public key"))
	}
	// Re-parse so the KEM holds its own validated copy.
	pub, err := crypto.ParsePublicKey(recipient.Curve(), domain.Uncompressed, recipient.Bytes())
	if err != nil {
		return nil, wrap(ErrInvalidKey, err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SenderKem{recipient: pub, rand: o.rand}, nil
}

// NewSenderKemFromBytes parses encoded in format on curve and binds a KEM
// to it.
func NewSenderKemFromBytes(
	curve domain.Curve,
	format domain.PointFormat,
	encoded []byte,
	opts ...Option,
) (*SenderKem, error) {
	pub, err := crypto.ParsePublicKey(curve, format, encoded)
	if err != nil {
		return nil, wrap(ErrInvalidKey, err)
	}
	return NewSenderKem(pub, opts...)
}

// Recipient returns the bound recipient key.
func (s *SenderKem) Recipient() *crypto.PublicKey { return s.recipient }

// GenerateKey draws a fresh ephemeral key and returns its encoding together
// with a keySize-byte symmetric key derived from the shared secret.
func (s *SenderKem) GenerateKey(
	hash domain.Hash,
	salt, info []byte,
	keySize int,
	format domain.PointFormat,
) (domain.KemKey, error) {
	if err := checkParams(hash, keySize, format); err != nil {
		return domain.KemKey{}, err
	}

	eph, err := crypto.GenerateKey(s.recipient.Curve(), s.rand)
	if err != nil {
		if errors.Is(err, crypto.ErrRandomSource) {
			return domain.KemKey{}, wrap(ErrRandomness, err)
		}
		return domain.KemKey{}, wrap(ErrCurveComputation, err)
	}
	defer eph.Wipe()

	shared, err := computeSharedSecret(eph, s.recipient)
	if err != nil {
		return domain.KemKey{}, wrap(ErrCurveComputation, err)
	}
	defer memzero.Zero(shared)

	kem, err := eph.Public().Encode(format)
	if err != nil {
		return domain.KemKey{}, wrap(ErrInvalidParameters, err)
	}

	key, err := crypto.ComputeEciesHKDFSymmetricKey(kem, shared, hash, salt, info, keySize)
	if err != nil {
		return domain.KemKey{}, derivationError(err)
	}
	return domain.KemKey{EncapsulatedKey: kem, SymmetricKey: key}, nil
}

// Encapsulate is GenerateKey with its parameters taken from p.
func (s *SenderKem) Encapsulate(p domain.DerivationParams) (domain.KemKey, error) {
	return s.GenerateKey(p.Hash, p.Salt, p.Info, p.KeySize, p.PointFormat)
}
