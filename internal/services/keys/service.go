package keys

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/pkg/errors"

	"ecieskem/internal/crypto"
	"ecieskem/internal/domain"
	"ecieskem/internal/log"
	"ecieskem/internal/protocol/ecies"
	"ecieskem/internal/util/memzero"
)

var (
	// ErrUnknownKey is returned when no key with the requested name is stored.
	ErrUnknownKey = errors.New("unknown key")
	// ErrKeyMismatch is returned when a stored private scalar does not
	// derive the stored public point.
	ErrKeyMismatch = errors.New("private key does not match public record")
)

// Service manages recipient keys using a backing store.
type Service struct {
	store domain.KeyStore
	rand  io.Reader
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithRandom sets the randomness used for key generation and encapsulation.
// A nil reader keeps crypto/rand.
func WithRandom(r io.Reader) Option {
	return func(s *Service) {
		if r != nil {
			s.rand = r
		}
	}
}

// WithClock sets the clock used to stamp new keys.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New returns a key service backed by the given store.
func New(s domain.KeyStore, opts ...Option) *Service {
	svc := &Service{store: s, rand: rand.Reader, now: time.Now}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Generate creates a key pair on curve, saves it under name sealed with
// passphrase and returns the public record plus its fingerprint.
func (s *Service) Generate(
	passphrase, name string,
	curve domain.Curve,
) (domain.KeyRecord, domain.Fingerprint, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.KeyRecord{}, "", ErrWeakPassphrase
	}

	priv, err := crypto.GenerateKey(curve, s.rand)
	if err != nil {
		return domain.KeyRecord{}, "", errors.Wrapf(err, "generate %s key", curve)
	}
	defer priv.Wipe()

	scalar := priv.Bytes()
	defer memzero.Zero(scalar)

	kp := domain.KeyPair{
		KeyRecord: domain.KeyRecord{
			Name:       name,
			Curve:      curve,
			Public:     priv.Public().Bytes(),
			CreatedUTC: s.now().UTC().Unix(),
		},
		Private: scalar,
	}
	if err := s.store.SaveKeyPair(passphrase, kp); err != nil {
		return domain.KeyRecord{}, "", errors.Wrapf(err, "save key %q", name)
	}

	fp := crypto.Fingerprint(priv.Public())
	log.Info().
		Str("name", name).
		Stringer("curve", curve).
		Stringer("fingerprint", fp).
		Msg("key generated")
	return kp.KeyRecord, fp, nil
}

// Public returns the stored public key called name.
func (s *Service) Public(name string) (*crypto.PublicKey, error) {
	rec, ok, err := s.store.LoadPublicKey(name)
	if err != nil {
		return nil, errors.Wrapf(err, "load public key %q", name)
	}
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKey, "%q", name)
	}
	pub, err := crypto.ParsePublicKey(rec.Curve, domain.Uncompressed, rec.Public)
	if err != nil {
		return nil, errors.Wrapf(err, "stored public key %q", name)
	}
	return pub, nil
}

// Fingerprint returns the fingerprint of the stored public key called name.
func (s *Service) Fingerprint(name string) (domain.Fingerprint, error) {
	pub, err := s.Public(name)
	if err != nil {
		return "", err
	}
	return crypto.Fingerprint(pub), nil
}

// List returns every stored public record.
func (s *Service) List() ([]domain.KeyRecord, error) {
	recs, err := s.store.ListPublicKeys()
	if err != nil {
		return nil, errors.Wrap(err, "list keys")
	}
	return recs, nil
}

// Encapsulate runs the sender KEM against recipient.
func (s *Service) Encapsulate(recipient *crypto.PublicKey, p domain.DerivationParams) (domain.KemKey, error) {
	sender, err := ecies.NewSenderKem(recipient, ecies.WithRandom(s.rand))
	if err != nil {
		return domain.KemKey{}, err
	}
	kk, err := sender.Encapsulate(p)
	if err != nil {
		log.Debug().Err(err).Stringer("curve", recipient.Curve()).Msg("encapsulation failed")
		return domain.KemKey{}, err
	}
	log.Debug().
		Stringer("fingerprint", crypto.Fingerprint(sender.Recipient())).
		Stringer("hash", p.Hash).
		Stringer("format", p.PointFormat).
		Int("key_size", p.KeySize).
		Msg("key encapsulated")
	return kk, nil
}

// EncapsulateTo runs the sender KEM against the stored public key called
// name.
func (s *Service) EncapsulateTo(name string, p domain.DerivationParams) (domain.KemKey, error) {
	pub, err := s.Public(name)
	if err != nil {
		return domain.KemKey{}, err
	}
	return s.Encapsulate(pub, p)
}

// Decapsulate unseals the private key called name and recovers the
// symmetric key from encapsulated.
func (s *Service) Decapsulate(
	passphrase, name string,
	encapsulated []byte,
	p domain.DerivationParams,
) ([]byte, error) {
	kp, err := s.store.LoadKeyPair(passphrase, name)
	if err != nil {
		return nil, errors.Wrapf(err, "load key %q", name)
	}
	defer memzero.Zero(kp.Private)

	priv, err := crypto.NewPrivateKey(kp.Curve, kp.Private)
	if err != nil {
		return nil, errors.Wrapf(err, "stored private key %q", name)
	}
	defer priv.Wipe()

	stored, err := crypto.ParsePublicKey(kp.Curve, domain.Uncompressed, kp.Public)
	if err != nil {
		return nil, errors.Wrapf(err, "stored public key %q", name)
	}
	if !stored.Equal(priv.Public()) {
		return nil, errors.Wrapf(ErrKeyMismatch, "%q", name)
	}

	recipient, err := ecies.NewRecipientKem(priv)
	if err != nil {
		return nil, err
	}
	key, err := recipient.DecapsulateParams(encapsulated, p)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("name", name).
		Stringer("hash", p.Hash).
		Stringer("format", p.PointFormat).
		Int("key_size", p.KeySize).
		Msg("key decapsulated")
	return key, nil
}
