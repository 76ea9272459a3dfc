package keys_test

import (
	"crypto/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecieskem/internal/crypto"
	"ecieskem/internal/domain"
	"ecieskem/internal/protocol/ecies"
	"ecieskem/internal/services/keys"
	"ecieskem/internal/store"
)

const pass = "Correct-Horse-42"

func newService(t *testing.T, opts ...keys.Option) *keys.Service {
	t.Helper()
	st := store.NewKeyFileStore(t.TempDir(), store.WithScryptParams(1<<10, 8, 1))
	return keys.New(st, opts...)
}

func params() domain.DerivationParams {
	return domain.DerivationParams{
		Hash:        domain.SHA256,
		Salt:        []byte("salt"),
		Info:        []byte("info"),
		KeySize:     32,
		PointFormat: domain.Compressed,
	}
}

func TestGenerate_WeakPassphrase(t *testing.T) {
	svc := newService(t)
	for _, p := range []string{"", "short1!A", "alllowercase123!", "ALLUPPERCASE123!", "NoDigitsHere!!", "NoSymbols12345"} {
		_, _, err := svc.Generate(p, "alice", domain.P256)
		require.ErrorIs(t, err, keys.ErrWeakPassphrase, p)
	}
}

func TestGenerate_StoresPublicRecord(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := newService(t, keys.WithClock(func() time.Time { return at }))

	rec, fp, err := svc.Generate(pass, "alice", domain.P384)
	require.NoError(t, err)
	assert.Equal(t, "alice", rec.Name)
	assert.Equal(t, domain.P384, rec.Curve)
	assert.Equal(t, at.Unix(), rec.CreatedUTC)
	assert.Len(t, rec.Public, 1+2*48)

	pub, err := svc.Public("alice")
	require.NoError(t, err)
	assert.Equal(t, rec.Public, pub.Bytes())

	got, err := svc.Fingerprint("alice")
	require.NoError(t, err)
	assert.Equal(t, fp, got)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rec, list[0])
}

func TestEncapsulateDecapsulate_AllCurves(t *testing.T) {
	svc := newService(t)
	for _, c := range []domain.Curve{domain.P256, domain.P384, domain.P521, domain.Secp256k1} {
		t.Run(c.String(), func(t *testing.T) {
			name := "key-" + c.String()
			_, _, err := svc.Generate(pass, name, c)
			require.NoError(t, err)

			kk, err := svc.EncapsulateTo(name, params())
			require.NoError(t, err)

			key, err := svc.Decapsulate(pass, name, kk.EncapsulatedKey, params())
			require.NoError(t, err)
			assert.Equal(t, kk.SymmetricKey, key)
		})
	}
}

func TestDecapsulate_WrongPassphrase(t *testing.T) {
	svc := newService(t)
	_, _, err := svc.Generate(pass, "alice", domain.P256)
	require.NoError(t, err)
	kk, err := svc.EncapsulateTo("alice", params())
	require.NoError(t, err)

	_, err = svc.Decapsulate("Wrong-Horse-42!", "alice", kk.EncapsulatedKey, params())
	require.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestDecapsulate_BadToken(t *testing.T) {
	svc := newService(t)
	_, _, err := svc.Generate(pass, "alice", domain.P256)
	require.NoError(t, err)

	_, err = svc.Decapsulate(pass, "alice", []byte{0x02, 0x01}, params())
	require.ErrorIs(t, err, ecies.ErrInvalidEncapsulation)
}

func TestUnknownKey(t *testing.T) {
	svc := newService(t)

	_, err := svc.Public("ghost")
	require.ErrorIs(t, err, keys.ErrUnknownKey)
	_, err = svc.EncapsulateTo("ghost", params())
	require.ErrorIs(t, err, keys.ErrUnknownKey)
	_, err = svc.Decapsulate(pass, "ghost", nil, params())
	require.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestEncapsulate_SuppliedKey(t *testing.T) {
	svc := newService(t)
	priv, err := crypto.GenerateKey(domain.P256, rand.Reader)
	require.NoError(t, err)

	kk, err := svc.Encapsulate(priv.Public(), params())
	require.NoError(t, err)

	r, err := ecies.NewRecipientKem(priv)
	require.NoError(t, err)
	key, err := r.DecapsulateParams(kk.EncapsulatedKey, params())
	require.NoError(t, err)
	assert.Equal(t, kk.SymmetricKey, key)

	_, err = svc.Encapsulate(nil, params())
	require.ErrorIs(t, err, ecies.ErrInvalidKey)
}

func TestEncapsulate_LengthError(t *testing.T) {
	svc := newService(t)
	_, _, err := svc.Generate(pass, "alice", domain.P256)
	require.NoError(t, err)

	p := params()
	p.KeySize = 255*32 + 1
	_, err = svc.EncapsulateTo("alice", p)
	require.ErrorIs(t, err, ecies.ErrDerivationLength)
}

// swappedStore returns a key pair whose halves belong to different keys.
type swappedStore struct {
	domain.KeyStore
	kp domain.KeyPair
}

func (s swappedStore) LoadKeyPair(string, string) (domain.KeyPair, error) { return s.kp, nil }

func TestDecapsulate_KeyMismatch(t *testing.T) {
	a, err := crypto.GenerateKey(domain.P256, rand.Reader)
	require.NoError(t, err)
	b, err := crypto.GenerateKey(domain.P256, rand.Reader)
	require.NoError(t, err)

	svc := keys.New(swappedStore{kp: domain.KeyPair{
		KeyRecord: domain.KeyRecord{Name: "x", Curve: domain.P256, Public: a.Public().Bytes()},
		Private:   b.Bytes(),
	}})
	_, err = svc.Decapsulate(pass, "x", a.Public().Bytes(), params())
	require.ErrorIs(t, err, keys.ErrKeyMismatch)
}

func TestWithRandom_NilKeepsDefault(t *testing.T) {
	svc := newService(t, keys.WithRandom(nil))
	rec, _, err := svc.Generate(pass, "alice", domain.P256)
	require.NoError(t, err)
	assert.Equal(t, domain.P256, rec.Curve)

	kk, err := svc.EncapsulateTo("alice", params())
	require.NoError(t, err)
	assert.Len(t, kk.SymmetricKey, 32)
}
