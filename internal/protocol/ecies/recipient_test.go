package ecies_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecieskem/internal/crypto"
	"ecieskem/internal/domain"
	"ecieskem/internal/protocol/ecies"
)

// Decapsulation vectors produced by an independent implementation, all
// with uncompressed tokens and 32-byte outputs.
var decapVectors = []struct {
	curve    domain.Curve
	hash     domain.Hash
	token    string
	point    string
	scalar   string
	salt     string
	info     string
	expected string
}{
	{
		curve: domain.P256,
		hash:  domain.SHA256,
		token: "04" +
			"5cdd8e426d11970a610f0e5f9b27f247a421c477b379f2ff3fd3bac50dfff9ff" +
			"7cada79ab1de9ce4aeaff45fcd2628d1b6d7ecac99d4c26409d4ab8a362c8e7a",
		point: "04" +
			"4adf0fff84b995bb97af250128a3d779c86ba3cd7e5c0fa2c10895d0b995aaee" +
			"cdced57616ebb04c808f191c2bf3848c495dcfddcdd1bb73d8ea7a15c642af05",
		scalar:   "da73e10f7d81483daa63438b982c879706bcf8fef8c7c4d3071c3ef2367714f3",
		salt:     "abcdef",
		info:     "aaaaaaaaaaaaaaaa",
		expected: "aeeee35a14967310798f037e2f126e2e326369115eb9e2d1a34d9c6761f60511",
	},
	{
		curve: domain.P384,
		hash:  domain.SHA1,
		token: "04" +
			"75bc8a2e6cf80ce2e0a1cd60ab3d68e4d357b58ff69f0de14b7ec13c58a79750496e07db3f933167148d80730b96f000" +
			"9389967de410535ca3e103e7ce73dae9525f934589a6cd1fca37e61411985788dcedc71b35ef63b7365e391f6e2a945f",
		point: "04" +
			"5f81886c4202897355b1da79348d53abd9e9119a7de6f5f10dfe751f7ca9c807035c029bac59499337c4af185fe61728" +
			"f132bfb234365a9c61e1e56c11acca3bee6621961c7c38eb9dcbd39b332fd35006876dccdb206a7b2d43cf70589c3356",
		scalar:   "544b5f32731d6277fa71e756f0b2d6840f62e6b744a8b8cdf91f8cf29e6d8562f6237369721f756ab044711e0d42c53c",
		salt:     "ababcdcd",
		info:     "100000000000000001",
		expected: "7a25c525eabaa0d994c27f7661a208b5ea25c2a778198237de6e4f235cd64a33",
	},
	{
		curve: domain.P521,
		hash:  domain.SHA512,
		token: "04" +
			"0075192f8decddf7a0371b2c859aad738cc5424fa70e74b560070ed8309ae8a6064b06f9aaad8020ac8620e62a6c1196efa44180d325a36a54945743b9382bd49bc1" +
			"000dfa1e30b228e975998b7afeaaf30235ec505960e58bf3269b69fffcbce9f15fc1441fab2ed97f554ae4bde8b956efb2372c5b330cb1aa0ab81b99e792acd7f5a8",
		point: "04" +
			"00e57037a96bcbca532ef2f75646d825304ea716bbc9c4bf953455074347158f4818122c76e26a4cf94b39f451b7f5960b9cda43d49999ddc401c1be7f082052b387" +
			"0147197ba83ec55c8b02e6cbe7b49ce6d6c238edb89561bde6b4574a585c684379d8040888117866823258216344a7268dc696c3a2d192824a1e693609b44661fc2c",
		scalar:   "001e5410117d22e95c5768b82a786dd66fa8c326b938a3a81fdd6113499437ae9f74e9f876adf085c187c6a147abc13460b8ed3050a6b228005426b61f2b616a79c6",
		salt:     "00001111",
		info:     "1234123412341234",
		expected: "3f7f64c7aba2cb012c9b5a952385290604b3b5843ec6e6714647a9c9d6ac87be",
	},
}

func TestRecipientKem_DecapsulationVectors(t *testing.T) {
	for _, v := range decapVectors {
		t.Run(v.curve.String()+"/"+v.hash.String(), func(t *testing.T) {
			priv, err := crypto.NewPrivateKey(v.curve, unhex(t, v.scalar))
			require.NoError(t, err)
			require.Equal(t, unhex(t, v.point), priv.Public().Bytes())

			r, err := ecies.NewRecipientKem(priv)
			require.NoError(t, err)
			got, err := r.Decapsulate(unhex(t, v.token), v.hash, unhex(t, v.salt), unhex(t, v.info), 32, domain.Uncompressed)
			require.NoError(t, err)
			assert.Equal(t, unhex(t, v.expected), got)
		})
	}
}

func TestRecipientKem_RoundTrip(t *testing.T) {
	curves := []domain.Curve{domain.P256, domain.P384, domain.P521, domain.Secp256k1}
	hashes := []domain.Hash{domain.SHA1, domain.SHA224, domain.SHA256, domain.SHA384, domain.SHA512}
	formats := []domain.PointFormat{domain.Uncompressed, domain.Compressed, domain.LegacyUncompressed}

	for _, c := range curves {
		priv, err := crypto.GenerateKey(c, rand.Reader)
		require.NoError(t, err)
		s, err := ecies.NewSenderKem(priv.Public())
		require.NoError(t, err)
		r, err := ecies.NewRecipientKem(priv)
		require.NoError(t, err)

		for _, h := range hashes {
			for _, f := range formats {
				t.Run(c.String()+"/"+h.String()+"/"+f.String(), func(t *testing.T) {
					salt := make([]byte, 16)
					info := make([]byte, 8)
					_, _ = rand.Read(salt)
					_, _ = rand.Read(info)

					k, err := s.GenerateKey(h, salt, info, 32, f)
					require.NoError(t, err)
					require.Len(t, k.SymmetricKey, 32)

					got, err := r.Decapsulate(k.EncapsulatedKey, h, salt, info, 32, f)
					require.NoError(t, err)
					assert.Equal(t, k.SymmetricKey, got)
				})
			}
		}
	}
}

func TestRecipientKem_DecapsulateParams(t *testing.T) {
	priv, err := crypto.GenerateKey(domain.P256, rand.Reader)
	require.NoError(t, err)
	s, err := ecies.NewSenderKem(priv.Public())
	require.NoError(t, err)
	r, err := ecies.NewRecipientKem(priv)
	require.NoError(t, err)

	p := domain.DerivationParams{
		Hash:        domain.SHA256,
		Salt:        []byte("salt"),
		Info:        []byte("info"),
		KeySize:     20,
		PointFormat: domain.Compressed,
	}
	k, err := s.Encapsulate(p)
	require.NoError(t, err)
	got, err := r.DecapsulateParams(k.EncapsulatedKey, p)
	require.NoError(t, err)
	assert.Equal(t, k.SymmetricKey, got)
}

func TestRecipientKem_RejectsInvalidTokens(t *testing.T) {
	for _, c := range []domain.Curve{domain.P256, domain.P384, domain.P521, domain.Secp256k1} {
		t.Run(c.String(), func(t *testing.T) {
			priv, err := crypto.GenerateKey(c, rand.Reader)
			require.NoError(t, err)
			r, err := ecies.NewRecipientKem(priv)
			require.NoError(t, err)

			size, err := crypto.FieldSize(c)
			require.NoError(t, err)

			// Flip the last byte of a valid point so it leaves the curve.
			token := priv.Public().Bytes()
			token[len(token)-1] ^= 0x01
			_, err = r.Decapsulate(token, domain.SHA256, nil, nil, 32, domain.Uncompressed)
			require.ErrorIs(t, err, ecies.ErrInvalidEncapsulation)

			_, err = r.Decapsulate(token[:1+size], domain.SHA256, nil, nil, 32, domain.Uncompressed)
			require.ErrorIs(t, err, ecies.ErrInvalidEncapsulation)

			_, err = r.Decapsulate(nil, domain.SHA256, nil, nil, 32, domain.Compressed)
			require.ErrorIs(t, err, ecies.ErrInvalidEncapsulation)
		})
	}
}

func TestRecipientKem_WrongKeyDerivesDifferentSecret(t *testing.T) {
	a, err := crypto.GenerateKey(domain.P256, rand.Reader)
	require.NoError(t, err)
	b, err := crypto.GenerateKey(domain.P256, rand.Reader)
	require.NoError(t, err)

	s, err := ecies.NewSenderKem(a.Public())
	require.NoError(t, err)
	k, err := s.GenerateKey(domain.SHA256, nil, nil, 32, domain.Uncompressed)
	require.NoError(t, err)

	r, err := ecies.NewRecipientKem(b)
	require.NoError(t, err)
	got, err := r.Decapsulate(k.EncapsulatedKey, domain.SHA256, nil, nil, 32, domain.Uncompressed)
	require.NoError(t, err)
	assert.NotEqual(t, k.SymmetricKey, got)
}

func TestNewRecipientKem_Nil(t *testing.T) {
	_, err := ecies.NewRecipientKem(nil)
	require.ErrorIs(t, err, ecies.ErrInvalidKey)
}
