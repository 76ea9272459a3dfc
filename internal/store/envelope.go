package store

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"ecieskem/internal/util/memzero"
)

const (
	// The current version of the sealed key format stored on disk.
	envelopeVersion = 1
	saltSize        = 16
)

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// sealed file has been modified, corrupted or moved to another key name.
var ErrWrongPassphrase = errors.New("store: wrong passphrase or corrupted key file")

// scryptParams are the cost parameters of the passphrase KDF.
type scryptParams struct {
	N, R, P int
}

func defaultScryptParams() scryptParams { return scryptParams{N: 1 << 15, R: 8, P: 1} }

// envelope is the on-disk JSON structure holding the ciphertext and KDF
// parameters.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// seal derives a key from passphrase and seals raw. ad is authenticated
// together with the salt.
func seal(passphrase string, raw, ad []byte, sp scryptParams) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	aead, err := newAEAD(passphrase, salt, sp)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; every seal uses a fresh salt and so a fresh key
	ct := aead.Seal(nil, nonce[:], raw, associatedData(salt, ad))

	return json.Marshal(envelope{
		V:      envelopeVersion,
		Salt:   salt,
		N:      sp.N,
		R:      sp.R,
		P:      sp.P,
		Cipher: ct,
	})
}

// open reverses seal. The caller owns the plaintext and should wipe it.
func open(passphrase string, b, ad []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("store: malformed key file: %w", err)
	}
	if env.V > envelopeVersion {
		return nil, fmt.Errorf("store: unsupported key file version %d", env.V)
	}
	if len(env.Salt) != saltSize {
		return nil, ErrWrongPassphrase
	}

	aead, err := newAEAD(passphrase, env.Salt, scryptParams{N: env.N, R: env.R, P: env.P})
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], env.Cipher, associatedData(env.Salt, ad))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func newAEAD(passphrase string, salt []byte, sp scryptParams) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, sp.N, sp.R, sp.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)
	return chacha20poly1305.New(key)
}

func associatedData(salt, ad []byte) []byte {
	out := make([]byte, 0, len(salt)+len(ad))
	out = append(out, salt...)
	return append(out, ad...)
}
