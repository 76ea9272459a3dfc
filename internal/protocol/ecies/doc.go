// Package ecies implements the HKDF-based key encapsulation mechanism (KEM)
// of ECIES.
//
// # Overview
//
// A SenderKem is bound to one recipient public key. Each GenerateKey call:
//  1. Generates a fresh ephemeral key pair on the recipient's curve.
//  2. Computes the ECDH shared secret (affine x-coordinate) of the ephemeral
//     private key and the recipient public key.
//  3. Encodes the ephemeral public point in the requested format; this is
//     the encapsulated key sent next to the ciphertext.
//  4. Derives the symmetric key with HKDF over encapsulatedKey || sharedSecret
//     using the caller's hash, salt and info.
//
// A RecipientKem repeats steps 2 and 4 from the recipient's private key and
// the received encapsulated key, yielding the same symmetric key.
//
// # Errors
//
// Every failure aborts the whole operation and no key material is returned.
// Errors match one of ErrInvalidKey, ErrRandomness, ErrCurveComputation,
// ErrDerivationLength, ErrInvalidParameters or ErrInvalidEncapsulation with
// errors.Is, and also the underlying engine error.
//
// # Security notes
//
// The ephemeral scalar, the shared secret and the HKDF input are wiped before
// GenerateKey returns, on success and failure alike. SenderKem and
// RecipientKem are immutable and safe for concurrent use.
package ecies
