// Package crypto is the curve and KDF engine behind the ECIES-HKDF KEM.
//
// Contents
//
//   - Key generation, parsing and point encoding on P-256, P-384, P-521 and
//     secp256k1 (GenerateKey, NewPrivateKey, ParsePublicKey, PublicKey.Encode)
//   - ECDH shared secrets as fixed-size affine x-coordinates
//     (ComputeSharedSecret)
//   - HKDF (RFC 5869) and the ECIES input construction kem || sharedSecret
//     (ComputeHKDF, ComputeEciesHKDFSymmetricKey)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Public keys are held in canonical uncompressed SEC1 form and are validated
// on the curve when parsed, so a *PublicKey is always a usable point. Private
// keys own their scalar buffer; call Wipe once the key is no longer needed.
// NIST curves run on crypto/ecdh, secp256k1 on btcec.
package crypto
