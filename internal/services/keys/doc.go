// Package keys manages recipient key pairs and runs the ECIES-HKDF KEM
// against them.
//
// It enforces the passphrase policy, generates key pairs on any supported
// curve, persists them via a domain.KeyStore and exposes encapsulation to a
// stored or supplied public key and decapsulation with a stored private key.
package keys
