// Package store provides file-based persistence for recipient key pairs.
//
// KeyFileStore implements domain.KeyStore. Public records live in clear in
// public_keys.json under the store directory; private scalars are sealed
// one per file under private/ with a passphrase-derived key (scrypt +
// ChaCha20-Poly1305) and the key name bound as associated data. All writes
// go through a temp file and an atomic rename. Methods are safe for
// concurrent use via internal locking.
package store
