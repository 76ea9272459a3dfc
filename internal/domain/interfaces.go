package domain

// KeyStore persists recipient key pairs. Private scalars are sealed under a
// passphrase; public records are readable without one.
type KeyStore interface {
	SaveKeyPair(passphrase string, kp KeyPair) error
	LoadKeyPair(passphrase, name string) (KeyPair, error)
	LoadPublicKey(name string) (KeyRecord, bool, error)
	ListPublicKeys() ([]KeyRecord, error)
}
