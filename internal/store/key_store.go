package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"sync"

	"ecieskem/internal/domain"
	"ecieskem/internal/util/memzero"
)

const (
	publicKeysFile = "public_keys.json" // map[name]domain.KeyRecord
	privateDir     = "private"
	privateSuffix  = ".key.enc"
)

var (
	ErrKeyNotFound = errors.New("store: key not found")
	ErrKeyExists   = errors.New("store: key already exists")
	ErrInvalidName = errors.New("store: invalid key name")
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

// writeRecords replaces the public record file.
var writeRecords = func(path string, records map[string]domain.KeyRecord) error {
	return writeJSON(path, records, 0o600)
}

// privatePayload is the plaintext sealed in each private key file.
type privatePayload struct {
	Curve   domain.Curve `json:"curve"`
	Private []byte       `json:"private"`
}

// KeyFileStore persists recipient key pairs under a directory.
type KeyFileStore struct {
	dir    string
	scrypt scryptParams
	mu     sync.Mutex
}

// Option configures a KeyFileStore.
type Option func(*KeyFileStore)

// WithScryptParams overrides the passphrase KDF cost. Lower costs are only
// meant for tests.
func WithScryptParams(n, r, p int) Option {
	return func(s *KeyFileStore) { s.scrypt = scryptParams{N: n, R: r, P: p} }
}

// NewKeyFileStore returns a KeyFileStore rooted at dir.
func NewKeyFileStore(dir string, opts ...Option) *KeyFileStore {
	s := &KeyFileStore{dir: dir, scrypt: defaultScryptParams()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateName reports whether name can be used as a key name.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// SaveKeyPair seals the private scalar under passphrase and records the
// public half. Existing names are never overwritten.
func (s *KeyFileStore) SaveKeyPair(passphrase string, kp domain.KeyPair) error {
	if err := ValidateName(kp.Name); err != nil {
		return err
	}
	if !kp.Curve.Valid() {
		return fmt.Errorf("store: key %q has no curve", kp.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readRecords()
	if err != nil {
		return err
	}
	if _, ok := records[kp.Name]; ok {
		return fmt.Errorf("%w: %q", ErrKeyExists, kp.Name)
	}

	raw, err := json.Marshal(privatePayload{Curve: kp.Curve, Private: kp.Private})
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	sealed, err := seal(passphrase, raw, keyAD(kp.Name), s.scrypt)
	if err != nil {
		return err
	}
	if err := writeFile(s.privatePath(kp.Name), sealed, 0o600); err != nil {
		return err
	}

	records[kp.Name] = kp.KeyRecord
	if err := writeRecords(filepath.Join(s.dir, publicKeysFile), records); err != nil {
		// No record points at the sealed file; drop it so the name stays free.
		_ = os.Remove(s.privatePath(kp.Name))
		return err
	}
	return nil
}

// LoadKeyPair reads the public record and unseals the private scalar. The
// caller owns KeyPair.Private and should wipe it.
func (s *KeyFileStore) LoadKeyPair(passphrase, name string) (domain.KeyPair, error) {
	if err := ValidateName(name); err != nil {
		return domain.KeyPair{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readRecords()
	if err != nil {
		return domain.KeyPair{}, err
	}
	rec, ok := records[name]
	if !ok {
		return domain.KeyPair{}, fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}

	sealed, err := os.ReadFile(s.privatePath(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.KeyPair{}, fmt.Errorf("%w: no private key for %q", ErrKeyNotFound, name)
		}
		return domain.KeyPair{}, err
	}
	raw, err := open(passphrase, sealed, keyAD(name))
	if err != nil {
		return domain.KeyPair{}, err
	}
	defer memzero.Zero(raw)

	var payload privatePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return domain.KeyPair{}, fmt.Errorf("store: malformed private key %q: %w", name, err)
	}
	if payload.Curve != rec.Curve {
		return domain.KeyPair{}, fmt.Errorf("store: private key %q is on %s, record says %s", name, payload.Curve, rec.Curve)
	}
	return domain.KeyPair{KeyRecord: rec, Private: payload.Private}, nil
}

// LoadPublicKey returns the public record for name, if any.
func (s *KeyFileStore) LoadPublicKey(name string) (domain.KeyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readRecords()
	if err != nil {
		return domain.KeyRecord{}, false, err
	}
	rec, ok := records[name]
	return rec, ok, nil
}

// ListPublicKeys returns every public record ordered by name.
func (s *KeyFileStore) ListPublicKeys() ([]domain.KeyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readRecords()
	if err != nil {
		return nil, err
	}
	out := make([]domain.KeyRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *KeyFileStore) readRecords() (map[string]domain.KeyRecord, error) {
	records := make(map[string]domain.KeyRecord)
	if err := readJSON(filepath.Join(s.dir, publicKeysFile), &records); err != nil {
		return nil, fmt.Errorf("store: read %s: %w", publicKeysFile, err)
	}
	return records, nil
}

func (s *KeyFileStore) privatePath(name string) string {
	return filepath.Join(s.dir, privateDir, name+privateSuffix)
}

// keyAD binds a sealed file to its key name.
func keyAD(name string) []byte {
	return []byte("ecieskem/key:" + name)
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
