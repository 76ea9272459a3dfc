package domain

// Fingerprint is a short, printable digest of a public key.
type Fingerprint string

func (f Fingerprint) String() string { return string(f) }

// KeyRecord is the public half of a stored recipient key. Public is the
// uncompressed SEC1 encoding of the point.
type KeyRecord struct {
	Name       string `json:"name"`
	Curve      Curve  `json:"curve"`
	Public     []byte `json:"public"`
	CreatedUTC int64  `json:"created_utc"`
}

// KeyPair is a stored recipient key including its private scalar.
type KeyPair struct {
	KeyRecord
	Private []byte `json:"private"`
}
