package domain

import (
	"fmt"
	"strings"
)

// Curve names an elliptic curve supported by the curve engine.
// The zero value is not a valid curve.
type Curve uint8

const (
	_ Curve = iota
	P256
	P384
	P521
	Secp256k1
)

var curveNames = map[Curve]string{
	P256:      "P256",
	P384:      "P384",
	P521:      "P521",
	Secp256k1: "SECP256K1",
}

// String returns the canonical curve name.
func (c Curve) String() string {
	if n, ok := curveNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Curve(%d)", uint8(c))
}

// Valid reports whether c is one of the named curves.
func (c Curve) Valid() bool {
	_, ok := curveNames[c]
	return ok
}

// ParseCurve accepts canonical names plus the NIST_Pxxx and P-xxx spellings.
func ParseCurve(s string) (Curve, error) {
	n := strings.ToUpper(strings.TrimSpace(s))
	n = strings.TrimPrefix(n, "NIST_")
	n = strings.ReplaceAll(n, "-", "")
	for c, name := range curveNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown curve %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Curve) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid curve %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Curve) UnmarshalText(b []byte) error {
	v, err := ParseCurve(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
