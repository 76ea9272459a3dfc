package ecies

import (
	"crypto/rand"
	"io"
)

// Option configures a SenderKem.
type Option func(*options)

type options struct {
	rand io.Reader
}

func defaultOptions() options {
	return options{rand: rand.Reader}
}

// WithRandom sets the source of ephemeral scalars. It defaults to
// crypto/rand.Reader; anything else is for tests that pin the ephemeral key.
func WithRandom(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}
