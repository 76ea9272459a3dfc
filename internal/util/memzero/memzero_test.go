package memzero_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ecieskem/internal/util/memzero"
)

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	memzero.Zero(b)
	require.Equal(t, []byte{0, 0, 0, 0}, b)

	memzero.Zero(nil)
}
