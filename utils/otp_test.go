package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPGenerator_Generate(t *testing.T) {
	gen := NewOTPGenerator(6)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "unexpected rune %q in %s", r, code)
		}
		seen[code] = struct{}{}
	}
	// 50 draws from 10^6 codes colliding down to a handful means the source is broken.
	assert.Greater(t, len(seen), 40)
}

func TestOTPGenerator_InvalidLength(t *testing.T) {
	_, err := NewOTPGenerator(0).Generate()
	assert.Error(t, err)
}
