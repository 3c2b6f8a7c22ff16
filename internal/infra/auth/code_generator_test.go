package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_ExactLength(t *testing.T) {
	gen := NewCodeGenerator()

	for _, length := range []int{1, 4, 5, 6, 8, 32} {
		code, err := gen.Generate(length)
		require.NoError(t, err)
		assert.Len(t, code, length)
		assert.Regexp(t, "^[0-9a-f]+$", code)
	}
}

func TestCodeGenerator_NonPositiveLength(t *testing.T) {
	gen := NewCodeGenerator()

	_, err := gen.Generate(0)
	assert.Error(t, err)

	_, err = gen.Generate(-3)
	assert.Error(t, err)
}

func TestCodeGenerator_DrawsAreIndependent(t *testing.T) {
	gen := NewCodeGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 64; i++ {
		code, err := gen.Generate(16)
		require.NoError(t, err)
		seen[code] = struct{}{}
	}

	// 64 draws of 64-bit codes colliding would point at a broken source.
	assert.Len(t, seen, 64)
}
