package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedhash/domain/core"
)

func TestGenerator_Deterministic(t *testing.T) {
	for _, n := range []int{1, 5, 100} {
		gen1, err := NewGeneratorWithRange("determinism", 0, 1000)
		require.NoError(t, err)
		gen2, err := NewGeneratorWithRange("determinism", 0, 1000)
		require.NoError(t, err)

		seq1, err := gen1.Generate(n)
		require.NoError(t, err)
		seq2, err := gen2.Generate(n)
		require.NoError(t, err)

		assert.Equal(t, seq1, seq2, "n=%d", n)
	}
}

func TestGenerator_ReseedsPerCall(t *testing.T) {
	gen, err := NewGenerator("reseed_check")
	require.NoError(t, err)

	first, err := gen.Generate(10)
	require.NoError(t, err)
	second, err := gen.Generate(10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerator_RangeContainment(t *testing.T) {
	gen, err := NewGeneratorWithRange("containment", -50, 50)
	require.NoError(t, err)

	values, err := gen.Generate(500)
	require.NoError(t, err)
	require.Len(t, values, 500)

	for _, v := range values {
		assert.GreaterOrEqual(t, v, int64(-50))
		assert.LessOrEqual(t, v, int64(50))
	}
}

func TestGenerator_Hash(t *testing.T) {
	gen, err := NewGenerator("hello")
	require.NoError(t, err)

	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", gen.Hash())
	assert.GreaterOrEqual(t, gen.Seed(), int64(0))
}

func TestGenerator_ConstructionErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		min     int64
		max     int64
		wantErr error
	}{
		{name: "empty input", input: "", min: 0, max: 100, wantErr: core.ErrEmptyInput},
		{name: "inverted range", input: "x", min: 100, max: 50, wantErr: core.ErrInvalidRange},
		{name: "non-text input", input: string([]byte{0xc3, 0x28}), min: 0, max: 100, wantErr: core.ErrTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGeneratorWithRange(tt.input, tt.min, tt.max)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerator_InvalidCount(t *testing.T) {
	gen, err := NewGenerator("counts")
	require.NoError(t, err)

	for _, count := range []int{0, -1, -100} {
		_, err := gen.Generate(count)
		assert.ErrorIs(t, err, core.ErrInvalidCount, "count=%d", count)
	}
}

func TestGenerator_EndToEnd(t *testing.T) {
	gen, err := NewGenerator("experiment_1")
	require.NoError(t, err)

	first, err := gen.Generate(5)
	require.NoError(t, err)
	second, err := gen.Generate(5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 5)
	for _, v := range first {
		assert.True(t, gen.Bounds().Contains(v))
	}
}
