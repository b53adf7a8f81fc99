package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange_Validate(t *testing.T) {
	tests := []struct {
		name    string
		r       Range
		wantErr error
	}{
		{name: "valid default", r: DefaultRange()},
		{name: "valid negative bounds", r: Range{Min: -100, Max: 100}},
		{name: "inverted", r: Range{Min: 100, Max: 50}, wantErr: ErrInvalidRange},
		{name: "equal bounds", r: Range{Min: 7, Max: 7}, wantErr: ErrInvalidRange},
		{name: "span overflow", r: Range{Min: math.MinInt64, Max: math.MaxInt64}, wantErr: ErrRangeOverflow},
		{name: "span overflow by one", r: Range{Min: -1, Max: math.MaxInt64 - 1}, wantErr: ErrRangeOverflow},
		{name: "max representable span", r: Range{Min: 0, Max: math.MaxInt64 - 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRange_Span(t *testing.T) {
	assert.Equal(t, int64(1001), Range{Min: 0, Max: 1000}.Span())
	assert.Equal(t, int64(201), Range{Min: -100, Max: 100}.Span())
	assert.Equal(t, int64(math.MaxInt32)+1, DefaultRange().Span())
}

func TestRange_Clamp(t *testing.T) {
	r := Range{Min: 0, Max: 10}
	assert.Equal(t, int64(0), r.Clamp(-5))
	assert.Equal(t, int64(10), r.Clamp(99))
	assert.Equal(t, int64(4), r.Clamp(4))
}
