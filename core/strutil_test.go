package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItoa(t *testing.T) {
	assert.Equal(t, "0", itoa(0))
	assert.Equal(t, "-42", itoa(-42))
	assert.Equal(t, "4294967295", utoa(4294967295))
}

func TestFtoa(t *testing.T) {
	tests := []struct {
		in       float32
		decimals int
		want     string
	}{
		{23.456, 2, "23.46"},
		{27.0, 2, "27.00"},
		{0.05, 2, "0.05"},
		{-5.5, 1, "-5.5"},
		{-0.001, 2, "0.00"},
		{19.99, 0, "20"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ftoa(tt.in, tt.decimals), "%v", tt.in)
	}
}
