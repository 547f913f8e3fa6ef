package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already normalized", "09876543210", "09876543210"},
		{"bare ten digits", "9876543210", "09876543210"},
		{"country prefix", "919876543210", "09876543210"},
		{"formatted with spaces", "+91 98765 43210", "09876543210"},
		{"formatted with dashes", "98765-43210", "09876543210"},
		{"too short passes through", "12345", "12345"},
		{"too long passes through", "00919876543210", "00919876543210"},
		{"garbage passes through untouched", "call me maybe", "call me maybe"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizePhone(tc.in))
		})
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	inputs := []string{"9876543210", "919876543210", "+91 98765 43210", "bogus"}
	for _, in := range inputs {
		once := NormalizePhone(in)
		assert.Equal(t, once, NormalizePhone(once), "input %q", in)
	}
}

func TestIsNormalizedPhone(t *testing.T) {
	assert.True(t, IsNormalizedPhone("09876543210"))
	assert.False(t, IsNormalizedPhone("9876543210"))
	assert.False(t, IsNormalizedPhone("19876543210"))
	assert.False(t, IsNormalizedPhone("0987654321a"))
	assert.False(t, IsNormalizedPhone(""))
}
