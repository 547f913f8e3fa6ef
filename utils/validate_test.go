package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidIFSC(t *testing.T) {
	assert.True(t, IsValidIFSC("HDFC0001234"))
	assert.True(t, IsValidIFSC("SBIN0ABC123"))

	assert.False(t, IsValidIFSC("HDFC1001234"), "fifth character must be 0")
	assert.False(t, IsValidIFSC("hdfc0001234"), "lowercase rejected")
	assert.False(t, IsValidIFSC("HDFC000123"), "too short")
	assert.False(t, IsValidIFSC(""))
}

func TestIsValidUPI(t *testing.T) {
	assert.True(t, IsValidUPI("vendor@okhdfc"))
	assert.True(t, IsValidUPI("fresh.produce-1@ybl"))

	assert.False(t, IsValidUPI("no-handle"))
	assert.False(t, IsValidUPI("@ybl"))
	assert.False(t, IsValidUPI("vendor@"))
}
