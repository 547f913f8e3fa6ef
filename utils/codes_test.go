package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureToken(t *testing.T) {
	tok, err := GenerateSecureToken(24)
	require.NoError(t, err)
	assert.Len(t, tok, 48)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]+$`), tok)

	other, err := GenerateSecureToken(24)
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)

	_, err = GenerateSecureToken(0)
	assert.Error(t, err)
}

func TestReferenceFormats(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^BK-[0-9A-F]{8}$`), BookingReference())
	assert.Regexp(t, regexp.MustCompile(`^KOT-\d{8}-[0-9A-F]{8}$`), KOTOrderNumber())
	assert.Regexp(t, regexp.MustCompile(`^BILL-\d{8}-[0-9A-F]{8}$`), KOTBillNumber())
}
