package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampAuditLimit(t *testing.T) {
	assert.Equal(t, 200, clampAuditLimit(0), "unset limit gets the default")
	assert.Equal(t, 200, clampAuditLimit(-5))
	assert.Equal(t, 50, clampAuditLimit(50))
	assert.Equal(t, 500, clampAuditLimit(500))
	assert.Equal(t, 500, clampAuditLimit(501), "over-cap requests clamp to the cap")
	assert.Equal(t, 500, clampAuditLimit(100000))
}
