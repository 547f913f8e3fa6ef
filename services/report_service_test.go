package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	at := time.Date(2026, 8, 28, 0, 30, 0, 0, loc)

	got := startOfDay(at)

	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.August, got.Month())
	assert.Equal(t, 28, got.Day())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, loc, got.Location(), "midnight is taken in the input's zone, not UTC")

	// 00:30 IST is still the previous UTC day; UTC truncation would have
	// started the window almost a full day earlier.
	assert.True(t, got.Before(at))
	assert.Equal(t, 30*time.Minute, at.Sub(got))
}
