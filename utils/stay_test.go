package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNights(t *testing.T) {
	assert.Equal(t, 2, Nights(day("2025-05-10"), day("2025-05-12")))
	assert.Equal(t, 1, Nights(day("2025-05-10"), day("2025-05-11")))
	assert.Equal(t, 0, Nights(day("2025-05-10"), day("2025-05-10")))

	// inverted range still yields a positive count
	assert.Equal(t, 2, Nights(day("2025-05-12"), day("2025-05-10")))
}

func TestNightsPartialDayRoundsUp(t *testing.T) {
	in := day("2025-05-10").Add(14 * time.Hour)
	out := day("2025-05-11").Add(11 * time.Hour)
	assert.Equal(t, 1, Nights(in, out))
}

func TestStayTotal(t *testing.T) {
	rate := decimal.NewFromInt(2500)
	assert.True(t, decimal.NewFromInt(7500).Equal(StayTotal(3, rate)))
	assert.True(t, decimal.Zero.Equal(StayTotal(0, rate)))
}
