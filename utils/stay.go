package utils

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Nights returns the number of chargeable nights between check-in and
// check-out: ceil of the absolute difference in days. Same-day stays are 0
// nights. The absolute difference means an inverted range still yields a
// positive count; rejecting inverted ranges is left to the caller.
func Nights(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}

// StayTotal is nights x nightly rate.
func StayTotal(nights int, nightlyRate decimal.Decimal) decimal.Decimal {
	return nightlyRate.Mul(decimal.NewFromInt(int64(nights)))
}
