package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMinimumAdvance(t *testing.T) {
	base := decimal.NewFromInt(10000)
	assert.True(t, decimal.NewFromInt(3000).Equal(MinimumAdvance(base)))
}

func TestMeetsAdvanceMinimum(t *testing.T) {
	base := decimal.NewFromInt(10000)

	assert.True(t, MeetsAdvanceMinimum(base, decimal.NewFromInt(3000)))
	assert.True(t, MeetsAdvanceMinimum(base, decimal.NewFromInt(10000)))
	assert.False(t, MeetsAdvanceMinimum(base, decimal.NewFromInt(2999)))

	// zero-value stay accepts any advance
	assert.True(t, MeetsAdvanceMinimum(decimal.Zero, decimal.Zero))
}

func TestCreateBookingRejectsMalformedDates(t *testing.T) {
	// Dates are validated before any lookup, so no DB is needed.
	svc := &BookingService{}

	_, err := svc.CreateBooking(CreateBookingInput{
		RoomID:   1,
		CheckIn:  "28/08/2026",
		CheckOut: "2026-08-30",
	})
	assert.EqualError(t, err, "invalid_date_format")

	_, err = svc.CreateBooking(CreateBookingInput{
		RoomID:   1,
		CheckIn:  "2026-08-28",
		CheckOut: "next week",
	})
	assert.EqualError(t, err, "invalid_date_format")
}

func TestParseBookingDate(t *testing.T) {
	d, err := parseBookingDate("2026-08-28")
	assert.NoError(t, err)
	assert.Equal(t, 2026, d.Year())

	d, err = parseBookingDate("2026-08-28T15:04:05Z")
	assert.NoError(t, err)
	assert.Equal(t, 15, d.Hour())

	_, err = parseBookingDate("28/08/2026")
	assert.Error(t, err)
}
