package services

import (
	"testing"

	"resort-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBillTotals(t *testing.T) {
	items := []models.KOTItem{
		{Name: "Paneer Tikka", Price: decimal.NewFromInt(100), Quantity: 2},
		{Name: "Lassi", Price: decimal.NewFromInt(50), Quantity: 1},
	}

	subtotal, gst, total := BillTotals(items)

	assert.True(t, decimal.NewFromInt(250).Equal(subtotal), "subtotal = %s", subtotal)
	assert.True(t, decimal.NewFromFloat(12.5).Equal(gst), "gst = %s", gst)
	assert.True(t, decimal.NewFromFloat(262.5).Equal(total), "total = %s", total)
}

func TestBillTotalsEmptyOrder(t *testing.T) {
	subtotal, gst, total := BillTotals(nil)

	assert.True(t, subtotal.IsZero())
	assert.True(t, gst.IsZero())
	assert.True(t, total.IsZero())
}

func TestBillTotalsFractionalPrices(t *testing.T) {
	items := []models.KOTItem{
		{Name: "Masala Chai", Price: decimal.NewFromFloat(33.33), Quantity: 3},
	}

	subtotal, gst, total := BillTotals(items)

	assert.True(t, decimal.NewFromFloat(99.99).Equal(subtotal))
	assert.True(t, subtotal.Add(gst).Equal(total))
	assert.True(t, subtotal.Mul(decimal.NewFromFloat(0.05)).Equal(gst))
}
