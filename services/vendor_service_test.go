package services

import (
	"testing"

	"resort-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBillStatus(t *testing.T) {
	billed := decimal.NewFromInt(1000)

	assert.Equal(t, models.VendorBillStatusUnpaid, BillStatus(billed, decimal.Zero))
	assert.Equal(t, models.VendorBillStatusPartial, BillStatus(billed, decimal.NewFromInt(400)))
	assert.Equal(t, models.VendorBillStatusPaid, BillStatus(billed, decimal.NewFromInt(1000)))

	// overpayment still reads as paid
	assert.Equal(t, models.VendorBillStatusPaid, BillStatus(billed, decimal.NewFromInt(1200)))
}

func TestBuildLedgerRows(t *testing.T) {
	bills := []models.VendorBill{
		{ID: 1, BillNumber: "INV-001", Total: decimal.NewFromInt(5000)},
		{ID: 2, BillNumber: "INV-002", Total: decimal.NewFromInt(3000)},
		{ID: 3, BillNumber: "INV-003", Total: decimal.NewFromInt(1000)},
	}
	paid := map[uint]decimal.Decimal{
		1: decimal.NewFromInt(5000),
		2: decimal.NewFromInt(1200),
	}

	rows := BuildLedgerRows(bills, paid)
	assert.Len(t, rows, 3)

	assert.Equal(t, models.VendorBillStatusPaid, rows[0].Status)
	assert.True(t, rows[0].Balance.IsZero())

	assert.Equal(t, models.VendorBillStatusPartial, rows[1].Status)
	assert.True(t, decimal.NewFromInt(1800).Equal(rows[1].Balance))

	assert.Equal(t, models.VendorBillStatusUnpaid, rows[2].Status)
	assert.True(t, decimal.NewFromInt(1000).Equal(rows[2].Balance))
	assert.True(t, rows[2].Paid.IsZero())
}

func TestOutstandingFromLedger(t *testing.T) {
	rows := []models.VendorLedgerRow{
		{Balance: decimal.NewFromInt(1800)},
		{Balance: decimal.Zero},
		{Balance: decimal.NewFromInt(-200)}, // overpaid bill does not offset others
		{Balance: decimal.NewFromInt(1000)},
	}

	assert.True(t, decimal.NewFromInt(2800).Equal(OutstandingFromLedger(rows)))
	assert.True(t, OutstandingFromLedger(nil).IsZero())
}
