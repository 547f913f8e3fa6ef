package utils

import (
	"testing"

	"resort-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRenderKOTReceipt(t *testing.T) {
	setting := models.ResortSetting{
		Name:    "Palm Grove Resort",
		Address: "12 Beach Road",
		GSTIN:   "29ABCDE1234F1Z5",
	}
	order := models.KOTOrder{
		OrderNumber: "KOT-20260828-AAAA1111",
		TableNumber: "T4",
		Items: []models.KOTItem{
			{Name: "Paneer Tikka", Price: decimal.NewFromInt(100), Quantity: 2},
		},
	}
	bill := models.KOTBill{
		BillNumber: "BILL-20260828-BBBB2222",
		Subtotal:   decimal.NewFromInt(200),
		GST:        decimal.NewFromInt(10),
		Total:      decimal.NewFromInt(210),
	}

	html := RenderKOTReceipt(setting, order, bill)

	assert.Contains(t, html, "Palm Grove Resort")
	assert.Contains(t, html, "29ABCDE1234F1Z5")
	assert.Contains(t, html, "BILL-20260828-BBBB2222")
	assert.Contains(t, html, "Paneer Tikka")
	assert.Contains(t, html, "200.00")
	assert.Contains(t, html, "10.00")
	assert.Contains(t, html, "210.00")
	assert.Contains(t, html, "window.print()")
}

func TestRenderKOTReceiptEscapesAndDefaults(t *testing.T) {
	order := models.KOTOrder{
		Items: []models.KOTItem{
			{Name: `Fish & Chips <special>`, Price: decimal.NewFromInt(350), Quantity: 1},
		},
	}
	bill := models.KOTBill{
		Subtotal: decimal.NewFromInt(350),
		GST:      decimal.NewFromFloat(17.5),
		Total:    decimal.NewFromFloat(367.5),
	}

	html := RenderKOTReceipt(models.ResortSetting{}, order, bill)

	assert.Contains(t, html, "Resort Restaurant", "empty settings fall back to a default header")
	assert.Contains(t, html, "Fish &amp; Chips &lt;special&gt;")
	assert.NotContains(t, html, "<special>")
}
