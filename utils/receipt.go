package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"resort-backend/models"
)

// RenderKOTReceipt builds the HTML ticket returned by the print endpoint.
// The frontend opens it in a popup and calls window.print().
func RenderKOTReceipt(setting models.ResortSetting, order models.KOTOrder, bill models.KOTBill) string {
	var rows strings.Builder
	for _, it := range order.Items {
		line := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		rows.WriteString(fmt.Sprintf(
			`<tr><td>%s</td><td class="num">%d</td><td class="num">%s</td><td class="num">%s</td></tr>`,
			htmlEscape(it.Name), it.Quantity, it.Price.StringFixed(2), line.StringFixed(2),
		))
	}

	name := setting.Name
	if strings.TrimSpace(name) == "" {
		name = "Resort Restaurant"
	}

	return fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>KOT %s</title>
<style>
body { font-family: monospace; width: 280px; margin: 0 auto; }
h2, .center { text-align: center; margin: 4px 0; }
table { width: 100%%; border-collapse: collapse; }
td, th { padding: 2px 0; }
.num { text-align: right; }
.totals td { border-top: 1px dashed #000; }
.meta { font-size: 12px; }
</style>
</head>
<body onload="window.print()">
<h2>%s</h2>
<p class="center meta">%s<br>GSTIN: %s</p>
<p class="meta">Bill No: %s<br>Order: %s&nbsp;&nbsp;Table: %s<br>Date: %s</p>
<table>
<tr><th>Item</th><th class="num">Qty</th><th class="num">Rate</th><th class="num">Amt</th></tr>
%s
<tr class="totals"><td colspan="3">Subtotal</td><td class="num">%s</td></tr>
<tr><td colspan="3">GST (5%%)</td><td class="num">%s</td></tr>
<tr class="totals"><td colspan="3"><b>Total</b></td><td class="num"><b>%s</b></td></tr>
</table>
<p class="center meta">Thank you, visit again!</p>
</body>
</html>`,
		htmlEscape(bill.BillNumber),
		htmlEscape(name),
		htmlEscape(setting.Address),
		htmlEscape(setting.GSTIN),
		htmlEscape(bill.BillNumber),
		htmlEscape(order.OrderNumber),
		htmlEscape(order.TableNumber),
		bill.CreatedAt.Format("02 Jan 2006 15:04"),
		rows.String(),
		bill.Subtotal.StringFixed(2),
		bill.GST.StringFixed(2),
		bill.Total.StringFixed(2),
	)
}

// minimal html escaper for the small strings we use
func htmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(s)
}
