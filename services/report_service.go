package services

import (
	"fmt"
	"time"

	"resort-backend/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

type DashboardSummary struct {
	RoomsTotal     int64                      `json:"rooms_total"`
	RoomsOccupied  int64                      `json:"rooms_occupied"`
	RoomsReserved  int64                      `json:"rooms_reserved"`
	RoomsAvailable int64                      `json:"rooms_available"`
	RevenueToday   map[string]decimal.Decimal `json:"revenue_today"`
	OpenKOTOrders  int64                      `json:"open_kot_orders"`
	LowStockItems  int64                      `json:"low_stock_items"`
	PendingLeaves  int64                      `json:"pending_leaves"`
}

func (s *ReportService) Dashboard() (*DashboardSummary, error) {
	out := &DashboardSummary{RevenueToday: map[string]decimal.Decimal{}}

	s.DB.Model(&models.Room{}).Count(&out.RoomsTotal)
	s.DB.Model(&models.Room{}).Where("status = ?", models.RoomStatusOccupied).Count(&out.RoomsOccupied)
	s.DB.Model(&models.Room{}).Where("status = ?", models.RoomStatusReserved).Count(&out.RoomsReserved)
	s.DB.Model(&models.Room{}).Where("status = ?", models.RoomStatusAvailable).Count(&out.RoomsAvailable)

	s.DB.Model(&models.KOTOrder{}).Where("status = ?", models.KOTStatusOpen).Count(&out.OpenKOTOrders)
	s.DB.Model(&models.InventoryItem{}).Where("stock <= threshold").Count(&out.LowStockItems)
	s.DB.Model(&models.LeaveRequest{}).Where("status = ?", models.LeaveStatusPending).Count(&out.PendingLeaves)

	// Midnight in server-local time; timestamps are stored with loc=Local.
	dayStart := startOfDay(time.Now())

	type catRow struct {
		Category string
		Total    decimal.Decimal
	}
	var cats []catRow
	if err := s.DB.Model(&models.AccountEntry{}).
		Select("category, COALESCE(SUM(total_amount), 0) AS total").
		Where("created_at >= ?", dayStart).
		Group("category").
		Scan(&cats).Error; err != nil {
		return nil, err
	}
	for _, c := range cats {
		out.RevenueToday[c.Category] = c.Total
	}

	var restaurantToday decimal.Decimal
	row := struct{ Total decimal.Decimal }{}
	if err := s.DB.Model(&models.KOTBill{}).
		Select("COALESCE(SUM(total), 0) AS total").
		Where("created_at >= ?", dayStart).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	restaurantToday = row.Total
	if restaurantToday.IsPositive() {
		out.RevenueToday[models.CategoryRestaurant] = out.RevenueToday[models.CategoryRestaurant].Add(restaurantToday)
	}

	return out, nil
}

// RestaurantSalesWorkbook builds the multi-sheet sales report: a summary
// sheet, one row per bill, and one row per line item.
func (s *ReportService) RestaurantSalesWorkbook(from, to *time.Time) (*excelize.File, error) {
	q := s.DB.Preload("Order.Items").Order("created_at ASC")
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at < ?", *to)
	}

	var bills []models.KOTBill
	if err := q.Find(&bills).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch bills: %w", err)
	}

	f := excelize.NewFile()

	// Summary sheet
	summary := "Summary"
	f.SetSheetName("Sheet1", summary)
	var subtotal, gst, total decimal.Decimal
	for _, b := range bills {
		subtotal = subtotal.Add(b.Subtotal)
		gst = gst.Add(b.GST)
		total = total.Add(b.Total)
	}
	summaryRows := [][]interface{}{
		{"Restaurant Sales Report"},
		{"Generated", time.Now().Format("2006-01-02 15:04")},
		{"Bills", len(bills)},
		{"Subtotal", subtotal.StringFixed(2)},
		{"GST", gst.StringFixed(2)},
		{"Total", total.StringFixed(2)},
	}
	for i, row := range summaryRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summary, cell, &row); err != nil {
			return nil, err
		}
	}

	// Bills sheet
	billsSheet := "Bills"
	if _, err := f.NewSheet(billsSheet); err != nil {
		return nil, err
	}
	header := []interface{}{"Bill Number", "Order", "Table", "Date", "Subtotal", "GST", "Total", "Payment Method"}
	_ = f.SetSheetRow(billsSheet, "A1", &header)
	for i, b := range bills {
		row := []interface{}{
			b.BillNumber,
			b.Order.OrderNumber,
			b.Order.TableNumber,
			b.CreatedAt.Format("2006-01-02 15:04"),
			b.Subtotal.StringFixed(2),
			b.GST.StringFixed(2),
			b.Total.StringFixed(2),
			b.PaymentMethod,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(billsSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	// Items sheet
	itemsSheet := "Items"
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, err
	}
	itemHeader := []interface{}{"Bill Number", "Item", "Qty", "Rate", "Amount"}
	_ = f.SetSheetRow(itemsSheet, "A1", &itemHeader)
	rowIdx := 2
	for _, b := range bills {
		for _, it := range b.Order.Items {
			line := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
			row := []interface{}{b.BillNumber, it.Name, it.Quantity, it.Price.StringFixed(2), line.StringFixed(2)}
			cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
			if err := f.SetSheetRow(itemsSheet, cell, &row); err != nil {
				return nil, err
			}
			rowIdx++
		}
	}

	return f, nil
}
