package services

import (
	"context"
	"errors"
	"fmt"

	"resort-backend/models"
	"resort-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BillStatus classifies a bill from its billed and paid amounts.
func BillStatus(billed, paid decimal.Decimal) string {
	switch {
	case paid.GreaterThanOrEqual(billed):
		return models.VendorBillStatusPaid
	case paid.IsPositive():
		return models.VendorBillStatusPartial
	default:
		return models.VendorBillStatusUnpaid
	}
}

// BuildLedgerRows computes the per-bill billed/paid/balance view from bills
// and their payment sums.
func BuildLedgerRows(bills []models.VendorBill, paidByBill map[uint]decimal.Decimal) []models.VendorLedgerRow {
	rows := make([]models.VendorLedgerRow, 0, len(bills))
	for _, b := range bills {
		paid := paidByBill[b.ID]
		rows = append(rows, models.VendorLedgerRow{
			BillID:     b.ID,
			BillNumber: b.BillNumber,
			Billed:     b.Total,
			Paid:       paid,
			Balance:    b.Total.Sub(paid),
			Status:     BillStatus(b.Total, paid),
		})
	}
	return rows
}

// OutstandingFromLedger is the sum of positive balances.
func OutstandingFromLedger(rows []models.VendorLedgerRow) decimal.Decimal {
	var total decimal.Decimal
	for _, r := range rows {
		if r.Balance.IsPositive() {
			total = total.Add(r.Balance)
		}
	}
	return total
}

type VendorService struct {
	DB       *gorm.DB
	Notifier *Notifier
}

func NewVendorService(db *gorm.DB, notifier *Notifier) *VendorService {
	return &VendorService{DB: db, Notifier: notifier}
}

func (s *VendorService) Create(v *models.Vendor) error {
	if v.IFSCCode != "" && !utils.IsValidIFSC(v.IFSCCode) {
		return errors.New("invalid_ifsc")
	}
	if v.UPIID != "" && !utils.IsValidUPI(v.UPIID) {
		return errors.New("invalid_upi")
	}
	if v.Phone != "" {
		v.Phone = utils.NormalizePhone(v.Phone)
	}

	if err := s.DB.Create(v).Error; err != nil {
		return fmt.Errorf("failed to create vendor: %w", err)
	}
	s.Notifier.Publish(context.Background(), "vendors", ChangeInsert, v.ID, v)
	return nil
}

func (s *VendorService) GetAll() ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := s.DB.Order("name ASC").Find(&vendors).Error
	return vendors, err
}

func (s *VendorService) GetByID(id uint) (*models.Vendor, error) {
	var v models.Vendor
	if err := s.DB.Preload("Bills").First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("vendor_not_found")
		}
		return nil, err
	}
	return &v, nil
}

func (s *VendorService) CreateBill(bill *models.VendorBill) error {
	var vendor models.Vendor
	if err := s.DB.First(&vendor, bill.VendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("vendor_not_found")
		}
		return err
	}
	if !bill.Total.IsPositive() {
		return errors.New("invalid_bill_total")
	}
	bill.Status = models.VendorBillStatusUnpaid

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bill).Error; err != nil {
			return err
		}
		return s.refreshOutstanding(tx, bill.VendorID)
	})
	if txErr != nil {
		return txErr
	}

	s.Notifier.Publish(context.Background(), "vendor_bills", ChangeInsert, bill.ID, bill)
	return nil
}

// RecordPayment adds a payment against a bill, reclassifies the bill status
// and refreshes the vendor's outstanding amount in one transaction.
func (s *VendorService) RecordPayment(p *models.VendorPayment) error {
	if !p.Amount.IsPositive() {
		return errors.New("invalid_payment_amount")
	}

	var vendorID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var bill models.VendorBill
		if err := tx.First(&bill, p.BillID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("bill_not_found")
			}
			return err
		}
		vendorID = bill.VendorID

		if err := tx.Create(p).Error; err != nil {
			return err
		}

		paid, err := paidForBill(tx, bill.ID)
		if err != nil {
			return err
		}
		if err := tx.Model(&bill).Update("status", BillStatus(bill.Total, paid)).Error; err != nil {
			return err
		}

		return s.refreshOutstanding(tx, vendorID)
	})
	if txErr != nil {
		return txErr
	}

	ctx := context.Background()
	s.Notifier.Publish(ctx, "vendor_payments", ChangeInsert, p.ID, p)
	s.Notifier.Publish(ctx, "vendors", ChangeUpdate, vendorID, nil)
	return nil
}

func paidForBill(tx *gorm.DB, billID uint) (decimal.Decimal, error) {
	var out struct {
		Paid decimal.Decimal
	}
	err := tx.Model(&models.VendorPayment{}).
		Select("COALESCE(SUM(amount), 0) AS paid").
		Where("bill_id = ?", billID).
		Scan(&out).Error
	return out.Paid, err
}

// Ledger returns the per-bill billed/paid/balance rows for a vendor, computed
// by an aggregate query over bills and payments.
func (s *VendorService) Ledger(vendorID uint) ([]models.VendorLedgerRow, error) {
	var vendor models.Vendor
	if err := s.DB.First(&vendor, vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("vendor_not_found")
		}
		return nil, err
	}

	var bills []models.VendorBill
	if err := s.DB.Where("vendor_id = ?", vendorID).Order("bill_date ASC, id ASC").Find(&bills).Error; err != nil {
		return nil, err
	}

	type paidRow struct {
		BillID uint
		Paid   decimal.Decimal
	}
	var paidRows []paidRow
	if err := s.DB.Model(&models.VendorPayment{}).
		Select("bill_id, COALESCE(SUM(amount), 0) AS paid").
		Where("bill_id IN (SELECT id FROM vendor_bills WHERE vendor_id = ?)", vendorID).
		Group("bill_id").
		Scan(&paidRows).Error; err != nil {
		return nil, err
	}

	paidByBill := make(map[uint]decimal.Decimal, len(paidRows))
	for _, r := range paidRows {
		paidByBill[r.BillID] = r.Paid
	}

	return BuildLedgerRows(bills, paidByBill), nil
}

func (s *VendorService) PaymentsForBill(billID uint) ([]models.VendorPayment, error) {
	var payments []models.VendorPayment
	err := s.DB.Where("bill_id = ?", billID).Order("paid_at ASC").Find(&payments).Error
	return payments, err
}

func (s *VendorService) refreshOutstanding(tx *gorm.DB, vendorID uint) error {
	var bills []models.VendorBill
	if err := tx.Where("vendor_id = ?", vendorID).Find(&bills).Error; err != nil {
		return err
	}

	outstanding := decimal.Zero
	for _, b := range bills {
		paid, err := paidForBill(tx, b.ID)
		if err != nil {
			return err
		}
		balance := b.Total.Sub(paid)
		if balance.IsPositive() {
			outstanding = outstanding.Add(balance)
		}
	}

	return tx.Model(&models.Vendor{}).
		Where("id = ?", vendorID).
		Update("outstanding_amount", outstanding).Error
}
