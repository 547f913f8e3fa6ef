package services

import (
	"context"
	"errors"
	"fmt"

	"resort-backend/models"
	"resort-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Flat 5% GST applied at bill-generation time, never recomputed afterwards.
var gstRate = decimal.New(5, -2)

// BillTotals computes subtotal, gst and total from an order's line items.
func BillTotals(items []models.KOTItem) (subtotal, gst, total decimal.Decimal) {
	for _, it := range items {
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	gst = subtotal.Mul(gstRate)
	total = subtotal.Add(gst)
	return subtotal, gst, total
}

type KOTService struct {
	DB       *gorm.DB
	Notifier *Notifier
}

func NewKOTService(db *gorm.DB, notifier *Notifier) *KOTService {
	return &KOTService{DB: db, Notifier: notifier}
}

type KOTItemInput struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Quantity int             `json:"quantity"`
}

func (s *KOTService) CreateOrder(tableNumber, orderType string, items []KOTItemInput) (*models.KOTOrder, error) {
	order := models.KOTOrder{
		OrderNumber: utils.KOTOrderNumber(),
		TableNumber: tableNumber,
		OrderType:   orderType,
		Status:      models.KOTStatusOpen,
	}
	if order.OrderType == "" {
		order.OrderType = "dine-in"
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return createItems(tx, order.ID, items)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Notifier.Publish(context.Background(), "kot_orders", ChangeInsert, order.ID, order)
	return s.GetOrder(order.ID)
}

func createItems(tx *gorm.DB, orderID uint, items []KOTItemInput) error {
	for _, in := range items {
		qty := in.Quantity
		if qty <= 0 {
			qty = 1
		}
		item := models.KOTItem{
			OrderID:  orderID,
			Name:     in.Name,
			Price:    in.Price,
			Quantity: qty,
		}
		if err := tx.Create(&item).Error; err != nil {
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}
	return nil
}

// AddItems appends line items to an open order.
func (s *KOTService) AddItems(orderID uint, items []KOTItemInput) (*models.KOTOrder, error) {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.KOTOrder
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("order_not_found")
			}
			return err
		}
		if order.Status != models.KOTStatusOpen {
			return errors.New("order_not_open")
		}
		return createItems(tx, order.ID, items)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Notifier.Publish(context.Background(), "kot_orders", ChangeUpdate, orderID, nil)
	return s.GetOrder(orderID)
}

// CloseOrder generates the bill: subtotal from the line items, 5% GST on top,
// one bill row, order -> closed. Closing anything but an open order is
// rejected; closed and cancelled are terminal.
func (s *KOTService) CloseOrder(orderID uint, paymentMethod string) (*models.KOTBill, error) {
	var bill models.KOTBill

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.KOTOrder
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("order_not_found")
			}
			return err
		}
		if order.Status != models.KOTStatusOpen {
			return errors.New("order_not_open")
		}

		var items []models.KOTItem
		if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return errors.New("order_empty")
		}

		subtotal, gst, total := BillTotals(items)

		bill = models.KOTBill{
			OrderID:       order.ID,
			BillNumber:    utils.KOTBillNumber(),
			Subtotal:      subtotal,
			GST:           gst,
			Total:         total,
			PaymentMethod: paymentMethod,
		}
		if err := tx.Create(&bill).Error; err != nil {
			return fmt.Errorf("failed to create bill: %w", err)
		}

		if err := tx.Model(&order).Updates(map[string]interface{}{
			"status": models.KOTStatusClosed,
			"total":  total,
			"gst":    gst,
		}).Error; err != nil {
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	ctx := context.Background()
	s.Notifier.Publish(ctx, "kot_orders", ChangeUpdate, orderID, nil)
	s.Notifier.Publish(ctx, "kot_bills", ChangeInsert, bill.ID, bill)
	return &bill, nil
}

func (s *KOTService) CancelOrder(orderID uint) error {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.KOTOrder
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("order_not_found")
			}
			return err
		}
		if order.Status != models.KOTStatusOpen {
			return errors.New("order_not_open")
		}
		return tx.Model(&order).Update("status", models.KOTStatusCancelled).Error
	})
	if txErr != nil {
		return txErr
	}

	s.Notifier.Publish(context.Background(), "kot_orders", ChangeUpdate, orderID, nil)
	return nil
}

func (s *KOTService) GetOrder(id uint) (*models.KOTOrder, error) {
	var order models.KOTOrder
	if err := s.DB.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order_not_found")
		}
		return nil, err
	}
	return &order, nil
}

func (s *KOTService) ListOrders(status string) ([]models.KOTOrder, error) {
	q := s.DB.Preload("Items").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var orders []models.KOTOrder
	err := q.Find(&orders).Error
	return orders, err
}

func (s *KOTService) GetBillForOrder(orderID uint) (*models.KOTBill, error) {
	var bill models.KOTBill
	if err := s.DB.Where("order_id = ?", orderID).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("bill_not_found")
		}
		return nil, err
	}
	return &bill, nil
}

// Receipt renders the printable HTML ticket for a closed order.
func (s *KOTService) Receipt(orderID uint) (string, error) {
	order, err := s.GetOrder(orderID)
	if err != nil {
		return "", err
	}
	bill, err := s.GetBillForOrder(orderID)
	if err != nil {
		return "", err
	}

	var setting models.ResortSetting
	_ = s.DB.First(&setting).Error // receipt renders with blanks when unset

	return utils.RenderKOTReceipt(setting, *order, *bill), nil
}
