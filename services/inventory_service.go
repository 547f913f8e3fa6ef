package services

import (
	"context"
	"errors"
	"fmt"

	"resort-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	StockOK  = "in_stock"
	StockLow = "low_stock"
	StockOut = "out_of_stock"
)

// StockStatus classifies an item by comparing stock to its threshold.
func StockStatus(stock, threshold int) string {
	switch {
	case stock <= 0:
		return StockOut
	case stock <= threshold:
		return StockLow
	default:
		return StockOK
	}
}

type InventoryService struct {
	DB       *gorm.DB
	Notifier *Notifier
}

func NewInventoryService(db *gorm.DB, notifier *Notifier) *InventoryService {
	return &InventoryService{DB: db, Notifier: notifier}
}

func (s *InventoryService) CreateItem(item *models.InventoryItem) error {
	if err := s.DB.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	s.Notifier.Publish(context.Background(), "inventory_items", ChangeInsert, item.ID, item)
	return nil
}

func (s *InventoryService) GetAll() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := s.DB.Preload("Vendor").Order("name ASC").Find(&items).Error
	return items, err
}

func (s *InventoryService) GetByID(id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.DB.Preload("Vendor").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("item_not_found")
		}
		return nil, err
	}
	return &item, nil
}

// AdjustStock applies a delta to an item's stock. Going below zero is
// rejected.
func (s *InventoryService) AdjustStock(id uint, delta int) (*models.InventoryItem, error) {
	var item models.InventoryItem

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("item_not_found")
			}
			return err
		}

		next := item.Stock + delta
		if next < 0 {
			return errors.New("insufficient_stock")
		}
		item.Stock = next
		return tx.Model(&item).Update("stock", next).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Notifier.Publish(context.Background(), "inventory_items", ChangeUpdate, id, nil)
	return &item, nil
}

type LowStockRow struct {
	Item   models.InventoryItem `json:"item"`
	Status string               `json:"status"`
}

func (s *InventoryService) LowStockReport() ([]LowStockRow, error) {
	var items []models.InventoryItem
	if err := s.DB.Where("stock <= threshold").Order("stock ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	rows := make([]LowStockRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, LowStockRow{Item: it, Status: StockStatus(it.Stock, it.Threshold)})
	}
	return rows, nil
}

func (s *InventoryService) CreatePurchaseRequest(pr *models.PurchaseRequest) error {
	if pr.Quantity <= 0 {
		return errors.New("invalid_quantity")
	}
	var item models.InventoryItem
	if err := s.DB.First(&item, pr.ItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("item_not_found")
		}
		return err
	}

	pr.Status = models.PurchaseStatusPending
	if err := s.DB.Create(pr).Error; err != nil {
		return err
	}
	s.Notifier.Publish(context.Background(), "purchase_requests", ChangeInsert, pr.ID, pr)
	return nil
}

func (s *InventoryService) ListPurchaseRequests(status string) ([]models.PurchaseRequest, error) {
	q := s.DB.Preload("Item").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var reqs []models.PurchaseRequest
	err := q.Find(&reqs).Error
	return reqs, err
}

// UpdatePurchaseStatus enforces pending -> approved/rejected and
// approved -> received. Receiving a request tops up the item's stock in the
// same transaction.
func (s *InventoryService) UpdatePurchaseStatus(id uint, status string) (*models.PurchaseRequest, error) {
	var pr models.PurchaseRequest

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&pr, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("purchase_request_not_found")
			}
			return err
		}

		valid := false
		switch pr.Status {
		case models.PurchaseStatusPending:
			valid = status == models.PurchaseStatusApproved || status == models.PurchaseStatusRejected
		case models.PurchaseStatusApproved:
			valid = status == models.PurchaseStatusReceived
		}
		if !valid {
			return errors.New("invalid_status_transition")
		}

		if err := tx.Model(&pr).Update("status", status).Error; err != nil {
			return err
		}
		pr.Status = status

		if status == models.PurchaseStatusReceived {
			if err := tx.Model(&models.InventoryItem{}).
				Where("id = ?", pr.ItemID).
				Update("stock", gorm.Expr("stock + ?", pr.Quantity)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	ctx := context.Background()
	s.Notifier.Publish(ctx, "purchase_requests", ChangeUpdate, id, nil)
	if pr.Status == models.PurchaseStatusReceived {
		s.Notifier.Publish(ctx, "inventory_items", ChangeUpdate, pr.ItemID, nil)
	}
	return &pr, nil
}
