package services

import (
	"fmt"
	"sort"
	"time"

	"resort-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RevenueRecord is the common shape every source is mapped onto before
// merging. Field names mirror the accounts dashboard columns.
type RevenueRecord struct {
	ID            string          `json:"id"`
	CreatedAt     time.Time       `json:"created_at"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	Guest         string          `json:"guest,omitempty"`
	Room          string          `json:"room,omitempty"`
}

// MergeRevenue concatenates all sources and sorts descending by created_at.
// No cross-source dedupe: a record reported by two sources is counted twice.
func MergeRevenue(sources ...[]RevenueRecord) []RevenueRecord {
	var merged []RevenueRecord
	for _, src := range sources {
		merged = append(merged, src...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged
}

// CategoryTotals sums amounts per category over the merged list.
func CategoryTotals(records []RevenueRecord) map[string]decimal.Decimal {
	totals := map[string]decimal.Decimal{}
	for _, r := range records {
		totals[r.Category] = totals[r.Category].Add(r.TotalAmount)
	}
	return totals
}

// GrandTotal is the sum over all records; equals the sum of CategoryTotals
// values since categories partition the list.
func GrandTotal(records []RevenueRecord) decimal.Decimal {
	var total decimal.Decimal
	for _, r := range records {
		total = total.Add(r.TotalAmount)
	}
	return total
}

type RevenueService struct {
	DB     *gorm.DB
	Ledger *LedgerService
}

func NewRevenueService(db *gorm.DB, ledger *LedgerService) *RevenueService {
	return &RevenueService{DB: db, Ledger: ledger}
}

func applyRange(q *gorm.DB, col string, from, to *time.Time) *gorm.DB {
	if from != nil {
		q = q.Where(col+" >= ?", *from)
	}
	if to != nil {
		q = q.Where(col+" < ?", *to)
	}
	return q
}

// Aggregate fetches the four revenue sources (account entries, restaurant
// bills, event bookings, ledger sandbox postings), maps each onto
// RevenueRecord and merges them.
func (s *RevenueService) Aggregate(from, to *time.Time) ([]RevenueRecord, error) {
	var entries []models.AccountEntry
	if err := applyRange(s.DB, "created_at", from, to).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch account entries: %w", err)
	}
	direct := make([]RevenueRecord, 0, len(entries))
	for _, e := range entries {
		direct = append(direct, RevenueRecord{
			ID:            fmt.Sprintf("acct-%d", e.ID),
			CreatedAt:     e.CreatedAt,
			Category:      e.Category,
			Description:   e.Description,
			TotalAmount:   e.TotalAmount,
			PaymentMethod: e.PaymentMethod,
			Guest:         e.GuestName,
			Room:          e.RoomNumber,
		})
	}

	var bills []models.KOTBill
	if err := applyRange(s.DB, "created_at", from, to).Find(&bills).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch restaurant bills: %w", err)
	}
	restaurant := make([]RevenueRecord, 0, len(bills))
	for _, b := range bills {
		restaurant = append(restaurant, RevenueRecord{
			ID:            fmt.Sprintf("bill-%d", b.ID),
			CreatedAt:     b.CreatedAt,
			Category:      models.CategoryRestaurant,
			Description:   "Restaurant bill " + b.BillNumber,
			TotalAmount:   b.Total,
			PaymentMethod: b.PaymentMethod,
		})
	}

	var eventRows []models.EventBooking
	if err := applyRange(s.DB, "created_at", from, to).Find(&eventRows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch event bookings: %w", err)
	}
	events := make([]RevenueRecord, 0, len(eventRows))
	for _, ev := range eventRows {
		events = append(events, RevenueRecord{
			ID:            fmt.Sprintf("event-%d", ev.ID),
			CreatedAt:     ev.CreatedAt,
			Category:      models.CategoryEvent,
			Description:   ev.EventName,
			TotalAmount:   ev.Amount,
			PaymentMethod: ev.PaymentMethod,
			Guest:         ev.ClientName,
		})
	}

	// The bookkeeping sandbox feeds in as misc; it is a demo log, never
	// reconciled with the tables above.
	var ledgerRecs []RevenueRecord
	if s.Ledger != nil {
		txns, err := s.Ledger.List()
		if err == nil {
			for _, t := range txns {
				if from != nil && t.Date.Before(*from) {
					continue
				}
				if to != nil && !t.Date.Before(*to) {
					continue
				}
				ledgerRecs = append(ledgerRecs, RevenueRecord{
					ID:          fmt.Sprintf("ledger-%d", t.ID),
					CreatedAt:   t.Date,
					Category:    models.CategoryMisc,
					Description: t.Description,
					TotalAmount: t.Amount,
				})
			}
		}
	}

	return MergeRevenue(direct, restaurant, events, ledgerRecs), nil
}

type RevenueSummary struct {
	Categories map[string]decimal.Decimal `json:"categories"`
	Total      decimal.Decimal            `json:"total"`
	Count      int                        `json:"count"`
}

func (s *RevenueService) Summary(from, to *time.Time) (*RevenueSummary, error) {
	records, err := s.Aggregate(from, to)
	if err != nil {
		return nil, err
	}
	return &RevenueSummary{
		Categories: CategoryTotals(records),
		Total:      GrandTotal(records),
		Count:      len(records),
	}, nil
}
