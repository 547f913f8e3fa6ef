package services

import (
	"testing"
	"time"

	"resort-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func rec(id string, category string, amount int64, at time.Time) RevenueRecord {
	return RevenueRecord{
		ID:          id,
		Category:    category,
		TotalAmount: decimal.NewFromInt(amount),
		CreatedAt:   at,
	}
}

func TestMergeRevenueSortsNewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	a := []RevenueRecord{
		rec("acct-1", models.CategoryRoom, 100, base),
		rec("acct-2", models.CategoryRoom, 200, base.Add(2*time.Hour)),
	}
	b := []RevenueRecord{
		rec("bill-1", models.CategoryRestaurant, 300, base.Add(time.Hour)),
	}

	merged := MergeRevenue(a, b)

	assert.Len(t, merged, 3)
	assert.Equal(t, "acct-2", merged[0].ID)
	assert.Equal(t, "bill-1", merged[1].ID)
	assert.Equal(t, "acct-1", merged[2].ID)
}

func TestMergeRevenueKeepsDuplicates(t *testing.T) {
	now := time.Now()
	same := rec("x", models.CategoryMisc, 50, now)

	merged := MergeRevenue([]RevenueRecord{same}, []RevenueRecord{same})
	assert.Len(t, merged, 2)
}

func TestCategoryTotalsPartitionsGrandTotal(t *testing.T) {
	now := time.Now()
	records := []RevenueRecord{
		rec("1", models.CategoryRoom, 1000, now),
		rec("2", models.CategoryRoom, 500, now),
		rec("3", models.CategoryRestaurant, 250, now),
		rec("4", models.CategoryEvent, 4000, now),
	}

	totals := CategoryTotals(records)
	assert.True(t, decimal.NewFromInt(1500).Equal(totals[models.CategoryRoom]))
	assert.True(t, decimal.NewFromInt(250).Equal(totals[models.CategoryRestaurant]))
	assert.True(t, decimal.NewFromInt(4000).Equal(totals[models.CategoryEvent]))

	var sum decimal.Decimal
	for _, v := range totals {
		sum = sum.Add(v)
	}
	assert.True(t, GrandTotal(records).Equal(sum))
	assert.True(t, decimal.NewFromInt(5750).Equal(sum))
}

func TestGrandTotalEmpty(t *testing.T) {
	assert.True(t, GrandTotal(nil).IsZero())
}
