package services

import (
	"testing"

	"resort-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeLOP(t *testing.T) {
	salary := decimal.NewFromInt(30000)

	lop, deduction := ComputeLOP(6, models.LeaveTypeEarned, 4, &salary)
	assert.Equal(t, 2, lop)
	assert.True(t, decimal.NewFromInt(2000).Equal(deduction), "deduction = %s", deduction)
}

func TestComputeLOPWithinBalance(t *testing.T) {
	salary := decimal.NewFromInt(30000)

	lop, deduction := ComputeLOP(4, models.LeaveTypeEarned, 4, &salary)
	assert.Equal(t, 0, lop)
	assert.True(t, deduction.IsZero())
}

func TestComputeLOPNonEarnedType(t *testing.T) {
	salary := decimal.NewFromInt(30000)

	// Sick leave never converts to LOP regardless of length.
	lop, deduction := ComputeLOP(10, models.LeaveTypeSick, 4, &salary)
	assert.Equal(t, 0, lop)
	assert.True(t, deduction.IsZero())
}

func TestComputeLOPNilSalary(t *testing.T) {
	lop, deduction := ComputeLOP(7, models.LeaveTypeEarned, 4, nil)
	assert.Equal(t, 3, lop)
	assert.True(t, deduction.IsZero())
}

func TestComputeLOPRoundsToRupee(t *testing.T) {
	salary := decimal.NewFromInt(25000)

	// 25000/30 = 833.33..., x1 day rounds to 833.
	lop, deduction := ComputeLOP(5, models.LeaveTypeEarned, 4, &salary)
	assert.Equal(t, 1, lop)
	assert.True(t, decimal.NewFromInt(833).Equal(deduction), "deduction = %s", deduction)
}
