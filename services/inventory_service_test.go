package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockStatus(t *testing.T) {
	assert.Equal(t, StockOut, StockStatus(0, 5))
	assert.Equal(t, StockOut, StockStatus(-1, 5))
	assert.Equal(t, StockLow, StockStatus(3, 5))
	assert.Equal(t, StockLow, StockStatus(5, 5))
	assert.Equal(t, StockOK, StockStatus(6, 5))

	// zero threshold: anything positive is in stock
	assert.Equal(t, StockOK, StockStatus(1, 0))
	assert.Equal(t, StockOut, StockStatus(0, 0))
}
