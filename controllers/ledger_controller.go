package controllers

import (
	"net/http"
	"time"

	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type LedgerController struct {
	Service *services.LedgerService
}

func NewLedgerController(service *services.LedgerService) *LedgerController {
	return &LedgerController{Service: service}
}

type postTransactionPayload struct {
	Description   string          `json:"description"`
	DebitAccount  string          `json:"debit_account" binding:"required"`
	CreditAccount string          `json:"credit_account" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
}

func (lc *LedgerController) GetChart(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, services.LedgerChart)
}

func (lc *LedgerController) ListTransactions(c *gin.Context) {
	txns, err := lc.Service.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, txns)
}

func (lc *LedgerController) PostTransaction(c *gin.Context) {
	var payload postTransactionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var date time.Time
	if payload.Date != "" {
		parsed, err := time.Parse("2006-01-02", payload.Date)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date format")
			return
		}
		date = parsed
	}

	txn, err := lc.Service.Post(payload.Description, payload.DebitAccount, payload.CreditAccount, payload.Amount, date)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, txn)
}

func (lc *LedgerController) GetBalances(c *gin.Context) {
	balances, err := lc.Service.Balances()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	// Echo the chart alongside so clients can render names and categories.
	out := make([]gin.H, 0, len(services.LedgerChart))
	for _, acc := range services.LedgerChart {
		out = append(out, gin.H{
			"code":     acc.Code,
			"name":     acc.Name,
			"category": acc.Category,
			"balance":  balances[acc.Code],
		})
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

func (lc *LedgerController) Reset(c *gin.Context) {
	if err := lc.Service.Reset(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "ledger reset"})
}
