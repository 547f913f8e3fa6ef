package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type VendorController struct {
	Service *services.VendorService
}

func NewVendorController(service *services.VendorService) *VendorController {
	return &VendorController{Service: service}
}

type createVendorPayload struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"omitempty,phoneshape"`
	AccountNumber string `json:"account_number"`
	IFSCCode      string `json:"ifsc_code" binding:"omitempty,ifsc"`
	UPIID         string `json:"upi_id" binding:"omitempty,upi"`
}

type createVendorBillPayload struct {
	BillNumber string          `json:"bill_number"`
	BillDate   string          `json:"bill_date"`
	Total      decimal.Decimal `json:"total"`
}

type vendorPaymentPayload struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	PaidAt string          `json:"paid_at"`
}

func (vc *VendorController) CreateVendor(c *gin.Context) {
	var payload createVendorPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	vendor := models.Vendor{
		Name:          strings.TrimSpace(payload.Name),
		Phone:         payload.Phone,
		AccountNumber: strings.TrimSpace(payload.AccountNumber),
		IFSCCode:      strings.ToUpper(strings.TrimSpace(payload.IFSCCode)),
		UPIID:         strings.TrimSpace(payload.UPIID),
	}
	if err := vc.Service.Create(&vendor); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, vendor)
}

func (vc *VendorController) GetVendors(c *gin.Context) {
	vendors, err := vc.Service.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, vendors)
}

func (vc *VendorController) GetVendor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	vendor, err := vc.Service.GetByID(uint(id))
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, vendor)
}

func (vc *VendorController) CreateBill(c *gin.Context) {
	vendorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	var payload createVendorBillPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	billDate := time.Now().UTC()
	if payload.BillDate != "" {
		if d, pErr := time.Parse("2006-01-02", payload.BillDate); pErr == nil {
			billDate = d
		}
	}

	bill := models.VendorBill{
		VendorID:   uint(vendorID),
		BillNumber: strings.TrimSpace(payload.BillNumber),
		BillDate:   billDate,
		Total:      payload.Total,
	}
	if err := vc.Service.CreateBill(&bill); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, bill)
}

func (vc *VendorController) RecordPayment(c *gin.Context) {
	billID, err := strconv.Atoi(c.Param("billId"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid bill id")
		return
	}

	var payload vendorPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	paidAt := time.Now().UTC()
	if payload.PaidAt != "" {
		if d, pErr := time.Parse("2006-01-02", payload.PaidAt); pErr == nil {
			paidAt = d
		}
	}

	payment := models.VendorPayment{
		BillID: uint(billID),
		Amount: payload.Amount,
		Method: payload.Method,
		PaidAt: paidAt,
	}
	if err := vc.Service.RecordPayment(&payment); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, payment)
}

// GetLedger returns the vendor's per-bill billed/paid/balance rows.
func (vc *VendorController) GetLedger(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	rows, err := vc.Service.Ledger(uint(id))
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"rows":        rows,
		"outstanding": services.OutstandingFromLedger(rows),
	})
}

func (vc *VendorController) GetBillPayments(c *gin.Context) {
	billID, err := strconv.Atoi(c.Param("billId"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid bill id")
		return
	}

	payments, err := vc.Service.PaymentsForBill(uint(billID))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payments)
}
