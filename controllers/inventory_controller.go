package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"resort-backend/middleware"
	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InventoryController struct {
	Service *services.InventoryService
}

func NewInventoryController(service *services.InventoryService) *InventoryController {
	return &InventoryController{Service: service}
}

type createItemPayload struct {
	Name      string          `json:"name" binding:"required"`
	Unit      string          `json:"unit"`
	Stock     int             `json:"stock"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Threshold int             `json:"threshold"`
	VendorID  *uint           `json:"vendor_id"`
}

type adjustStockPayload struct {
	Delta int `json:"delta" binding:"required"`
}

type purchaseRequestPayload struct {
	ItemID   uint   `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
	Notes    string `json:"notes"`
}

type purchaseStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

func (ic *InventoryController) GetItems(c *gin.Context) {
	items, err := ic.Service.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (ic *InventoryController) GetItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	item, err := ic.Service.GetByID(uint(id))
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"item":   item,
		"status": services.StockStatus(item.Stock, item.Threshold),
	})
}

func (ic *InventoryController) CreateItem(c *gin.Context) {
	var payload createItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	item := models.InventoryItem{
		Name:      strings.TrimSpace(payload.Name),
		Unit:      strings.TrimSpace(payload.Unit),
		Stock:     payload.Stock,
		UnitPrice: payload.UnitPrice,
		Threshold: payload.Threshold,
		VendorID:  payload.VendorID,
	}
	if err := ic.Service.CreateItem(&item); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}

func (ic *InventoryController) AdjustStock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	var payload adjustStockPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := ic.Service.AdjustStock(uint(id), payload.Delta)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"item":   item,
		"status": services.StockStatus(item.Stock, item.Threshold),
	})
}

func (ic *InventoryController) LowStock(c *gin.Context) {
	rows, err := ic.Service.LowStockReport()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

func (ic *InventoryController) CreatePurchaseRequest(c *gin.Context) {
	var payload purchaseRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	requestedBy := "anonymous"
	if v, ok := c.Get(middleware.ContextActor); ok {
		if s, ok := v.(string); ok && s != "" {
			requestedBy = s
		}
	}

	pr := models.PurchaseRequest{
		ItemID:      payload.ItemID,
		Quantity:    payload.Quantity,
		RequestedBy: requestedBy,
	}
	if err := ic.Service.CreatePurchaseRequest(&pr); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, pr)
}

func (ic *InventoryController) ListPurchaseRequests(c *gin.Context) {
	reqs, err := ic.Service.ListPurchaseRequests(c.Query("status"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reqs)
}

func (ic *InventoryController) UpdatePurchaseStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	var payload purchaseStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	pr, err := ic.Service.UpdatePurchaseStatus(uint(id), payload.Status)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, pr)
}
