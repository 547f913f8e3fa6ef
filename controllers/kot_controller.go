package controllers

import (
	"net/http"
	"strconv"

	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
)

type KOTController struct {
	Service *services.KOTService
}

func NewKOTController(service *services.KOTService) *KOTController {
	return &KOTController{Service: service}
}

type createOrderPayload struct {
	TableNumber string                  `json:"table_number"`
	OrderType   string                  `json:"order_type"`
	Items       []services.KOTItemInput `json:"items"`
}

type addItemsPayload struct {
	Items []services.KOTItemInput `json:"items" binding:"required,min=1,dive"`
}

type closeOrderPayload struct {
	PaymentMethod string `json:"payment_method"`
}

func (kc *KOTController) CreateOrder(c *gin.Context) {
	var payload createOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := kc.Service.CreateOrder(payload.TableNumber, payload.OrderType, payload.Items)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, order)
}

func (kc *KOTController) ListOrders(c *gin.Context) {
	orders, err := kc.Service.ListOrders(c.Query("status"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, orders)
}

func (kc *KOTController) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	order, err := kc.Service.GetOrder(uint(id))
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}

func (kc *KOTController) AddItems(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	var payload addItemsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := kc.Service.AddItems(uint(id), payload.Items)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}

func (kc *KOTController) CloseOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	var payload closeOrderPayload
	_ = c.ShouldBindJSON(&payload)
	if payload.PaymentMethod == "" {
		payload.PaymentMethod = "cash"
	}

	bill, err := kc.Service.CloseOrder(uint(id), payload.PaymentMethod)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

func (kc *KOTController) CancelOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := kc.Service.CancelOrder(uint(id)); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "cancelled"})
}

func (kc *KOTController) GetBill(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	bill, err := kc.Service.GetBillForOrder(uint(id))
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

// PrintReceipt returns the printable ticket as HTML rather than JSON.
func (kc *KOTController) PrintReceipt(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	html, err := kc.Service.Receipt(uint(id))
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
