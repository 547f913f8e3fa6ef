package controllers

import (
	"net/http"
	"strings"
	"time"

	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type RevenueController struct {
	Service *services.RevenueService
}

func NewRevenueController(service *services.RevenueService) *RevenueController {
	return &RevenueController{Service: service}
}

type accountEntryPayload struct {
	Category      string          `json:"category" binding:"required"`
	Description   string          `json:"description"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	GuestName     string          `json:"guest"`
	RoomNumber    string          `json:"room"`
}

type eventBookingPayload struct {
	EventName     string          `json:"event_name" binding:"required"`
	ClientName    string          `json:"client_name"`
	EventDate     string          `json:"event_date"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
}

// parseRangeQuery reads optional ?from= and ?to= date filters. Dates are
// "2006-01-02"; to is exclusive.
func parseRangeQuery(c *gin.Context) (from, to *time.Time, err error) {
	if raw := c.Query("from"); raw != "" {
		t, pErr := time.Parse("2006-01-02", raw)
		if pErr != nil {
			return nil, nil, pErr
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, pErr := time.Parse("2006-01-02", raw)
		if pErr != nil {
			return nil, nil, pErr
		}
		to = &t
	}
	return from, to, nil
}

func (rc *RevenueController) CreateEntry(c *gin.Context) {
	var payload accountEntryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !models.ValidCategory(payload.Category) {
		utils.JSONError(c, http.StatusBadRequest, "invalid_category")
		return
	}
	if !payload.TotalAmount.IsPositive() {
		utils.JSONError(c, http.StatusBadRequest, "invalid_amount")
		return
	}

	entry := models.AccountEntry{
		Category:      payload.Category,
		Description:   strings.TrimSpace(payload.Description),
		TotalAmount:   payload.TotalAmount,
		PaymentMethod: payload.PaymentMethod,
		GuestName:     strings.TrimSpace(payload.GuestName),
		RoomNumber:    strings.TrimSpace(payload.RoomNumber),
	}
	if err := rc.Service.DB.Create(&entry).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, entry)
}

// GetRevenue returns the merged multi-source revenue feed.
func (rc *RevenueController) GetRevenue(c *gin.Context) {
	from, to, err := parseRangeQuery(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date format")
		return
	}

	records, err := rc.Service.Aggregate(from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, records)
}

func (rc *RevenueController) GetSummary(c *gin.Context) {
	from, to, err := parseRangeQuery(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date format")
		return
	}

	summary, err := rc.Service.Summary(from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}

func (rc *RevenueController) CreateEventBooking(c *gin.Context) {
	var payload eventBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	eventDate := time.Now().UTC()
	if payload.EventDate != "" {
		if d, pErr := time.Parse("2006-01-02", payload.EventDate); pErr == nil {
			eventDate = d
		}
	}

	event := models.EventBooking{
		EventName:     strings.TrimSpace(payload.EventName),
		ClientName:    strings.TrimSpace(payload.ClientName),
		EventDate:     eventDate,
		Amount:        payload.Amount,
		PaymentMethod: payload.PaymentMethod,
	}
	if err := rc.Service.DB.Create(&event).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, event)
}

func (rc *RevenueController) GetEventBookings(c *gin.Context) {
	var events []models.EventBooking
	if err := rc.Service.DB.Order("event_date DESC").Find(&events).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, events)
}
