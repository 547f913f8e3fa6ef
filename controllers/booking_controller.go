package controllers

import (
	"net/http"
	"strconv"

	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{Service: service}
}

type createBookingPayload struct {
	GuestID    uint   `json:"guest_id"`
	GuestName  string `json:"guest_name"`
	GuestPhone string `json:"guest_phone"`
	GuestEmail string `json:"guest_email"`

	RoomID   uint   `json:"room_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`

	AdvanceAmount decimal.Decimal `json:"advance_amount"`
	AdvanceMethod string          `json:"advance_method"`
}

type checkoutPayload struct {
	Method string `json:"method"`
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Service.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (bc *BookingController) GetBookingDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	booking, err := bc.Service.GetByID(uint(id))
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := bc.Service.CreateBooking(services.CreateBookingInput{
		GuestID:       payload.GuestID,
		GuestName:     payload.GuestName,
		GuestPhone:    payload.GuestPhone,
		GuestEmail:    payload.GuestEmail,
		RoomID:        payload.RoomID,
		CheckIn:       payload.CheckIn,
		CheckOut:      payload.CheckOut,
		AdvanceAmount: payload.AdvanceAmount,
		AdvanceMethod: payload.AdvanceMethod,
	})
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (bc *BookingController) CheckIn(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := bc.Service.CheckIn(uint(id)); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "checked in"})
}

func (bc *BookingController) Checkout(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	var payload checkoutPayload
	_ = c.ShouldBindJSON(&payload)
	if payload.Method == "" {
		payload.Method = "cash"
	}

	if err := bc.Service.Checkout(uint(id), payload.Method); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "checked out"})
}

func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := bc.Service.Cancel(uint(id)); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "cancelled"})
}
