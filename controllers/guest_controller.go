package controllers

import (
	"net/http"
	"strconv"

	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	Service *services.GuestService
}

func NewGuestController(service *services.GuestService) *GuestController {
	return &GuestController{Service: service}
}

// GetGuests lists all guests, or searches by phone when ?phone= is given.
func (gc *GuestController) GetGuests(c *gin.Context) {
	if phone := c.Query("phone"); phone != "" {
		guests, err := gc.Service.SearchByPhone(phone)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSONSuccess(c, http.StatusOK, guests)
		return
	}

	guests, err := gc.Service.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

func (gc *GuestController) GetGuestByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	guest, err := gc.Service.GetByID(uint(id))
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

func (gc *GuestController) CreateGuest(c *gin.Context) {
	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := gc.Service.FindOrCreateByPhone(&guest)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	utils.JSONSuccess(c, code, guest)
}

func (gc *GuestController) UpdateGuest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	guest, err := gc.Service.Update(uint(id), updates)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

func (gc *GuestController) DeleteGuest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := gc.Service.Delete(uint(id)); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "deleted"})
}
