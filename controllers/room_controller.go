package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"resort-backend/config"
	"resort-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type roomPayload struct {
	RoomNumber  string          `json:"room_number" binding:"required"`
	Floor       string          `json:"floor"`
	RoomTypeID  *uint           `json:"room_type_id"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
}

func GetRooms(c *gin.Context) {
	query := config.DB.Preload("RoomType").Order("room_number ASC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var rooms []models.Room
	if err := query.Find(&rooms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func CreateRoom(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := payload.Status
	if status == "" {
		status = models.RoomStatusAvailable
	}

	room := models.Room{
		RoomNumber:  strings.TrimSpace(payload.RoomNumber),
		Floor:       strings.TrimSpace(payload.Floor),
		RoomTypeID:  payload.RoomTypeID,
		NightlyRate: payload.NightlyRate,
		Status:      status,
		Description: payload.Description,
	}
	if err := config.DB.Create(&room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, room)
}

func UpdateRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room.RoomNumber = strings.TrimSpace(payload.RoomNumber)
	room.Floor = strings.TrimSpace(payload.Floor)
	room.RoomTypeID = payload.RoomTypeID
	room.NightlyRate = payload.NightlyRate
	room.Description = payload.Description
	if payload.Status != "" {
		room.Status = payload.Status
	}

	if err := config.DB.Save(&room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, room)
}

func DeleteRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := config.DB.Delete(&models.Room{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
