package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"resort-backend/config"
	"resort-backend/models"

	"github.com/gin-gonic/gin"
)

type roomTypePayload struct {
	TypeName    string `json:"type_name" binding:"required"`
	Description string `json:"description"`
	MaxGuests   uint   `json:"max_guests"`
}

func GetRoomTypes(c *gin.Context) {
	var types []models.RoomType
	if err := config.DB.Order("id ASC").Find(&types).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, types)
}

func CreateRoomType(c *gin.Context) {
	var payload roomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rt := models.RoomType{
		TypeName:    strings.TrimSpace(payload.TypeName),
		Description: payload.Description,
		MaxGuests:   payload.MaxGuests,
	}
	if err := config.DB.Create(&rt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rt)
}

func DeleteRoomType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var count int64
	config.DB.Model(&models.Room{}).Where("room_type_id = ?", id).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "room type is in use"})
		return
	}

	if err := config.DB.Delete(&models.RoomType{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
