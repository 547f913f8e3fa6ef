package controllers

import (
	"net/http"
	"strings"

	"resort-backend/config"
	"resort-backend/models"

	"github.com/gin-gonic/gin"
)

type settingsPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	GSTIN   string `json:"gstin"`
	Website string `json:"website"`
}

func GetResortSettings(c *gin.Context) {
	var setting models.ResortSetting
	if err := config.DB.First(&setting).Error; err != nil {
		c.JSON(http.StatusOK, models.ResortSetting{})
		return
	}
	c.JSON(http.StatusOK, setting)
}

// UpdateResortSettings upserts the single settings row.
func UpdateResortSettings(c *gin.Context) {
	var payload settingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var setting models.ResortSetting
	err := config.DB.First(&setting).Error

	setting.Name = strings.TrimSpace(payload.Name)
	setting.Address = strings.TrimSpace(payload.Address)
	setting.Phone = strings.TrimSpace(payload.Phone)
	setting.Email = strings.TrimSpace(payload.Email)
	setting.GSTIN = strings.ToUpper(strings.TrimSpace(payload.GSTIN))
	setting.Website = strings.TrimSpace(payload.Website)

	if err != nil {
		err = config.DB.Create(&setting).Error
	} else {
		err = config.DB.Save(&setting).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, setting)
}
