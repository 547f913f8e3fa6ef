package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"resort-backend/config"
	"resort-backend/models"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type staffPayload struct {
	FullName      string           `json:"full_name" binding:"required"`
	Phone         string           `json:"phone"`
	Department    string           `json:"department"`
	Designation   string           `json:"designation"`
	MonthlySalary *decimal.Decimal `json:"monthly_salary"`
	JoinedAt      string           `json:"joined_at"`
	Status        string           `json:"status"`
}

func GetStaff(c *gin.Context) {
	query := config.DB.Order("full_name ASC")
	if dept := c.Query("department"); dept != "" {
		query = query.Where("department = ?", dept)
	}

	var staff []models.Staff
	if err := query.Find(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, staff)
}

func CreateStaff(c *gin.Context) {
	var payload staffPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := payload.Status
	if status == "" {
		status = "active"
	}

	member := models.Staff{
		FullName:      strings.TrimSpace(payload.FullName),
		Phone:         utils.NormalizePhone(payload.Phone),
		Department:    strings.TrimSpace(payload.Department),
		Designation:   strings.TrimSpace(payload.Designation),
		MonthlySalary: payload.MonthlySalary,
		Status:        status,
	}
	if payload.JoinedAt != "" {
		if joined, err := time.Parse("2006-01-02", payload.JoinedAt); err == nil {
			member.JoinedAt = &joined
		}
	}

	if err := config.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, member)
}

func UpdateStaff(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var member models.Staff
	if err := config.DB.First(&member, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "staff not found"})
		return
	}

	var payload staffPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member.FullName = strings.TrimSpace(payload.FullName)
	member.Phone = utils.NormalizePhone(payload.Phone)
	member.Department = strings.TrimSpace(payload.Department)
	member.Designation = strings.TrimSpace(payload.Designation)
	member.MonthlySalary = payload.MonthlySalary
	if payload.Status != "" {
		member.Status = payload.Status
	}
	if payload.JoinedAt != "" {
		if joined, pErr := time.Parse("2006-01-02", payload.JoinedAt); pErr == nil {
			member.JoinedAt = &joined
		}
	}

	if err := config.DB.Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, member)
}

func DeleteStaff(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := config.DB.Delete(&models.Staff{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
