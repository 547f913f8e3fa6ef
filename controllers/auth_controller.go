package controllers

import (
	"net/http"
	"strings"
	"time"

	"resort-backend/config"
	"resort-backend/middleware"
	"resort-backend/models"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type forgotPayload struct {
	Email string `json:"email"`
}

// roleForAdmin resolves the admin's role through role_members; admins with no
// membership act as frontdesk.
func roleForAdmin(adminID uint) string {
	var role models.Role
	err := config.DB.
		Joins("JOIN role_members ON role_members.role_id = roles.id").
		Where("role_members.admin_id = ?", adminID).
		Order("roles.id ASC").
		First(&role).Error
	if err != nil || role.Name == "" {
		return "frontdesk"
	}
	return role.Name
}

func Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	var admin models.Admin
	if err := config.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(payload.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	role := roleForAdmin(admin.ID)
	token, err := middleware.IssueToken(admin.ID, admin.Username, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":        admin.ID,
			"full_name": admin.FullName,
			"username":  admin.Username,
			"role":      role,
		},
	})
}

func ForgotPassword(c *gin.Context) {
	var payload forgotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	email := strings.TrimSpace(payload.Email)
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email required"})
		return
	}

	var admin models.Admin
	if err := config.DB.Where("username = ?", email).First(&admin).Error; err == nil {
		if token, tErr := utils.GenerateSecureToken(24); tErr == nil {
			expires := time.Now().UTC().Add(1 * time.Hour)
			_ = config.DB.Model(&admin).Updates(map[string]interface{}{
				"reset_token":         token,
				"reset_token_expires": expires,
			}).Error
			config.GetLogger().WithField("username", admin.Username).Info("[MOCK EMAIL] password reset token issued")
		}
	}

	// Same answer whether or not the account exists.
	c.JSON(http.StatusOK, gin.H{"message": "if the account exists, a reset link has been sent"})
}
