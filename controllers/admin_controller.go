package controllers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"property-backend/config"
	"property-backend/models"
	"property-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type createAdminPayload struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type inviteAdminPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type activateAdminPayload struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

var inviteEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

func GetAdmins(c *gin.Context) {
	var admins []models.Admin
	if err := config.DB.Find(&admins).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, admins)
}

func CreateAdmin(c *gin.Context) {
	var payload createAdminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin := models.Admin{
		FullName: payload.FullName,
		Username: payload.Username,
		Password: payload.Password,
	}
	if admin.Password != "" && !isBcryptHash(admin.Password) {
		if hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost); err == nil {
			admin.Password = string(hash)
		}
	}

	if err := config.DB.Create(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, admin)
}

func InviteAdmin(c *gin.Context) {
	var payload inviteAdminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	name := strings.TrimSpace(payload.Name)
	email := strings.TrimSpace(payload.Email)
	if name == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
		return
	}
	if !inviteEmailRegex.MatchString(strings.ToLower(email)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
		return
	}

	token, err := utils.GenerateSecureToken(24)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	expiry := time.Now().Add(24 * time.Hour)

	var admin models.Admin
	exists := false
	if err := config.DB.Unscoped().Where("username = ?", email).First(&admin).Error; err == nil {
		exists = true
		if !admin.DeletedAt.Valid {
			c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
			return
		}
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if exists {
		// Re-invite a previously removed admin: revive the soft-deleted row.
		if err := config.DB.Unscoped().Model(&admin).Updates(map[string]any{
			"full_name":           name,
			"reset_token":         token,
			"reset_token_expires": expiry,
			"deleted_at":          nil,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	} else {
		admin = models.Admin{
			FullName:          name,
			Username:          email,
			ResetToken:        &token,
			ResetTokenExpires: &expiry,
		}
		if err := config.DB.Create(&admin).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	frontend := utils.EnvOrDefault("FRONTEND_URL", "http://localhost:3000")
	link := frontend + "/activate?token=" + token + "&email=" + email
	if err := utils.SendAdminInviteEmail(email, link, name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send invite email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invite sent"})
}

func ActivateAdmin(c *gin.Context) {
	var payload activateAdminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	email := strings.TrimSpace(payload.Email)
	if email == "" || payload.Token == "" || payload.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email, token, and password are required"})
		return
	}

	var admin models.Admin
	if err := config.DB.Where("username = ?", email).First(&admin).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invite not found"})
		return
	}
	if admin.ResetToken == nil || *admin.ResetToken != payload.Token {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	if admin.ResetTokenExpires == nil || admin.ResetTokenExpires.Before(time.Now()) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}
	if err := config.DB.Model(&admin).Updates(map[string]any{
		"password":            string(hash),
		"reset_token":         nil,
		"reset_token_expires": nil,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account activated"})
}

func DeleteAdmin(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid admin id"})
		return
	}
	if err := config.DB.Delete(&models.Admin{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "admin removed"})
}
