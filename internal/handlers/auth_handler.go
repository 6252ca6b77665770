package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/arteldev/salon-scheduler/internal/config"
	"github.com/arteldev/salon-scheduler/internal/models"
	"github.com/arteldev/salon-scheduler/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`

	FullName  string `json:"full_name" binding:"required"`
	BirthDate string `json:"birth_date"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register creates a client account: the Client record, the
// credential record and the link between them, in one transaction.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	var count int64
	h.db.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username_already_exists"})
		return
	}

	if req.Email != "" && !validators.IsEmailShapeValid(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	var user models.User
	var client models.Client

	err = h.db.Transaction(func(tx *gorm.DB) error {
		client = models.Client{
			FullName:         req.FullName,
			BirthDate:        req.BirthDate,
			Phone:            req.Phone,
			Email:            req.Email,
			RegistrationDate: time.Now().Format("2006-01-02"),
		}
		if err := tx.Create(&client).Error; err != nil {
			return err
		}

		user = models.User{
			Username:     username,
			PasswordHash: string(hashed),
			Role:         models.RoleClient,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		link := models.UserClient{UserID: user.ID, ClientID: client.ID}
		return tx.Create(&link).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_register"})
		return
	}

	token, err := h.generateToken(&user, &client.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"role":      user.Role,
			"client_id": client.ID,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	var user models.User
	if err := h.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	// A client-role identity is linked to at most one Client; the link
	// may be absent, in which case the token simply carries no client.
	var clientID *uint
	if user.Role == models.RoleClient {
		var link models.UserClient
		if err := h.db.Where("user_id = ?", user.ID).First(&link).Error; err == nil {
			clientID = &link.ClientID
		}
	}

	token, err := h.generateToken(&user, clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	resp := gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	}
	if clientID != nil {
		resp["client_id"] = *clientID
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  resp,
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User, clientID *uint) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	if clientID != nil {
		claims["clientId"] = *clientID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
