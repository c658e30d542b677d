package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/myebiez/daur-cuan-app/internal/auth"
	"github.com/myebiez/daur-cuan-app/internal/middleware"
	"github.com/myebiez/daur-cuan-app/internal/model"
	"github.com/myebiez/daur-cuan-app/internal/wallet"
)

type AccountHandler struct {
	Wallet       *wallet.Store
	TokenConfig  auth.TokenConfig
	LoginLimiter *middleware.RateLimiter
}

type loginBody struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login registers the demo user's identity and issues the bearer token used
// by the account endpoints.
func (h *AccountHandler) Login(c *gin.Context) {
	var body loginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	email := strings.TrimSpace(body.Email)
	if email == "" || !strings.Contains(email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email tidak valid"})
		return
	}

	if h.LoginLimiter != nil && !h.LoginLimiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
		return
	}

	user := h.Wallet.UpdateUser(strings.TrimSpace(body.Name), email, "")
	token, err := auth.CreateToken(email, h.TokenConfig)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token creation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

type updateProfileBody struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	if _, ok := middleware.UserEmailFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication token"})
		return
	}

	var body updateProfileBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user := h.Wallet.UpdateUser(body.Name, body.Email, body.Avatar)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

type bankAccountBody struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	HolderName    string `json:"holderName"`
}

func (h *AccountHandler) SaveBankAccount(c *gin.Context) {
	if _, ok := middleware.UserEmailFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication token"})
		return
	}

	var body bankAccountBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if body.BankName == "" || body.AccountNumber == "" || body.HolderName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data rekening belum lengkap"})
		return
	}

	user := h.Wallet.SetBankAccount(model.BankAccount{
		BankName:      body.BankName,
		AccountNumber: body.AccountNumber,
		HolderName:    body.HolderName,
	})
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
