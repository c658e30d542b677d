package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/myebiez/daur-cuan-app/internal/wallet"
)

type WalletHandler struct {
	Wallet *wallet.Store

	// MinRedeemPoints is the smallest redeemable amount; zero disables the
	// floor.
	MinRedeemPoints int64
}

// Profile returns the user record plus the wallet snapshot consumed by the
// dashboard and history pages.
func (h *WalletHandler) Profile(c *gin.Context) {
	user, snap := h.Wallet.Profile()
	c.JSON(http.StatusOK, gin.H{"user": user, "wallet": snap})
}

type redeemBody struct {
	Amount *float64 `json:"amount"`
	Method string   `json:"method"`
}

// Redeem exchanges wallet points for the requested payout method.
func (h *WalletHandler) Redeem(c *gin.Context) {
	var body redeemBody
	if err := c.ShouldBindJSON(&body); err != nil || body.Amount == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Jumlah tidak valid"})
		return
	}
	if body.Method == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Metode penukaran wajib diisi"})
		return
	}

	amount, ok := integralPoints(*body.Amount, 1<<53)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Jumlah tidak valid"})
		return
	}
	if h.MinRedeemPoints > 0 && amount < h.MinRedeemPoints {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fmt.Sprintf("Minimal penukaran %d poin", h.MinRedeemPoints),
		})
		return
	}

	newBalance, err := h.Wallet.Redeem(amount, body.Method, time.Now().UnixMilli())
	if errors.Is(err, wallet.ErrInsufficientBalance) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Poin tidak cukup"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Jumlah tidak valid"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "newBalance": newBalance})
}
