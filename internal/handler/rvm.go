package handler

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/myebiez/daur-cuan-app/internal/rvm"
)

type RVMHandler struct {
	Manager *rvm.Manager

	// MaxDepositPoints bounds a single deposit report. Values above it are
	// rejected outright rather than clamped.
	MaxDepositPoints int64
}

type depositBody struct {
	Points *float64 `json:"points"`
}

// Input accepts one bottle-deposit report from the machine.
func (h *RVMHandler) Input(c *gin.Context) {
	var body depositBody
	if err := c.ShouldBindJSON(&body); err != nil || body.Points == nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Poin tidak valid"})
		return
	}

	points, ok := integralPoints(*body.Points, h.MaxDepositPoints)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Poin tidak valid"})
		return
	}

	total, err := h.Manager.Deposit(points)
	if errors.Is(err, rvm.ErrSessionNotActive) {
		// Expected while the machine is locked; the firmware polls around it.
		c.JSON(http.StatusOK, gin.H{"status": "rejected", "message": "Sesi belum mulai"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Poin tidak valid"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "currentPoints": total})
}

// integralPoints validates that the wire value is a finite positive integer
// within maxPoints, and converts it.
func integralPoints(f float64, maxPoints int64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f != math.Trunc(f) || f <= 0 || f > float64(maxPoints) {
		return 0, false
	}
	return int64(f), true
}
