package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/myebiez/daur-cuan-app/internal/model"
	"github.com/myebiez/daur-cuan-app/internal/rvm"
)

type SessionHandler struct {
	Manager *rvm.Manager
}

type startSessionBody struct {
	Code string `json:"code"`
}

// Start opens an RVM session for the machine id scanned from the QR code.
func (h *SessionHandler) Start(c *gin.Context) {
	var body startSessionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request"})
		return
	}

	result, err := h.Manager.Start(body.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Mesin tidak dikenali"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"sessionId":     result.SessionID,
			"startTime":     result.StartedAt,
			"sessionPoints": 0,
		},
	})
}

// End closes the active session. Ending an already locked machine is not an
// error; the firmware retries liberally.
func (h *SessionHandler) End(c *gin.Context) {
	result := h.Manager.End()
	if !result.Closed {
		c.JSON(http.StatusOK, gin.H{"status": "already_closed", "newBalance": result.NewBalance})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "closed",
		"pointsAdded": result.PointsAdded,
		"newBalance":  result.NewBalance,
	})
}

// Status is the snapshot the phone app polls every second.
func (h *SessionHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, StatusView(h.Manager.Snapshot()))
}

// MachineCheck answers the vending machine firmware with a bare status
// string. The firmware compares the raw body, so this stays plain text.
func (h *SessionHandler) MachineCheck(c *gin.Context) {
	c.String(http.StatusOK, string(h.Manager.Snapshot().Status))
}

func sessionView(sess *model.Session) interface{} {
	if sess == nil {
		return nil
	}
	return gin.H{
		"sessionId":      sess.ID,
		"startedAt":      sess.StartedAt,
		"lastActivityAt": sess.LastActivityAt,
		"sessionPoints":  sess.Points,
	}
}

// StatusView renders a machine snapshot in the wire shape shared by the
// status endpoint and the websocket stream.
func StatusView(snap rvm.Snapshot) gin.H {
	return gin.H{
		"machineId": snap.MachineID,
		"status":    snap.Status,
		"session":   sessionView(snap.Session),
	}
}
