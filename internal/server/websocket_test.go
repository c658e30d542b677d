package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/myebiez/daur-cuan-app/internal/auth"
	"github.com/myebiez/daur-cuan-app/internal/handler"
	"github.com/myebiez/daur-cuan-app/internal/hub"
	"github.com/myebiez/daur-cuan-app/internal/rvm"
	"github.com/myebiez/daur-cuan-app/internal/wallet"
)

func TestWebSocketStatusStream(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := wallet.New(wallet.Options{PointsPerBottle: 50})
	wsHub := hub.New()
	manager := rvm.New(rvm.Options{
		MachineID:        testMachineID,
		InactivityWindow: time.Hour,
		Wallet:           w,
		Logger:           zerolog.Nop(),
		OnChange: func(snap rvm.Snapshot) {
			wsHub.Broadcast(handler.StatusUpdateMessage(snap))
		},
	})
	r := NewRouter(Deps{
		Manager:          manager,
		Wallet:           w,
		Hub:              wsHub,
		TokenConfig:      auth.TokenConfig{Secret: "secret", Expiry: time.Hour, Issuer: "test"},
		MinRedeemPoints:  1000,
		MaxDepositPoints: 1_000_000,
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	// The current snapshot arrives first.
	var msg map[string]any
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if msg["type"] != "update" || msg["event"] != "machine-status" {
		t.Fatalf("unexpected first message %v", msg)
	}
	body := msg["body"].(map[string]any)
	if body["status"] != "LOCKED" {
		t.Fatalf("expected LOCKED snapshot, got %v", body)
	}

	if _, err := manager.Start(testMachineID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	body = msg["body"].(map[string]any)
	if body["status"] != "ACTIVE" {
		t.Fatalf("expected ACTIVE update, got %v", body)
	}

	if _, err := manager.Deposit(50); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	body = msg["body"].(map[string]any)
	session := body["session"].(map[string]any)
	if session["sessionPoints"] != float64(50) {
		t.Fatalf("expected 50 session points, got %v", session)
	}

	if err := conn.WriteJSON(map[string]any{"type": "ping"}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if msg["type"] != "pong" {
		t.Fatalf("expected pong, got %v", msg)
	}
}
