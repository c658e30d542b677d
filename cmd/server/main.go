package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/myebiez/daur-cuan-app/internal/auth"
	"github.com/myebiez/daur-cuan-app/internal/config"
	"github.com/myebiez/daur-cuan-app/internal/handler"
	"github.com/myebiez/daur-cuan-app/internal/hub"
	"github.com/myebiez/daur-cuan-app/internal/model"
	"github.com/myebiez/daur-cuan-app/internal/rvm"
	"github.com/myebiez/daur-cuan-app/internal/server"
	"github.com/myebiez/daur-cuan-app/internal/wallet"
)

func main() {
	// A missing .env is fine; everything has defaults.
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "daurcuan").
		Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	gin.SetMode(cfg.GinMode)

	w := wallet.New(wallet.Options{
		User:            model.User{Name: "User Demo", Email: "demo@daurcuan.id"},
		OpeningPoints:   cfg.StartingPoints,
		OpeningAtMillis: time.Now().UnixMilli(),
		PointsPerBottle: cfg.PointsPerBottle,
	})

	wsHub := hub.New()
	manager := rvm.New(rvm.Options{
		MachineID:        cfg.MachineID,
		InactivityWindow: cfg.InactivityWindow,
		Wallet:           w,
		Logger:           logger.With().Str("component", "rvm").Logger(),
		OnChange: func(snap rvm.Snapshot) {
			wsHub.Broadcast(handler.StatusUpdateMessage(snap))
		},
	})

	tokenCfg := auth.TokenConfig{
		Secret: cfg.AuthSecret,
		Expiry: cfg.TokenExpiry,
		Issuer: "daurcuan",
	}

	router := server.NewRouter(server.Deps{
		Manager:          manager,
		Wallet:           w,
		Hub:              wsHub,
		TokenConfig:      tokenCfg,
		MinRedeemPoints:  cfg.MinRedeemPoints,
		MaxDepositPoints: cfg.MaxDepositPoints,
	})

	logger.Info().
		Int("port", cfg.Port).
		Str("machine_id", cfg.MachineID).
		Dur("inactivity_window", cfg.InactivityWindow).
		Msg("server listening")
	logger.Fatal().Err(server.Run(cfg, router)).Msg("server stopped")
}
