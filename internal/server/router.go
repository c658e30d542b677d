package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/myebiez/daur-cuan-app/internal/auth"
	"github.com/myebiez/daur-cuan-app/internal/handler"
	"github.com/myebiez/daur-cuan-app/internal/hub"
	"github.com/myebiez/daur-cuan-app/internal/middleware"
	"github.com/myebiez/daur-cuan-app/internal/rvm"
	"github.com/myebiez/daur-cuan-app/internal/wallet"
)

type Deps struct {
	Manager     *rvm.Manager
	Wallet      *wallet.Store
	Hub         *hub.Hub
	TokenConfig auth.TokenConfig

	MinRedeemPoints  int64
	MaxDepositPoints int64
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	sessionHandler := &handler.SessionHandler{Manager: deps.Manager}
	r.POST("/api/session/start", sessionHandler.Start)
	r.POST("/api/session/end", sessionHandler.End)
	r.GET("/api/status", sessionHandler.Status)
	r.GET("/api/machine/check", sessionHandler.MachineCheck)

	rvmHandler := &handler.RVMHandler{Manager: deps.Manager, MaxDepositPoints: deps.MaxDepositPoints}
	r.POST("/api/rvm/input", rvmHandler.Input)

	walletHandler := &handler.WalletHandler{Wallet: deps.Wallet, MinRedeemPoints: deps.MinRedeemPoints}
	r.GET("/api/user/profile", walletHandler.Profile)
	r.POST("/api/redeem", walletHandler.Redeem)

	catalogHandler := &handler.CatalogHandler{}
	r.GET("/api/locations", catalogHandler.Locations)
	r.GET("/api/redeem/options", catalogHandler.RedeemOptions)

	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	accountHandler := &handler.AccountHandler{Wallet: deps.Wallet, TokenConfig: deps.TokenConfig, LoginLimiter: loginLimiter}
	r.POST("/api/auth/login", accountHandler.Login)

	account := r.Group("/api/account")
	account.Use(middleware.RequireAuth(deps.TokenConfig))
	account.PUT("/profile", accountHandler.UpdateProfile)
	account.PUT("/bank", accountHandler.SaveBankAccount)

	if deps.Hub != nil {
		wsHandler := &handler.WebSocketHandler{Hub: deps.Hub, Manager: deps.Manager}
		r.GET("/ws", wsHandler.Serve)
	}

	return r
}
