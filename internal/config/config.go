package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type Config struct {
	Port    int
	GinMode string

	// Identity the phone app must present on /api/session/start. Fixed for
	// the process lifetime.
	MachineID string

	// An ACTIVE session with no deposits for this long is force-closed and
	// reconciled into the wallet.
	InactivityWindow time.Duration

	AuthSecret  string
	TokenExpiry time.Duration

	StartingPoints   int64
	PointsPerBottle  int64
	MinRedeemPoints  int64
	MaxDepositPoints int64

	TLSCertFile string
	TLSKeyFile  string
}

type Env interface {
	Getenv(key string) string
}

type osEnv struct{}

func (osEnv) Getenv(key string) string { return os.Getenv(key) }

func LoadConfig() (Config, error) {
	return LoadConfigFromEnv(osEnv{})
}

func LoadConfigFromEnv(env Env) (Config, error) {
	cfg := Config{
		Port:             3001,
		GinMode:          "release",
		MachineID:        "RVM-LOBBY-01",
		InactivityWindow: 60 * time.Second,
		TokenExpiry:      7 * 24 * time.Hour,
		StartingPoints:   12500,
		PointsPerBottle:  50,
		MinRedeemPoints:  1000,
		MaxDepositPoints: 1_000_000,
	}

	if raw := env.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT")
		}
		cfg.Port = port
	}

	if raw := env.Getenv("GIN_MODE"); raw != "" {
		cfg.GinMode = raw
	}

	if raw := env.Getenv("MACHINE_ID"); raw != "" {
		cfg.MachineID = raw
	}

	if raw := env.Getenv("SESSION_TIMEOUT_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("invalid SESSION_TIMEOUT_SECONDS")
		}
		cfg.InactivityWindow = time.Duration(seconds) * time.Second
	}

	// All server state is in-memory and resets on restart, so a generated
	// per-process secret is enough for the demo login flow.
	cfg.AuthSecret = env.Getenv("AUTH_SECRET")
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = uuid.NewString()
	}

	if raw := env.Getenv("TOKEN_EXPIRY_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("invalid TOKEN_EXPIRY_SECONDS")
		}
		cfg.TokenExpiry = time.Duration(seconds) * time.Second
	}

	intVars := []struct {
		name      string
		dst       *int64
		allowZero bool
	}{
		{"STARTING_POINTS", &cfg.StartingPoints, true},
		{"POINTS_PER_BOTTLE", &cfg.PointsPerBottle, false},
		{"MIN_REDEEM_POINTS", &cfg.MinRedeemPoints, true},
		{"MAX_DEPOSIT_POINTS", &cfg.MaxDepositPoints, false},
	}
	for _, v := range intVars {
		raw := env.Getenv(v.name)
		if raw == "" {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 || (n == 0 && !v.allowZero) {
			return Config{}, fmt.Errorf("invalid %s", v.name)
		}
		*v.dst = n
	}

	cfg.TLSCertFile = env.Getenv("TLS_CERT_FILE")
	cfg.TLSKeyFile = env.Getenv("TLS_KEY_FILE")

	return cfg, nil
}
