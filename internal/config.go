package internal

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	HTTPHost             string        `env:"HTTP_HOST,default=0.0.0.0"`
	HTTPPort             int           `env:"HTTP_PORT,default=4000"`
	GRPCPort             int           `env:"GRPC_PORT,default=50051"`
	DebugPort            int           `env:"DEBUG_PORT,default=8081"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	WriteTimeout         time.Duration `env:"WRITE_TIMEOUT,default=10s"`
	PongWait             time.Duration `env:"PONG_WAIT,default=60s"`
	TaskWorkers          int           `env:"TASK_WORKERS,default=4"`
	TaskBufferSize       int           `env:"TASK_BUFFER_SIZE,default=1024"`
	TaskTimeout          time.Duration `env:"TASK_TIMEOUT,default=30s"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	HealthInterval       time.Duration `env:"HEALTH_INTERVAL,default=15s"`
	JWTSecret            string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration    time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	ClientURL            string        `env:"CLIENT_URL"`
	DefaultPageSize      int           `env:"DEFAULT_PAGE_SIZE,default=20"`
}

// Validate rejects values the env tags cannot express.
func (c Config) Validate() error {
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters long")
	}
	if c.TaskWorkers < 1 {
		return fmt.Errorf("TASK_WORKERS must be positive, got %d", c.TaskWorkers)
	}
	if c.WriteTimeout <= 0 || c.PongWait <= 0 {
		return fmt.Errorf("WRITE_TIMEOUT and PONG_WAIT must be positive")
	}
	return nil
}

// AllowedOrigins lists the browser origins of the client application.
// CLIENT_URL may hold several comma separated origins. Empty means any.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.ClientURL, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
