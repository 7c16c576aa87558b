package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// HTTP_ADDR is the base URL of the REST and websocket surface, e.g. http://localhost:4000
	HTTPAddr string `envconfig:"HTTP_ADDR"`
	// GRPC_ADDR exposes the gRPC health service
	GRPCAddr string `envconfig:"GRPC_ADDR"`
	// JWT_SECRET must match the server's to mint the admin token
	JWTSecret string `envconfig:"JWT_SECRET"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
