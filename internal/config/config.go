package config

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	API     API
	Storage Storage
	Log     Log
}

type API struct {
	// Addr is the base URL of the billed API. Empty leaves the client
	// unconfigured: every remote operation fails until it is set.
	Addr    string        `env:"API_ADDR" validate:"omitempty,url"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	// Offline swaps the HTTP client for the in-memory fake backend.
	Offline bool `env:"API_OFFLINE" envDefault:"false"`
}

type Storage struct {
	Path string `env:"STORAGE_PATH" envDefault:"billed.db" validate:"required"`
}

type Log struct {
	Level string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=panic fatal error warn info debug trace"`
}

// Validate checks the parsed values; invalid config is fatal at startup.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
