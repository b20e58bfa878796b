package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/postline/postline/internal/flagx"
	"github.com/postline/postline/internal/timex"
)

// JSONConfig is an intermediate DTO used only for reading JSON configuration
// files. timex.Duration accepts both string values such as "10s" and integer
// nanoseconds.
type JSONConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

func parseJSON(config *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JSONConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.ServerEndpointAddr = c.ServerEndpointAddr
	config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
}
