package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort      = 3000
	DefaultPublicDir = "public"
)

type Config struct {
	Port     int
	HTTPAddr string

	// Static assets are served from here for paths no API route claims.
	PublicDir string
}

// Load reads a .env file from the working directory, if one exists, and
// then builds the config from the environment.  Variables already set in
// the environment win over the file.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() Config {
	return WithPort(getenvPort("PORT", DefaultPort))
}

// WithPort builds a config listening on port.  Out-of-range ports fall back
// to DefaultPort.
func WithPort(port int) Config {
	if !ValidPort(port) {
		port = DefaultPort
	}
	return Config{
		Port:      port,
		HTTPAddr:  ":" + strconv.Itoa(port),
		PublicDir: DefaultPublicDir,
	}
}

func getenvPort(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || !ValidPort(n) {
		return def
	}
	return n
}

// ValidPort reports whether n is a usable TCP port.
func ValidPort(n int) bool {
	return n > 0 && n <= 65535
}
