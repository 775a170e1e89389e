package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHTTPAddr           = ":8080"
	defaultSSHHost            = "0.0.0.0"
	defaultSSHPort            = 2222
	defaultHostKeyPath        = ".data/host_ed25519"
	defaultIdleTimeout        = 120 * time.Second
	defaultStorePath          = ".data/styles.json"
	defaultRateLimitPerMinute = 30
	defaultRateLimitBurst     = 10
)

// Config captures startup settings for the styleboard entrypoint.
type Config struct {
	HTTPAddr           string
	SSHHost            string
	SSHPort            int
	HostKeyPath        string
	IdleTimeout        time.Duration
	StorePath          string
	RateLimitPerMinute int
	RateLimitBurst     int
}

// LoadFromEnv loads runtime configuration from environment variables.
func LoadFromEnv() (Config, error) {
	httpAddr, err := readRequiredOrDefault("STYLEBOARD_HTTP_ADDR", defaultHTTPAddr)
	if err != nil {
		return Config{}, err
	}

	sshHost, err := readRequiredOrDefault("STYLEBOARD_SSH_HOST", defaultSSHHost)
	if err != nil {
		return Config{}, err
	}

	sshPort, err := readInt("STYLEBOARD_SSH_PORT", defaultSSHPort, 1, 65535)
	if err != nil {
		return Config{}, err
	}

	hostKeyPath, err := readRequiredOrDefault("STYLEBOARD_SSH_HOST_KEY_PATH", defaultHostKeyPath)
	if err != nil {
		return Config{}, err
	}
	cleanHostKeyPath := filepath.Clean(hostKeyPath)
	if cleanHostKeyPath == "." {
		return Config{}, fmt.Errorf("STYLEBOARD_SSH_HOST_KEY_PATH must not resolve to current directory")
	}

	idleTimeout, err := readDuration("STYLEBOARD_SSH_IDLE_TIMEOUT", defaultIdleTimeout)
	if err != nil {
		return Config{}, err
	}

	storePath, err := readRequiredOrDefault("STYLEBOARD_STORE_PATH", defaultStorePath)
	if err != nil {
		return Config{}, err
	}

	rateLimitPerMinute, err := readInt("STYLEBOARD_RATE_LIMIT_PER_MINUTE", defaultRateLimitPerMinute, 1, 10000)
	if err != nil {
		return Config{}, err
	}

	rateLimitBurst, err := readInt("STYLEBOARD_RATE_LIMIT_BURST", defaultRateLimitBurst, 1, 1000)
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPAddr:           httpAddr,
		SSHHost:            sshHost,
		SSHPort:            sshPort,
		HostKeyPath:        cleanHostKeyPath,
		IdleTimeout:        idleTimeout,
		StorePath:          filepath.Clean(storePath),
		RateLimitPerMinute: rateLimitPerMinute,
		RateLimitBurst:     rateLimitBurst,
	}, nil
}

func readRequiredOrDefault(key, fallback string) (string, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%s must not be empty", key)
	}

	return raw, nil
}

func readInt(key string, fallback, min, max int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if parsed < min || parsed > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}

	return parsed, nil
}

func readDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration: %w", key, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}
