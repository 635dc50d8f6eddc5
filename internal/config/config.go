package config

import (
	"errors"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 80
)

type Config struct {
	Host string
	Port int

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration

	AccessLog bool
}

func Default() Config {
	return Config{
		Host:              DefaultHost,
		Port:              DefaultPort,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// FromEnv reads HEALTH_PORT and HEALTH_ACCESS_LOG on top of Default.
func FromEnv() (Config, error) {
	c := Default()

	port, err := portFromEnv()
	if err != nil {
		return Config{}, err
	}
	c.Port = port

	accessLog, err := boolFromEnv("HEALTH_ACCESS_LOG")
	if err != nil {
		return Config{}, err
	}
	c.AccessLog = accessLog
	return c, nil
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func portFromEnv() (int, error) {
	raw := strings.TrimSpace(getenvDefault("HEALTH_PORT", strconv.Itoa(DefaultPort)))
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("config: invalid HEALTH_PORT (expected integer 1-65535)")
	}
	if port < 1 || port > 65535 {
		return 0, errors.New("config: HEALTH_PORT out of range (expected 1-65535)")
	}
	return port, nil
}

func boolFromEnv(key string) (bool, error) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	switch raw {
	case "", "0", "false", "off", "no":
		return false, nil
	case "1", "true", "on", "yes":
		return true, nil
	default:
		return false, errors.New("config: invalid " + key + " (expected true|false)")
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
