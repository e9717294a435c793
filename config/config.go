package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything read from the environment at startup.
type Config struct {
	ListenAddr string
	AdminToken string

	RateLimitMax    int
	RateLimitWindow time.Duration

	// RedisAddr empty means all Redis-backed components fall back to
	// their in-memory implementations.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	ActivityMax int
}

func Load() Config {
	return Config{
		ListenAddr:      getenvDefault("LISTEN_ADDR", ":8080"),
		AdminToken:      getenvDefault("ADMIN_TOKEN", "admin-token"),
		RateLimitMax:    getenvIntDefault("RATE_LIMIT_MAX", 15),
		RateLimitWindow: getenvDurationDefault("RATE_LIMIT_WINDOW", 60*time.Second),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getenvIntDefault("REDIS_DB", 0),
		ActivityMax:     getenvIntDefault("ACTIVITY_MAX", 10),
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvDurationDefault(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
