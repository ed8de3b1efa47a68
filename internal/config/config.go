package config

import (
	"os"
	"strconv"
)

// Config holds the startup settings surface: master volume, scale name,
// effect sends, and an optional RNG seed for reproducible sessions.
type Config struct {
	Volume float64
	Scale  string
	Reverb float64
	Delay  float64
	Seed   uint64
}

func Load() *Config {
	return &Config{
		Volume: getEnvFloat("KEYB_VOLUME", 0.7),
		Scale:  getEnv("KEYB_SCALE", "major"),
		Reverb: getEnvFloat("KEYB_REVERB", 0.2),
		Delay:  getEnvFloat("KEYB_DELAY", 0.15),
		Seed:   getEnvUint("KEYB_SEED", 0),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			return v
		}
	}
	return defaultValue
}
