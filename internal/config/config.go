package config

import "os"

// Config carries process configuration. All values come from the
// environment (a .env file is loaded in main when present).
type Config struct {
    Port       string
    FixtureDir string
}

func Load() Config {
    return Config{
        Port:       getEnv("PORT", "8080"),
        FixtureDir: os.Getenv("FIXTURE_DIR"),
    }
}

func getEnv(key, fallback string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return fallback
}
