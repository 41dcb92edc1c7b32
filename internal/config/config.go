package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"weathertop/internal/models"
)

// EnvAPIKey is the environment variable holding the OpenWeatherMap key
const EnvAPIKey = "OPENWEATHER_API_KEY"

// DefaultCities seeds the saved-city list on first run
var DefaultCities = []string{
	"Bhubaneswar,OD,IN",
	"Bilaspur,CT,IN",
	"Delhi,DL,IN",
	"Kolkata,WB,IN",
	"Mumbai,MH,IN",
	"Chennai,TN,IN",
	"Bengaluru,KA,IN",
	"New York,US",
	"London,GB",
}

// Config holds dashboard settings. The API key always comes from the
// environment; everything else may come from an optional YAML file.
type Config struct {
	APIKey         string   `yaml:"-"`
	RefreshSeconds int      `yaml:"refresh_seconds"`
	DefaultUnit    string   `yaml:"default_unit"` // "celsius" or "fahrenheit"
	City           string   `yaml:"city"`
	Cities         []string `yaml:"cities"`
	DBPath         string   `yaml:"db_path"`
}

// Load reads the optional YAML config file and the environment. A missing
// API key is a startup configuration error, never a per-request one.
func Load(path string) (Config, error) {
	// .env is optional; real environment variables win either way
	_ = godotenv.Load()

	cfg := Config{
		RefreshSeconds: 60,
		DefaultUnit:    "celsius",
		Cities:         DefaultCities,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.APIKey = os.Getenv(EnvAPIKey)
	if cfg.APIKey == "" {
		return Config{}, fmt.Errorf("%s is not set; get a free key at openweathermap.org", EnvAPIKey)
	}

	if cfg.RefreshSeconds <= 0 {
		return Config{}, fmt.Errorf("refresh_seconds must be positive, got %d", cfg.RefreshSeconds)
	}
	if _, err := cfg.Unit(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// RefreshInterval returns the auto-refresh cadence
func (c Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshSeconds) * time.Second
}

// Unit parses the configured default temperature unit
func (c Config) Unit() (models.TemperatureUnit, error) {
	switch strings.ToLower(c.DefaultUnit) {
	case "", "celsius", "c":
		return models.Celsius, nil
	case "fahrenheit", "f":
		return models.Fahrenheit, nil
	}
	return models.Celsius, fmt.Errorf("unknown temperature unit %q", c.DefaultUnit)
}
