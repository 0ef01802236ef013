package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"os"
	"strconv"
)

const (
	defaultRedisAddress = "localhost:6379"
	defaultUserAgent    = "weathercheck-service/1.0"
	defaultPort         = "80"
)

// Config is read once at startup and handed to the clients that need it.
type Config struct {
	GeocodingBaseUrl string
	ForecastBaseUrl  string
	RedisAddress     string
	DisableRedis     bool
	UserAgent        string
	Port             string
}

// Load reads an optional .env file and then the process environment.
// It returns an error if either provider base url is unset.
func Load() (*Config, error) {
	// a missing .env is fine, the variables may come from the environment
	_ = godotenv.Load()

	c := &Config{
		GeocodingBaseUrl: os.Getenv("geocoding_baseurl"),
		ForecastBaseUrl:  os.Getenv("forecast_baseurl"),
		RedisAddress:     getEnv("redis_address", defaultRedisAddress),
		UserAgent:        getEnv("user_agent", defaultUserAgent),
		Port:             getEnv("port", defaultPort),
	}

	disableRedis, err := strconv.ParseBool(os.Getenv("disable_redis"))
	if err == nil {
		c.DisableRedis = disableRedis
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.GeocodingBaseUrl == "" {
		return errors.New("missing geocoding_baseurl in environment")
	}
	if c.ForecastBaseUrl == "" {
		return errors.New("missing forecast_baseurl in environment")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%v", c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
