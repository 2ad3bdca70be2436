package utils

import (
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"
)

type Config struct {
	apiURL         string
	requestTimeout time.Duration

	location  *time.Location
	sessionDB string

	metricPort               string
	metricCollectionInterval time.Duration

	pollInterval     time.Duration
	discordAppToken  string
	discordChannelID string
}

func NewConfig() *Config {
	return &Config{
		apiURL: func() string {
			apiURL := os.Getenv("API_URL")
			if apiURL == "" {
				apiURL = "http://localhost:8000"
			}
			if _, err := url.ParseRequestURI(apiURL); err != nil {
				slog.Error("invalid API_URL", "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "API_URL", apiURL)
			return strings.TrimRight(apiURL, "/")
		}(),
		requestTimeout: durationEnv("REQUEST_TIMEOUT", 0),

		location: func() *time.Location {
			timezoneStr := os.Getenv("TIMEZONE")
			var loc *time.Location
			var err error
			switch timezoneStr {
			case "":
				slog.Debug("TIMEZONE is not set, using local timezone", "timezone", time.Local)
				loc = time.Local
			case "UTC":
				loc = time.UTC
			default:
				loc, err = time.LoadLocation(timezoneStr)
				if err != nil {
					slog.Error("invalid timezone", "timezone", timezoneStr, "error", err)
					os.Exit(1)
				}
			}
			slog.Debug("env", "TIMEZONE", timezoneStr)
			return loc
		}(),
		sessionDB: func() string {
			sessionDB := os.Getenv("SESSION_DB")
			if sessionDB == "" {
				sessionDB = "./session.db"
			}
			slog.Debug("env", "SESSION_DB", sessionDB)
			return sessionDB
		}(),

		metricPort: func() string {
			metricPort := os.Getenv("METRIC_PORT")
			slog.Debug("env", "METRIC_PORT", metricPort)
			return metricPort
		}(),
		metricCollectionInterval: durationEnv("METRIC_COLLECTION_INTERVAL", 10*time.Second),

		pollInterval: durationEnv("POLL_INTERVAL", 10*time.Second),
		discordAppToken: func() string {
			discordAppToken := os.Getenv("DISCORD_APP_TOKEN")
			if len(discordAppToken) > 3 {
				slog.Debug("env", "DISCORD_APP_TOKEN", discordAppToken[0:3]+"...")
			}
			return discordAppToken
		}(),
		discordChannelID: func() string {
			discordChannelID := os.Getenv("DISCORD_CHANNEL_ID")
			slog.Debug("env", "DISCORD_CHANNEL_ID", discordChannelID)
			return discordChannelID
		}(),
	}
}

// read a duration env, exit on a malformed value
func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	duration, err := time.ParseDuration(raw)
	if err != nil || duration < 0 {
		slog.Error("invalid "+key, "value", raw, "error", err)
		os.Exit(1)
	}
	slog.Debug("env", key, raw, "duration", duration)
	return duration
}

// Get API_URL env, default to http://localhost:8000
func (c *Config) GetAPIURL() string {
	return c.apiURL
}

// Get REQUEST_TIMEOUT env, 0 means no timeout
func (c *Config) GetRequestTimeout() time.Duration {
	return c.requestTimeout
}

// Get TIMEZONE env
func (c *Config) GetLocation() *time.Location {
	return c.location
}

// Get SESSION_DB env, default to ./session.db
func (c *Config) GetSessionDB() string {
	return c.sessionDB
}

// Get METRIC_PORT env, empty disables the /metrics listener
func (c *Config) GetMetricPort() string {
	return c.metricPort
}

// Get METRIC_COLLECTION_INTERVAL env, default to 10s
func (c *Config) GetMetricCollectionInterval() time.Duration {
	return c.metricCollectionInterval
}

// Get POLL_INTERVAL env, default to 10s
func (c *Config) GetPollInterval() time.Duration {
	return c.pollInterval
}

// Get DISCORD_APP_TOKEN env
func (c *Config) GetDiscordAppToken() string {
	return c.discordAppToken
}

// Get DISCORD_CHANNEL_ID env
func (c *Config) GetDiscordChannelID() string {
	return c.discordChannelID
}
