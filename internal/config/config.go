package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultWebhookURL is the order automation endpoint used when WEBHOOK_URL is unset.
const DefaultWebhookURL = "https://9e33eb09ac27.ngrok-free.app/start-orders"

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

type AppConfig struct {
	Env                Environment
	LogLevel           string
	RawBodyLog         bool
	HttpTimeoutSeconds int
}

type WebhookConfig struct {
	URL string
}

type SheetConfig struct {
	ID string
}

type ReceiverConfig struct {
	Port string
}

type Config struct {
	App      AppConfig
	Webhook  WebhookConfig
	Sheet    SheetConfig
	Receiver ReceiverConfig
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")
	env := parseEnvironment(appEnv)

	timeout := getEnvInt("APP_HTTP_TIMEOUT_SECONDS", 30)
	if timeout < 0 {
		return nil, fmt.Errorf("APP_HTTP_TIMEOUT_SECONDS must not be negative, got %d", timeout)
	}

	return &Config{
		App: AppConfig{
			Env:                env,
			LogLevel:           getLogLevel(env),
			RawBodyLog:         getEnvBool("APP_RAW_BODY_LOG", false),
			HttpTimeoutSeconds: timeout,
		},
		Webhook: WebhookConfig{
			URL: getEnv("WEBHOOK_URL", DefaultWebhookURL),
		},
		Sheet: SheetConfig{
			ID: getEnv("SHEET_ID", ""),
		},
		Receiver: ReceiverConfig{
			Port: getEnv("RECEIVER_PORT", "5000"),
		},
	}, nil
}

// Validate checks the settings needed to call the webhook. The sheet id is
// resolved per invocation and is not required here.
func (c *Config) Validate() error {
	if c.Webhook.URL == "" {
		return fmt.Errorf("WEBHOOK_URL is required")
	}

	u, err := url.Parse(c.Webhook.URL)
	if err != nil {
		return fmt.Errorf("WEBHOOK_URL is invalid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("WEBHOOK_URL must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("WEBHOOK_URL must include a host")
	}
	return nil
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("APP_LOG_LEVEL", "info")
	}

	return getEnv("APP_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value == "true" {
		return true
	}
	return defaultValue
}
