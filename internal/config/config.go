package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DatabaseURL       string
	VoiceAgentAPIKey  string
	VoiceAgentID      string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
	StripeAPIKeyLive  string
	StripeAPIKeyTest  string
	CRMWebhookURL     string
	CRMWebhookToken   string
	Environment       string
}

func Load() (*Config, error) {
	// .env is optional; real deployments use environment variables
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8000"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		VoiceAgentAPIKey:  getEnv("VOICE_AGENT_API_KEY", ""),
		VoiceAgentID:      getEnv("VOICE_AGENT_ID", ""),
		TwilioAccountSID:  getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:   getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioPhoneNumber: getEnv("TWILIO_PHONE_NUMBER", ""),
		StripeAPIKeyLive:  getEnv("STRIPE_API_KEY_LIVE", ""),
		StripeAPIKeyTest:  getEnv("STRIPE_API_KEY_TEST", "sk_test"),
		CRMWebhookURL:     getEnv("CRM_WEBHOOK_URL", ""),
		CRMWebhookToken:   getEnv("CRM_WEBHOOK_TOKEN", ""),
		Environment:       getEnv("ENV", "development"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	required := map[string]string{
		"DATABASE_URL": c.DatabaseURL,
	}

	for name, value := range required {
		if value == "" {
			return fmt.Errorf("missing required environment variable: %s", name)
		}
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
