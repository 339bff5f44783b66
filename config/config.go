package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	IdentityProviderDatabase = "database"
	IdentityProviderCognito  = "cognito"
)

// AppConfig holds the application configuration
type AppConfig struct {
	Port              string   `mapstructure:"PORT"`
	Env               string   `mapstructure:"ENV"`
	DBURL             string   `mapstructure:"DB_URL"`
	DBAdminURL        string   `mapstructure:"DB_ADMIN_URL"`
	RedisAddress      string   `mapstructure:"REDIS_URL"`
	BearerToken       string   `mapstructure:"BEARER_TOKEN"`
	SymmetricKey      string   `mapstructure:"SYMMETRIC_KEY"`
	SMTPHost          string   `mapstructure:"SMTP_HOST"`
	SMTPPort          int      `mapstructure:"SMTP_PORT"`
	SMTPUser          string   `mapstructure:"SMTP_USER"`
	SMTPPass          string   `mapstructure:"SMTP_PASS"`
	MailFrom          string   `mapstructure:"MAIL_FROM"`
	CORSOrigins       []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS      float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst    int      `mapstructure:"RATE_LIMIT_BURST"`
	IdentityProvider  string   `mapstructure:"IDENTITY_PROVIDER"`
	CognitoUserPoolID string   `mapstructure:"COGNITO_USER_POOL_ID"`
}

var envKeys = []string{
	"PORT", "ENV", "DB_URL", "DB_ADMIN_URL", "REDIS_URL", "BEARER_TOKEN", "SYMMETRIC_KEY",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "MAIL_FROM", "CORS_ORIGINS",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "IDENTITY_PROVIDER", "COGNITO_USER_POOL_ID",
}

// Load reads the configuration from the environment, after loading an
// optional .env file from the working directory.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8930")
	v.SetDefault("ENV", "development")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("MAIL_FROM", "CareDesk <no-reply@caredesk.local>")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 15)
	v.SetDefault("RATE_LIMIT_BURST", 30)
	v.SetDefault("IDENTITY_PROVIDER", IdentityProviderDatabase)

	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// viper does not split env strings into slices on its own
	if origins := v.GetString("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if cfg.DBURL == "" {
		return nil, fmt.Errorf("missing DB_URL environment variable")
	}
	if cfg.DBAdminURL == "" {
		cfg.DBAdminURL = cfg.DBURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that can be checked without dialing anything.
func (c *AppConfig) Validate() error {
	switch c.IdentityProvider {
	case IdentityProviderDatabase:
	case IdentityProviderCognito:
		if c.CognitoUserPoolID == "" {
			return fmt.Errorf("COGNITO_USER_POOL_ID is required when IDENTITY_PROVIDER is %q", IdentityProviderCognito)
		}
	default:
		return fmt.Errorf("IDENTITY_PROVIDER must be %q or %q, got %q",
			IdentityProviderDatabase, IdentityProviderCognito, c.IdentityProvider)
	}

	if c.SymmetricKey != "" && len(c.SymmetricKey) != 32 {
		return fmt.Errorf("SYMMETRIC_KEY must be 32 bytes long, got %d", len(c.SymmetricKey))
	}
	return nil
}

func (c *AppConfig) IsDev() bool {
	return c.Env == "development"
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}

// EmailEnabled reports whether enough SMTP settings are present to send mail.
// Without them confirmation emails are skipped and nothing else changes.
func (c *AppConfig) EmailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPPass != ""
}

// TokensEnabled reports whether patient login tokens can be issued.
func (c *AppConfig) TokensEnabled() bool {
	return len(c.SymmetricKey) == 32
}
