// Package config loads the immutable runtime configuration from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const defaultJWTSecret = "change-me-jwt-secret"

type MailConfig struct {
	SendGridAPIKey   string
	FromEmail        string
	FromName         string
	AdminNotifyEmail string
}

// Enabled reports whether outbound email goes through SendGrid.
func (m MailConfig) Enabled() bool {
	return m.SendGridAPIKey != "" && m.FromEmail != ""
}

type PaymentConfig struct {
	StripeSecretKey string
	WebhookSecret   string
	Currency        string
	LicensePrice    decimal.Decimal
	PremiumPrice    decimal.Decimal
	PremiumDiscount decimal.Decimal
}

type AdminConfig struct {
	Email    string
	Password string
}

// Config is built once at startup and only read afterwards.
type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string
	DBName      string
	JWTSecret   string
	JWTTTL      time.Duration
	CORSOrigins []string

	Mail    MailConfig
	Payment PaymentConfig
	Admin   AdminConfig
}

type envConfig struct {
	AppEnv      string        `env:"APP_ENV" env-default:"dev"`
	HTTPAddr    string        `env:"HTTP_ADDR" env-default:":8080"`
	DatabaseURL string        `env:"DATABASE_URL" env-required:"true"`
	DBName      string        `env:"DB_NAME"`
	JWTSecret   string        `env:"JWT_SECRET" env-default:"change-me-jwt-secret"`
	JWTTTL      time.Duration `env:"JWT_TTL" env-default:"168h"`
	CORSOrigins []string      `env:"CORS_ORIGINS" env-separator:"," env-default:"*"`

	SendGridAPIKey   string `env:"SENDGRID_API_KEY"`
	MailFromEmail    string `env:"MAIL_FROM_EMAIL"`
	MailFromName     string `env:"MAIL_FROM_NAME" env-default:"Academy"`
	AdminNotifyEmail string `env:"ADMIN_NOTIFY_EMAIL"`

	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
	PaymentCurrency     string `env:"PAYMENT_CURRENCY" env-default:"eur"`
	LicensePrice        string `env:"LICENSE_PRICE" env-default:"35.00"`
	PremiumPrice        string `env:"PREMIUM_PRICE" env-default:"9.99"`
	PremiumDiscount     string `env:"PREMIUM_DISCOUNT" env-default:"0.10"`

	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var raw envConfig
	if err := cleanenv.ReadEnv(&raw); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	cfg, err := fromEnv(raw)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv(raw envConfig) (*Config, error) {
	cfg := &Config{
		AppEnv:      strings.ToLower(strings.TrimSpace(raw.AppEnv)),
		HTTPAddr:    strings.TrimSpace(raw.HTTPAddr),
		DatabaseURL: strings.TrimSpace(raw.DatabaseURL),
		DBName:      strings.TrimSpace(raw.DBName),
		JWTSecret:   strings.TrimSpace(raw.JWTSecret),
		JWTTTL:      raw.JWTTTL,
		CORSOrigins: trimAll(raw.CORSOrigins),
		Mail: MailConfig{
			SendGridAPIKey:   strings.TrimSpace(raw.SendGridAPIKey),
			FromEmail:        strings.TrimSpace(raw.MailFromEmail),
			FromName:         strings.TrimSpace(raw.MailFromName),
			AdminNotifyEmail: strings.TrimSpace(raw.AdminNotifyEmail),
		},
		Payment: PaymentConfig{
			StripeSecretKey: strings.TrimSpace(raw.StripeSecretKey),
			WebhookSecret:   strings.TrimSpace(raw.StripeWebhookSecret),
			Currency:        strings.ToLower(strings.TrimSpace(raw.PaymentCurrency)),
		},
		Admin: AdminConfig{
			Email:    strings.ToLower(strings.TrimSpace(raw.AdminEmail)),
			Password: raw.AdminPassword,
		},
	}

	var err error
	if cfg.Payment.LicensePrice, err = parseAmount("LICENSE_PRICE", raw.LicensePrice); err != nil {
		return nil, err
	}
	if cfg.Payment.PremiumPrice, err = parseAmount("PREMIUM_PRICE", raw.PremiumPrice); err != nil {
		return nil, err
	}
	if cfg.Payment.PremiumDiscount, err = parseAmount("PREMIUM_DISCOUNT", raw.PremiumDiscount); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be > 0")
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL must not be empty")
	}
	if !c.Payment.LicensePrice.IsPositive() || !c.Payment.PremiumPrice.IsPositive() {
		return errors.New("LICENSE_PRICE and PREMIUM_PRICE must be > 0")
	}
	if c.Payment.PremiumDiscount.IsNegative() || c.Payment.PremiumDiscount.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return errors.New("PREMIUM_DISCOUNT must be in [0, 1)")
	}
	if len(c.CORSOrigins) == 0 {
		return errors.New("CORS_ORIGINS must not be empty")
	}

	if c.IsProdLike() {
		if c.JWTSecret == "" || c.JWTSecret == defaultJWTSecret {
			return errors.New("in prod/release JWT_SECRET must be set and not default")
		}
		if c.Payment.WebhookSecret == "" {
			return errors.New("in prod/release STRIPE_WEBHOOK_SECRET must be set")
		}
	}
	return nil
}

func (c *Config) IsProdLike() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}

// OriginAllowed reports whether origin is one of the configured CORS
// origins. A "*" entry allows any origin.
func (c *Config) OriginAllowed(origin string) bool {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if origin == "" {
		return false
	}
	for _, o := range c.CORSOrigins {
		if o == "*" || strings.TrimRight(o, "/") == origin {
			return true
		}
	}
	return false
}

// DatabaseDSN returns DATABASE_URL with DB_NAME substituted as the
// PostgreSQL database when set. SQLite DSNs are returned unchanged.
func (c *Config) DatabaseDSN() (string, error) {
	if c.DBName == "" || !isPostgres(c.DatabaseURL) {
		return c.DatabaseURL, nil
	}
	u, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return "", fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	u.Path = "/" + c.DBName
	return u.String(), nil
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func parseAmount(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
