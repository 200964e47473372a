package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendPostgres = "postgres"
	BackendDynamoDB = "dynamodb"

	GatewayCash        = "cash"
	GatewayMercadoPago = "mercadopago"
)

// Config holds all configuration for the sticker admin service.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Supabase SupabaseConfig `yaml:"supabase"`
	Store    StoreConfig    `yaml:"store"`
	Redis    RedisConfig    `yaml:"redis"`
	Session  SessionConfig  `yaml:"session"`
	Payments PaymentsConfig `yaml:"payments"`
	Report   ReportConfig   `yaml:"report"`
	LogLevel string         `yaml:"log_level"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// SupabaseConfig points at the hosted auth provider. URL and AnonKey are the
// public values the browser client used; JWTSecret enables local token checks.
type SupabaseConfig struct {
	URL       string `yaml:"url"`
	AnonKey   string `yaml:"anon_key"`
	JWTSecret string `yaml:"jwt_secret"`
}

type StoreConfig struct {
	Backend        string `yaml:"backend"`
	DatabaseURL    string `yaml:"database_url"`
	AWSRegion      string `yaml:"aws_region"`
	DynamoEndpoint string `yaml:"dynamodb_endpoint"`
	ResidentsTable string `yaml:"residents_table"`
	ProductsTable  string `yaml:"products_table"`
	PurchasesTable string `yaml:"purchases_table"`
}

type RedisConfig struct {
	URL      string        `yaml:"url"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type SessionConfig struct {
	CookieName      string        `yaml:"cookie_name"`
	TTL             time.Duration `yaml:"ttl"`
	AuthInitTimeout time.Duration `yaml:"auth_init_timeout"`
	SecureCookie    bool          `yaml:"secure_cookie"`
}

type PaymentsConfig struct {
	Gateway                string `yaml:"gateway"`
	MercadoPagoAccessToken string `yaml:"mercadopago_access_token"`

	// Mock approves every card payment without calling the provider.
	Mock bool `yaml:"mock"`
}

// ReportConfig sets the calendar the transaction report buckets months in.
type ReportConfig struct {
	Timezone string `yaml:"timezone"`
}

// DefaultReportTimezone is where the association keeps its books.
const DefaultReportTimezone = "Asia/Manila"

// Location resolves Timezone. "Local" selects the host zone.
func (r ReportConfig) Location() (*time.Location, error) {
	tz := strings.TrimSpace(r.Timezone)
	if tz == "" {
		tz = DefaultReportTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("report timezone %q: %w", tz, err)
	}
	return loc, nil
}

// Load reads the YAML file at path, if any, and applies defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, err
			}
		}
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv loads .env (when present), the YAML file, then lets environment
// variables override file values.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

// AuthConfigured reports whether the hosted auth provider can be reached.
func (c *Config) AuthConfigured() bool {
	return strings.TrimSpace(c.Supabase.URL) != "" && strings.TrimSpace(c.Supabase.AnonKey) != ""
}

func (c *Config) applyEnv() {
	setString(&c.Supabase.URL, "SUPABASE_URL")
	setString(&c.Supabase.AnonKey, "SUPABASE_ANON_KEY")
	setString(&c.Supabase.JWTSecret, "SUPABASE_JWT_SECRET")
	setString(&c.Store.Backend, "STORE_BACKEND")
	setString(&c.Store.DatabaseURL, "DATABASE_URL")
	setString(&c.Store.AWSRegion, "AWS_REGION")
	setString(&c.Store.DynamoEndpoint, "DYNAMODB_ENDPOINT")
	setString(&c.Store.ResidentsTable, "RESIDENTS_TABLE")
	setString(&c.Store.ProductsTable, "PRODUCTS_TABLE")
	setString(&c.Store.PurchasesTable, "PURCHASES_TABLE")
	setString(&c.Redis.URL, "REDIS_URL")
	setDuration(&c.Redis.CacheTTL, "CACHE_TTL")
	setString(&c.Session.CookieName, "SESSION_COOKIE_NAME")
	setDuration(&c.Session.TTL, "SESSION_TTL")
	setDuration(&c.Session.AuthInitTimeout, "AUTH_INIT_TIMEOUT")
	setBool(&c.Session.SecureCookie, "SESSION_SECURE_COOKIE")
	setString(&c.Payments.Gateway, "PAYMENT_GATEWAY")
	setString(&c.Payments.MercadoPagoAccessToken, "MERCADOPAGO_ACCESS_TOKEN")
	setFlag(&c.Payments.Mock, "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK")
	setString(&c.Report.Timezone, "REPORT_TIMEZONE")
	setString(&c.LogLevel, "LOG_LEVEL")
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	if c.Store.Backend == "" {
		if c.Store.DatabaseURL != "" {
			c.Store.Backend = BackendPostgres
		} else {
			c.Store.Backend = BackendDynamoDB
		}
	}
	if c.Store.AWSRegion == "" {
		c.Store.AWSRegion = "us-east-1"
	}
	if c.Store.ResidentsTable == "" {
		c.Store.ResidentsTable = "residents"
	}
	if c.Store.ProductsTable == "" {
		c.Store.ProductsTable = "products"
	}
	if c.Store.PurchasesTable == "" {
		c.Store.PurchasesTable = "purchases"
	}
	if c.Redis.CacheTTL == 0 {
		c.Redis.CacheTTL = 5 * time.Minute
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "hoa_session"
	}
	if c.Session.TTL == 0 {
		c.Session.TTL = 7 * 24 * time.Hour
	}
	if c.Session.AuthInitTimeout == 0 {
		c.Session.AuthInitTimeout = 2 * time.Second
	}
	if strings.TrimSpace(c.Report.Timezone) == "" {
		c.Report.Timezone = DefaultReportTimezone
	}
	c.Payments.Gateway = strings.ToLower(strings.TrimSpace(c.Payments.Gateway))
	if c.Payments.Gateway == "" {
		c.Payments.Gateway = GatewayCash
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// setFlag turns dst on when any of keys holds a truthy word.
func setFlag(dst *bool, keys ...string) {
	for _, key := range keys {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			*dst = true
			return
		}
	}
}
