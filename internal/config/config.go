package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultQueryLimit           = 30
	defaultResponseCacheSeconds = 300
	defaultAnalysisCacheTTL     = 24 * time.Hour
	defaultAnalyzeRateLimit     = 10
)

type Config struct {
	Environment   string `toml:"environment"`
	Host          string `toml:"host"`
	Port          int    `toml:"port"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	RunMigrations  bool   `toml:"run_migrations"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// health data endpoints, the response cache is sized from QueryLimit
	QueryLimit           int `toml:"query_limit"`
	ResponseCacheSeconds int `toml:"response_cache_seconds"`
	// analysis
	AIGatewayBaseURL       string        `toml:"ai_gateway_base_url"`
	AIGatewayID            string        `toml:"ai_gateway_id"`
	AIModel                string        `toml:"ai_model"`
	AIGatewayTimeout       time.Duration `toml:"ai_gateway_timeout"`
	AnalysisCacheTTL       time.Duration `toml:"analysis_cache_ttl"`
	AnalyzeRateLimitPerMin int           `toml:"analyze_rate_limit_per_min"`
	// dashboard client
	APIBaseURL string `toml:"api_base_url"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not found", env)
	}

	cfg.setDefaults()
	return cfg, nil
}

// Load reads the TOML config file from path and returns the config of the given env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) setDefaults() {
	if c.QueryLimit <= 0 {
		c.QueryLimit = defaultQueryLimit
	}
	if c.ResponseCacheSeconds <= 0 {
		c.ResponseCacheSeconds = defaultResponseCacheSeconds
	}
	if c.AnalysisCacheTTL <= 0 {
		c.AnalysisCacheTTL = defaultAnalysisCacheTTL
	}
	if c.AnalyzeRateLimitPerMin <= 0 {
		c.AnalyzeRateLimitPerMin = defaultAnalyzeRateLimit
	}
	if c.AIModel == "" {
		c.AIModel = "@cf/meta/llama-3.3-70b-instruct-fp8-fast"
	}
	if c.AIGatewayBaseURL == "" {
		c.AIGatewayBaseURL = "https://gateway.ai.cloudflare.com/v1"
	}
}

// GatewayURL is the full URL of the analysis model behind the AI gateway.
func (c *Config) GatewayURL() string {
	return fmt.Sprintf(
		"%s/%s/health-analysis/workers-ai/%s",
		strings.TrimSuffix(c.AIGatewayBaseURL, "/"), c.AIGatewayID, c.AIModel,
	)
}
