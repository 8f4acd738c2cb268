package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderFake   = "fake"

	defaultPort            = ":8081"
	defaultModel           = "gemini-2.0-flash"
	defaultAnalysisTimeout = 60 * time.Second
	defaultSessionCapacity = 1024
	defaultSessionTTL      = 2 * time.Hour
)

type Config struct {
	Port    string
	Env     string
	LLM     LLMConfig
	Session SessionConfig

	// Warnings collects recoverable problems found while loading, for the
	// caller to log once a logger exists.
	Warnings []string
}

type LLMConfig struct {
	Provider string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

type SessionConfig struct {
	Capacity int
	TTL      time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", defaultPort, "server port")
	flag.Parse()

	return fromEnv(*port, os.Getenv), nil
}

func fromEnv(port string, getenv func(string) string) *Config {
	if port == "" {
		port = defaultPort
	}
	if envPort := strings.TrimSpace(getenv("PORT")); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			port = envPort
		} else {
			port = ":" + envPort
		}
	}

	env := strings.TrimSpace(getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	cfg := &Config{Port: port, Env: env}
	cfg.LLM = cfg.loadLLM(getenv)
	cfg.Session = SessionConfig{
		Capacity: cfg.intOr(getenv, "SESSION_CAPACITY", defaultSessionCapacity),
		TTL:      cfg.durationOr(getenv, "SESSION_TTL", defaultSessionTTL),
	}
	return cfg
}

func (c *Config) loadLLM(getenv func(string) string) LLMConfig {
	provider := strings.ToLower(strings.TrimSpace(getenv("LLM_PROVIDER")))
	switch provider {
	case "":
		provider = ProviderGemini
	case ProviderGemini, ProviderFake:
	default:
		c.warnf("unknown LLM_PROVIDER %q, using %s", provider, ProviderGemini)
		provider = ProviderGemini
	}

	key := firstNonEmpty(strings.TrimSpace(getenv("GEMINI_API_KEY")), strings.TrimSpace(getenv("GOOGLE_API_KEY")))
	if provider == ProviderGemini && key == "" {
		c.warnf("GEMINI_API_KEY (or GOOGLE_API_KEY) is not set; analysis requests will fail")
	}

	return LLMConfig{
		Provider: provider,
		APIKey:   key,
		Model:    firstNonEmpty(strings.TrimSpace(getenv("GEMINI_MODEL")), defaultModel),
		Timeout:  c.durationOr(getenv, "ANALYSIS_TIMEOUT", defaultAnalysisTimeout),
	}
}

func (c *Config) intOr(getenv func(string) string, key string, def int) int {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		c.warnf("invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return v
}

func (c *Config) durationOr(getenv func(string) string, key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		c.warnf("invalid %s=%q, using %s", key, raw, def)
		return def
	}
	return v
}

func (c *Config) warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
