package server

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/confeitaria/confeitaria/session"
)

const (
	defaultAddr            = ":8000"
	defaultSessionCookie   = "SESSIONID"
	defaultBindRetries     = 100
	defaultBindRetryDelay  = 100 * time.Millisecond
	defaultShutdownTimeout = 5 * time.Second
)

// Duration wraps time.Duration with human-readable YAML decoding, accepting
// either a duration string such as "100ms" or a bare integer nanosecond
// count.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}

	parsed, err := parseDuration(raw)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", raw, err)
	}

	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func parseDuration(raw string) (time.Duration, error) {
	if ns, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Duration(ns), nil
	}
	return time.ParseDuration(raw)
}

// Config configures the Server behaviour.
type Config struct {
	// Addr is the TCP address to listen on. Defaults to ":8000".
	Addr string `yaml:"addr"`

	// SessionCookie is the name of the cookie carrying the session
	// identifier. Defaults to "SESSIONID".
	SessionCookie string `yaml:"session_cookie"`

	// BindRetries is the number of bind attempts before Run gives up on
	// a transiently unavailable port. Defaults to 100.
	BindRetries int `yaml:"bind_retries"`

	// BindRetryDelay is the pause between bind attempts.
	// Defaults to 100ms.
	BindRetryDelay Duration `yaml:"bind_retry_delay"`

	// MaxConnections caps the number of simultaneously accepted
	// connections. Zero means no cap.
	MaxConnections int `yaml:"max_connections"`

	// ShutdownTimeout bounds how long Shutdown waits for in-flight
	// requests. Defaults to 5s.
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`

	// Sessions is the session store injected into the frontend. When
	// nil, a fresh in-memory store is used.
	Sessions *session.Store `yaml:"-"`

	// Logger receives server lifecycle and request failure logs. When
	// nil, slog.Default() is used.
	Logger *slog.Logger `yaml:"-"`
}

// withDefaults returns a copy of the config with zero fields filled in.
func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = defaultAddr
	}
	if c.SessionCookie == "" {
		c.SessionCookie = defaultSessionCookie
	}
	if c.BindRetries <= 0 {
		c.BindRetries = defaultBindRetries
	}
	if c.BindRetryDelay <= 0 {
		c.BindRetryDelay = Duration(defaultBindRetryDelay)
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = Duration(defaultShutdownTimeout)
	}
	if c.Sessions == nil {
		c.Sessions = session.NewStore()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// LoadConfig reads a YAML config file and applies CONFEITARIA_* environment
// variable overrides on top of it. A ".env" file in the working directory is
// loaded first, when present, so local overrides need no exported shell
// state. An empty path skips the file and uses environment values only.
//
// Recognized variables: CONFEITARIA_ADDR, CONFEITARIA_SESSION_COOKIE,
// CONFEITARIA_BIND_RETRIES, CONFEITARIA_BIND_RETRY_DELAY,
// CONFEITARIA_MAX_CONNECTIONS, CONFEITARIA_SHUTDOWN_TIMEOUT.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("CONFEITARIA_ADDR"); ok {
		c.Addr = v
	}
	if v, ok := os.LookupEnv("CONFEITARIA_SESSION_COOKIE"); ok {
		c.SessionCookie = v
	}

	if v, ok := os.LookupEnv("CONFEITARIA_BIND_RETRIES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: CONFEITARIA_BIND_RETRIES: %w", err)
		}
		c.BindRetries = n
	}
	if v, ok := os.LookupEnv("CONFEITARIA_MAX_CONNECTIONS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: CONFEITARIA_MAX_CONNECTIONS: %w", err)
		}
		c.MaxConnections = n
	}

	if v, ok := os.LookupEnv("CONFEITARIA_BIND_RETRY_DELAY"); ok {
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("config: CONFEITARIA_BIND_RETRY_DELAY: %w", err)
		}
		c.BindRetryDelay = Duration(d)
	}
	if v, ok := os.LookupEnv("CONFEITARIA_SHUTDOWN_TIMEOUT"); ok {
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("config: CONFEITARIA_SHUTDOWN_TIMEOUT: %w", err)
		}
		c.ShutdownTimeout = Duration(d)
	}

	return nil
}
