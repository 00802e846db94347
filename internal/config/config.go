package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	timex "github.com/ferdiebergado/gastos/internal/pkg/time"
)

type ServerOptions struct {
	URL             string         `json:"url,omitempty"`
	Port            int            `json:"port,omitempty"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty"`
}

type DBOptions struct {
	Driver          string         `json:"driver,omitempty"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`
}

type JWTOptions struct {
	Issuer string         `json:"issuer,omitempty"`
	TTL    timex.Duration `json:"ttl,omitempty"`
}

type EmailOptions struct {
	Templates   string         `json:"templates,omitempty"`
	Layout      string         `json:"layout,omitempty"`
	Sender      string         `json:"sender,omitempty"`
	FrontendURL string         `json:"frontend_url,omitempty"`
	ResetTTL    timex.Duration `json:"reset_ttl,omitempty"`
}

type TokenOptions struct {
	Length uint32 `json:"length,omitempty"`
}

type Argon2Options struct {
	Memory     uint32 `json:"memory,omitempty"`
	Iterations uint32 `json:"iterations,omitempty"`
	Threads    uint8  `json:"threads,omitempty"`
	SaltLength uint32 `json:"salt_length,omitempty"`
	KeyLength  uint32 `json:"key_length,omitempty"`
}

type Config struct {
	Server *ServerOptions `json:"server,omitempty"`
	DB     *DBOptions     `json:"db,omitempty"`
	JWT    *JWTOptions    `json:"jwt,omitempty"`
	Email  *EmailOptions  `json:"email,omitempty"`
	Token  *TokenOptions  `json:"token,omitempty"`
	Argon2 *Argon2Options `json:"argon2,omitempty"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("server", c.Server),
		slog.Any("db", c.DB),
		slog.Any("jwt", c.JWT),
		slog.Any("email", c.Email),
		slog.Any("token", c.Token),
		slog.Any("argon2", c.Argon2),
	)
}

func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := overrideWithEnv(cfg); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", "config_file", cfgFile)
	return cfg, nil
}

func parseCfgFile(cfgFile string) (*Config, error) {
	cfgFile = filepath.Clean(cfgFile)
	contents, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := json.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return &cfg, nil
}

func overrideWithEnv(cfg *Config) error {
	if url, ok := os.LookupEnv("URL"); ok {
		cfg.Server.URL = url
	}

	if portStr, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("parse PORT %q: %w", portStr, err)
		}
		cfg.Server.Port = port
	}

	if frontendURL, ok := os.LookupEnv("FRONTEND_URL"); ok {
		cfg.Email.FrontendURL = frontendURL
	}
	return nil
}
