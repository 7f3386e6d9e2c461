// Package config loads runtime settings from an optional .workplan.yaml and
// WORKPLAN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/workplan/internal/clock"
	"github.com/alexanderramin/workplan/internal/llm"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix namespaces every environment override.
	EnvPrefix = "WORKPLAN"
	// FileName is the config file looked up in the working directory.
	FileName = ".workplan"
)

type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type LogConfig struct {
	Level string
}

type AuditConfig struct {
	// DBPath is the sqlite file for the reconciliation log. Empty disables it;
	// a leading ~ is expanded to the home directory.
	DBPath string
}

// Config is the fully resolved runtime configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	Audit  AuditConfig
	// Today pins the reference date (YYYY-MM-DD); empty uses the wall clock.
	Today string
	LLM   llm.LLMConfig
}

func setDefaults(v *viper.Viper) {
	llmDefaults := llm.DefaultConfig()

	v.SetDefault("server.addr", "127.0.0.1:8000")
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"https://workplanmvp.onrender.com",
	})
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("log.level", "info")
	v.SetDefault("audit.db_path", "")
	v.SetDefault("today", "")

	v.SetDefault("llm.enabled", llmDefaults.Enabled)
	v.SetDefault("llm.log_calls", llmDefaults.LogCalls)
	v.SetDefault("llm.provider", string(llmDefaults.Provider))
	v.SetDefault("llm.endpoint", llmDefaults.Endpoint)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", llmDefaults.Model)
	v.SetDefault("llm.timeout_ms", llmDefaults.TimeoutMs)
	v.SetDefault("llm.max_retries", llmDefaults.MaxRetries)
}

// Load resolves configuration. path names an explicit config file; when
// empty, .workplan.yaml is looked up in $WORKPLAN_CONFIG_PATH and the
// working directory, and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		if override := os.Getenv(EnvPrefix + "_CONFIG_PATH"); override != "" {
			v.AddConfigPath(override)
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Addr:           v.GetString("server.addr"),
			AllowedOrigins: splitList(v.GetStringSlice("server.allowed_origins")),
			ReadTimeout:    v.GetDuration("server.read_timeout"),
			WriteTimeout:   v.GetDuration("server.write_timeout"),
		},
		Log:   LogConfig{Level: v.GetString("log.level")},
		Today: v.GetString("today"),
	}

	dbPath, err := homedir.Expand(v.GetString("audit.db_path"))
	if err != nil {
		return nil, fmt.Errorf("audit.db_path: %w", err)
	}
	cfg.Audit.DBPath = dbPath

	cfg.LLM = llm.DefaultConfig()
	cfg.LLM.Enabled = v.GetBool("llm.enabled")
	cfg.LLM.LogCalls = v.GetBool("llm.log_calls")
	cfg.LLM.Provider = llm.Provider(strings.ToLower(v.GetString("llm.provider")))
	cfg.LLM.Endpoint = strings.TrimRight(v.GetString("llm.endpoint"), "/")
	cfg.LLM.APIKey = v.GetString("llm.api_key")
	cfg.LLM.Model = v.GetString("llm.model")
	cfg.LLM.TimeoutMs = v.GetInt("llm.timeout_ms")
	cfg.LLM.MaxRetries = v.GetInt("llm.max_retries")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that cannot be acted on.
func (c *Config) Validate() error {
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if _, err := c.Clock(); err != nil {
		return err
	}
	switch c.LLM.Provider {
	case llm.ProviderOllama, llm.ProviderOpenAI:
	default:
		return fmt.Errorf("llm.provider: unknown provider %q", c.LLM.Provider)
	}
	if c.LLM.TimeoutMs <= 0 {
		return fmt.Errorf("llm.timeout_ms must be positive, got %d", c.LLM.TimeoutMs)
	}
	if c.LLM.MaxRetries < 0 {
		return fmt.Errorf("llm.max_retries must not be negative, got %d", c.LLM.MaxRetries)
	}
	return nil
}

// Clock returns the clock implied by Today.
func (c *Config) Clock() (clock.Clock, error) {
	clk, err := clock.Pinned(c.Today)
	if err != nil {
		return nil, fmt.Errorf("today: %w", err)
	}
	return clk, nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// NewLogger builds a text logger on w at the configured level.
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// splitList accepts both YAML lists and comma-separated env values.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
