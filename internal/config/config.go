package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "GREETER"
	defaultConfigFile = "greeter"
)

type (
	// Config represents the top level config.
	Config struct {
		HTTP    HTTPConfig    `mapstructure:"http"`
		Catalog CatalogConfig `mapstructure:"catalog"`
		Log     LogConfig     `mapstructure:"log"`
		Discord DiscordConfig `mapstructure:"discord"`
	}

	// HTTPConfig contains the config for the HTTP server.
	HTTPConfig struct {
		Addr            string        `mapstructure:"addr"`
		ServerName      string        `mapstructure:"server_name"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	}

	// CatalogConfig points at an optional message file extending the
	// embedded greeting catalog.
	CatalogConfig struct {
		File string `mapstructure:"file"`
	}

	LogConfig struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	}

	DiscordConfig struct {
		Token   string `mapstructure:"token"`
		GuildID string `mapstructure:"guild_id"`
	}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", "127.0.0.1:8080")
	v.SetDefault("http.server_name", "Go/gorilla-mux")
	v.SetDefault("http.shutdown_timeout", 5*time.Second)
	v.SetDefault("catalog.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("discord.token", "")
	v.SetDefault("discord.guild_id", "")
}

// Load reads .env (optional), then greeter.yaml from the working directory or
// etc/ (optional), then GREETER_* environment variables. Settings only one
// command needs are checked by that command (RequireHTTP, RequireDiscord), so a
// bad server address never stops a plain greeting.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	v := newViper()
	v.SetConfigName(defaultConfigFile)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("etc/")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	return decode(v)
}

// Default returns the built-in settings, ignoring files and environment.
func Default() *Config {
	cfg, err := decode(newViper())
	if err != nil {
		panic(fmt.Sprintf("config: defaults do not decode: %v", err))
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// RequireHTTP checks the settings only the HTTP server needs.
func (c *Config) RequireHTTP() error {
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return fmt.Errorf("config: http.addr is required and cannot be empty")
	}
	if _, _, err := net.SplitHostPort(c.HTTP.Addr); err != nil {
		return fmt.Errorf("config: invalid http.addr (%q): %w", c.HTTP.Addr, err)
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: http.shutdown_timeout must be positive")
	}
	return nil
}

// RequireDiscord checks the settings only the Discord bot needs.
func (c *Config) RequireDiscord() error {
	if strings.TrimSpace(c.Discord.Token) == "" {
		return fmt.Errorf("config: discord.token (GREETER_DISCORD_TOKEN) is required and cannot be empty")
	}

	for _, r := range c.Discord.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: discord.guild_id must be a Discord guild ID (digits only)")
		}
	}

	return nil
}
