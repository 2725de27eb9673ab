package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Constants for service configuration
const (
	EnvPrefix            = "DESKNOTIFY"
	DefaultEnvFile       = ".env"
	DefaultLogLevel      = "info"
	DefaultWatchInterval = 500 * time.Millisecond // Prevent notification flooding
	DefaultWatchBurst    = 1
)

// Config holds defaults applied to every notification and the watch
// service settings. Nil pointers mean "not configured".
type Config struct {
	AppName       string
	Icon          string
	Timeout       *int32
	Urgency       *int
	WatchInterval time.Duration
	WatchBurst    int
	LogLevel      string
}

// Load reads envFile into the process environment, if it exists, and then
// resolves DESKNOTIFY_* variables. Variables already set in the
// environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("error loading %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	for _, key := range []string{"appname", "icon", "timeout", "urgency", "watch_interval", "watch_burst", "log_level"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, err
		}
	}
	v.SetDefault("watch_interval", DefaultWatchInterval)
	v.SetDefault("watch_burst", DefaultWatchBurst)
	v.SetDefault("log_level", DefaultLogLevel)

	cfg := Config{
		AppName:       v.GetString("appname"),
		Icon:          v.GetString("icon"),
		WatchInterval: v.GetDuration("watch_interval"),
		WatchBurst:    v.GetInt("watch_burst"),
		LogLevel:      strings.ToLower(v.GetString("log_level")),
	}

	if raw := v.GetString("timeout"); raw != "" {
		t, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s_TIMEOUT %q: %w", EnvPrefix, raw, err)
		}
		timeout := int32(t)
		cfg.Timeout = &timeout
	}
	if raw := v.GetString("urgency"); raw != "" {
		u, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s_URGENCY %q: %w", EnvPrefix, raw, err)
		}
		cfg.Urgency = &u
	}

	return cfg, nil
}
