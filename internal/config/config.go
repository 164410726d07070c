// internal/config/config.go
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime settings, sourced from an optional .env file and
// environment variables (environment wins).
type Config struct {
	APIPort        string
	LogLevel       string
	GinMode        string
	TrustedProxies string
	TLSEnable      bool
	TLSCertFile    string
	TLSKeyFile     string

	// LogDir is where the default log streams live.
	LogDir string
	// LogFiles overrides the stream registry as comma-separated "id:path"
	// pairs, e.g. "app:/var/log/app.log,notifications:/var/log/notif.log".
	// Empty means the defaults under LogDir.
	LogFiles string
}

// AppConfig is the loaded configuration, populated by LoadConfig.
var AppConfig Config

// LoadConfig reads settings from the given .env file (when non-empty) and
// the process environment. A missing explicit file is returned as
// viper.ConfigFileNotFoundError so callers can fall back to env-only
// operation.
func LoadConfig(envFile string) error {
	viper.SetDefault("API_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GIN_MODE", "release")
	viper.SetDefault("TRUSTED_PROXIES", "")
	viper.SetDefault("TLS_ENABLE", false)
	viper.SetDefault("TLS_CERT_FILE", "")
	viper.SetDefault("TLS_KEY_FILE", "")
	viper.SetDefault("LOG_DIR", "/var/log/plexnotify")
	viper.SetDefault("LOG_FILES", "")

	viper.AutomaticEnv()

	if envFile != "" {
		viper.SetConfigFile(envFile)
		viper.SetConfigType("env")
		if err := viper.ReadInConfig(); err != nil {
			return err
		}
	}

	AppConfig = Config{
		APIPort:        viper.GetString("API_PORT"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		GinMode:        viper.GetString("GIN_MODE"),
		TrustedProxies: viper.GetString("TRUSTED_PROXIES"),
		TLSEnable:      viper.GetBool("TLS_ENABLE"),
		TLSCertFile:    viper.GetString("TLS_CERT_FILE"),
		TLSKeyFile:     viper.GetString("TLS_KEY_FILE"),
		LogDir:         viper.GetString("LOG_DIR"),
		LogFiles:       viper.GetString("LOG_FILES"),
	}
	return nil
}

// LogRegistry returns the stream id → path mapping to serve. With no
// LOG_FILES override it exposes the notifier's two standard streams under
// LogDir.
func (c Config) LogRegistry() (map[string]string, error) {
	if strings.TrimSpace(c.LogFiles) == "" {
		return map[string]string{
			"app":           filepath.Join(c.LogDir, "app.log"),
			"notifications": filepath.Join(c.LogDir, "notifications.log"),
		}, nil
	}

	registry := make(map[string]string)
	for _, pair := range strings.Split(c.LogFiles, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		id, path, ok := strings.Cut(pair, ":")
		id = strings.TrimSpace(id)
		path = strings.TrimSpace(path)
		if !ok || id == "" || path == "" {
			return nil, fmt.Errorf("invalid LOG_FILES entry %q: expected id:path", pair)
		}
		if _, dup := registry[id]; dup {
			return nil, fmt.Errorf("duplicate LOG_FILES id %q", id)
		}
		registry[id] = path
	}
	if len(registry) == 0 {
		return nil, fmt.Errorf("LOG_FILES is set but contains no valid id:path entries")
	}
	return registry, nil
}
