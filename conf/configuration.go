// Package conf holds the process-wide configuration, loaded once at startup
// from a .env file (when present) and MMDJ_* environment variables.
package conf

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type oracleOptions struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type playlistOptions struct {
	MaxLength      int
	FallbackLength int
	DefaultWeight  float64
}

type statsOptions struct {
	CacheTTL   time.Duration
	DefaultTop int
}

type configOptions struct {
	Address    string
	Port       int
	DbPath     string
	UploadsDir string
	LogLevel   string

	Oracle   oracleOptions
	Playlist playlistOptions
	Stats    statsOptions
}

// Server is the loaded configuration singleton, valid after Load.
var Server = &configOptions{}

// Load reads .env (ignored when absent), applies defaults, overlays the
// environment and populates Server.
func Load() error {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("mmdj")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var cfg configOptions
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unmarshal configuration: %w", err)
	}
	if cfg.Playlist.MaxLength < 1 {
		return fmt.Errorf("playlist.maxlength must be at least 1, got %d", cfg.Playlist.MaxLength)
	}
	if cfg.Playlist.DefaultWeight <= 0 || cfg.Playlist.DefaultWeight > 1 {
		return fmt.Errorf("playlist.defaultweight must be in (0, 1], got %v", cfg.Playlist.DefaultWeight)
	}
	*Server = cfg
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("address", "0.0.0.0")
	v.SetDefault("port", 5000)
	v.SetDefault("dbpath", "data/mmdj.db")
	v.SetDefault("uploadsdir", "uploads")
	v.SetDefault("loglevel", "info")

	v.SetDefault("oracle.baseurl", "https://api.openai.com/v1")
	v.SetDefault("oracle.apikey", "")
	v.SetDefault("oracle.model", "gpt-4o-mini")
	v.SetDefault("oracle.timeout", 20*time.Second)

	v.SetDefault("playlist.maxlength", 6)
	v.SetDefault("playlist.fallbacklength", 4)
	v.SetDefault("playlist.defaultweight", 1.0)

	v.SetDefault("stats.cachettl", time.Minute)
	v.SetDefault("stats.defaulttop", 10)
}
