package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Study     StudyConfig     `mapstructure:"study"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// StudyConfig points the catalog loader at the image root and fixes the
// filename allowlist. An empty allowlist in the file falls back to the
// built-in two-entry default at the service layer.
type StudyConfig struct {
	RootDir       string   `mapstructure:"root_dir"`
	AllowedImages []string `mapstructure:"allowed_images"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("IMAGE_STUDY")
	v.AutomaticEnv()

	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("study.root_dir", "STUDY_ROOT_DIR")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("study.root_dir", "model_outputs")
	v.SetDefault("rate_limit.max_requests", 100000)
	v.SetDefault("rate_limit.window_minutes", 1)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Results land under the study root; create the directory up front so
	// the first export does not have to.
	resultsDir := filepath.Join(cfg.Study.RootDir, "results")
	if _, err := os.Stat(resultsDir); os.IsNotExist(err) {
		os.MkdirAll(resultsDir, 0755)
	}

	return &cfg, nil
}
