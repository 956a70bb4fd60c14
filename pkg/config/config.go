package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "SAGIP"

type Config struct {
	Logger LoggerConfig `mapstructure:"logger"`
	Server ServerConfig `mapstructure:"server"`
	Engine EngineConfig `mapstructure:"engine"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

type LoggerConfig struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"`
	AddSource   bool   `mapstructure:"add_source"`
	ServiceName string `mapstructure:"service_name"`
	LogFile     string `mapstructure:"log_file"`
	MaxSize     int    `mapstructure:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
	Compress    bool   `mapstructure:"compress"`
}

type ServerConfig struct {
	ListenAddr     string        `mapstructure:"listen_addr"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	RateLimit      bool          `mapstructure:"rate_limit"`
	RatePerSecond  float64       `mapstructure:"rate_per_second"`
	RateBurst      int           `mapstructure:"rate_burst"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
}

type EngineConfig struct {
	HazardPenalty     float64 `mapstructure:"hazard_penalty"`
	ParallelThreshold int     `mapstructure:"parallel_threshold"`
	Workers           int     `mapstructure:"workers"`
}

type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Dir     string        `mapstructure:"dir"`
	TTL     time.Duration `mapstructure:"ttl"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "sagip")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)

	v.SetDefault("server.listen_addr", ":8000")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	v.SetDefault("server.rate_limit", false)
	v.SetDefault("server.rate_per_second", 20.0)
	v.SetDefault("server.rate_burst", 40)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.max_body_bytes", int64(16<<20))

	v.SetDefault("engine.hazard_penalty", 1000.0)
	v.SetDefault("engine.parallel_threshold", 200_000)
	v.SetDefault("engine.workers", runtime.NumCPU())

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.dir", "./sagip_cache")
	v.SetDefault("cache.ttl", 10*time.Minute)
}

// BindEnv makes every key overridable through SAGIP_<SECTION>_<KEY>.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// ReadFile reads cfgFile, or ./config.yaml when cfgFile is empty. A missing default
// file is not an error.
func ReadFile(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.ListenAddr == "" {
		return errors.New("server.listen_addr must be set")
	}
	if c.Server.RateLimit && (c.Server.RatePerSecond <= 0 || c.Server.RateBurst <= 0) {
		return errors.New("server.rate_per_second and server.rate_burst must be positive when rate limiting is on")
	}
	if c.Engine.HazardPenalty <= 0 {
		return errors.New("engine.hazard_penalty must be positive")
	}
	if c.Engine.Workers < 1 {
		return errors.New("engine.workers must be at least 1")
	}
	if c.Cache.Enabled && c.Cache.Dir == "" {
		return errors.New("cache.dir must be set when the cache is enabled")
	}
	return nil
}
