// Package app provides the application initialization and wiring.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
	"github.com/bnema/kestrel/pkg/bytesize"
	"github.com/bnema/kestrel/pkg/duration"
)

// Config holds the application configuration as read from kestrel.yaml and
// KESTREL_* environment variables.
type Config struct {
	Server struct {
		Addr           string   `mapstructure:"addr"`
		ServiceName    string   `mapstructure:"service_name"`
		DataDir        string   `mapstructure:"data_dir"`
		CORSOrigins    []string `mapstructure:"cors_origins"`
		TrustedProxies []string `mapstructure:"trusted_proxies"`
		AllowedCIDRs   []string `mapstructure:"allowed_cidrs"`
		TLS            struct {
			CertFile string `mapstructure:"cert_file"`
			KeyFile  string `mapstructure:"key_file"`
		} `mapstructure:"tls"`
	} `mapstructure:"server"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`

	Registry struct {
		MaxManifestSize string `mapstructure:"max_manifest_size"`
		MaxBlobSize     string `mapstructure:"max_blob_size"`
		MaxUploads      int    `mapstructure:"max_uploads"`
		UploadTTL       string `mapstructure:"upload_ttl"`
		JanitorInterval string `mapstructure:"janitor_interval"`
		HistoryLimit    int    `mapstructure:"history_limit"`
		GCGrace         string `mapstructure:"gc_grace"`
	} `mapstructure:"registry"`

	Proxy struct {
		Prefix         string                 `mapstructure:"prefix"`
		ConfigFile     string                 `mapstructure:"config_file"`
		RefreshTags    bool                   `mapstructure:"refresh_tags"`
		ProbeUpstreams bool                   `mapstructure:"probe_upstreams"`
		FetchTimeout   string                 `mapstructure:"fetch_timeout"`
		Registries     []domain.ProxyRegistry `mapstructure:"registries"`
	} `mapstructure:"proxy"`

	Validation struct {
		ConfigFile string   `mapstructure:"config_file"`
		Default    string   `mapstructure:"default"`
		Allow      []string `mapstructure:"allow"`
		Deny       []string `mapstructure:"deny"`
	} `mapstructure:"validation"`

	Auth struct {
		Enabled       bool `mapstructure:"enabled"`
		AnonymousRead bool `mapstructure:"anonymous_read"`
		Users         []struct {
			Username     string `mapstructure:"username"`
			PasswordHash string `mapstructure:"password_hash"`
		} `mapstructure:"users"`
	} `mapstructure:"auth"`

	API struct {
		RateLimit struct {
			Enabled   bool    `mapstructure:"enabled"`
			GlobalRPS float64 `mapstructure:"global_rps"`
			PerIPRPS  float64 `mapstructure:"per_ip_rps"`
			Burst     int     `mapstructure:"burst"`
		} `mapstructure:"rate_limit"`
	} `mapstructure:"api"`
}

// Settings is the validated, parsed form of Config. It is built once at
// startup and never mutated.
type Settings struct {
	Addr           string
	ServiceName    string
	DataDir        string
	TLSCertFile    string
	TLSKeyFile     string
	CORSOrigins    []string
	TrustedProxies []string
	AllowedCIDRs   []string

	MaxManifestSize int64
	MaxBlobSize     int64
	MaxUploads      int
	UploadTTL       time.Duration
	JanitorInterval time.Duration
	HistoryLimit    int
	GCGrace         time.Duration

	ProxyPrefix  string
	RefreshTags  bool
	FetchTimeout time.Duration
	Registries   domain.ProxyRegistries
	// ProbeUpstreams adds upstream reachability to the readiness checks.
	ProbeUpstreams bool

	// Policy is nil when image validation is not configured.
	Policy *domain.ValidationPolicy

	AuthEnabled   bool
	AnonymousRead bool
	Users         map[string]string

	RateLimitEnabled bool
	GlobalRPS        float64
	PerIPRPS         float64
	RateLimitBurst   int
}

// DefaultDataDir returns the default data directory path.
// Uses ~/.kestrel for user installations, /var/lib/kestrel as fallback.
func DefaultDataDir() string {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".kestrel")
	}
	return "/var/lib/kestrel"
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: kestrel.yaml
// Search paths (in order): /etc/kestrel, ~/.config/kestrel, current directory
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("kestrel")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/kestrel")
		v.AddConfigPath("$HOME/.config/kestrel")
		v.AddConfigPath(".")
	}
}

// LoadConfig reads and validates the configuration.
func LoadConfig(configPath string) (Config, Settings, error) {
	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return Config{}, Settings{}, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, Settings{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	settings, err := resolveSettings(cfg)
	if err != nil {
		return cfg, Settings{}, err
	}
	return cfg, settings, nil
}

// loadConfig loads configuration from file and sets defaults.
func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("server.addr", "0.0.0.0:8000")
	v.SetDefault("server.service_name", "kestrel.kube-public")
	v.SetDefault("server.data_dir", DefaultDataDir())
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
	v.SetDefault("registry.max_manifest_size", "4MB")
	v.SetDefault("registry.max_blob_size", "8GB")
	v.SetDefault("registry.max_uploads", 0)
	v.SetDefault("registry.upload_ttl", "1h")
	v.SetDefault("registry.janitor_interval", "5m")
	v.SetDefault("registry.history_limit", 0)
	v.SetDefault("registry.gc_grace", "1d")
	v.SetDefault("proxy.prefix", "f")
	v.SetDefault("proxy.refresh_tags", false)
	v.SetDefault("proxy.fetch_timeout", "10m")
	v.SetDefault("proxy.probe_upstreams", false)
	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.anonymous_read", false)
	v.SetDefault("api.rate_limit.enabled", false)
	v.SetDefault("api.rate_limit.global_rps", 500)
	v.SetDefault("api.rate_limit.per_ip_rps", 50)
	v.SetDefault("api.rate_limit.burst", 100)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("KESTREL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

// resolveSettings parses human-friendly values and loads the proxy and
// validation documents.
func resolveSettings(cfg Config) (Settings, error) {
	s := Settings{
		Addr:             cfg.Server.Addr,
		ServiceName:      cfg.Server.ServiceName,
		DataDir:          cfg.Server.DataDir,
		TLSCertFile:      cfg.Server.TLS.CertFile,
		TLSKeyFile:       cfg.Server.TLS.KeyFile,
		CORSOrigins:      cfg.Server.CORSOrigins,
		TrustedProxies:   cfg.Server.TrustedProxies,
		AllowedCIDRs:     cfg.Server.AllowedCIDRs,
		MaxUploads:       cfg.Registry.MaxUploads,
		HistoryLimit:     cfg.Registry.HistoryLimit,
		ProxyPrefix:      cfg.Proxy.Prefix,
		RefreshTags:      cfg.Proxy.RefreshTags,
		ProbeUpstreams:   cfg.Proxy.ProbeUpstreams,
		AuthEnabled:      cfg.Auth.Enabled,
		AnonymousRead:    cfg.Auth.AnonymousRead,
		RateLimitEnabled: cfg.API.RateLimit.Enabled,
		GlobalRPS:        cfg.API.RateLimit.GlobalRPS,
		PerIPRPS:         cfg.API.RateLimit.PerIPRPS,
		RateLimitBurst:   cfg.API.RateLimit.Burst,
	}
	if s.DataDir == "" {
		s.DataDir = DefaultDataDir()
	}

	var err error
	if s.MaxManifestSize, err = parseSize("registry.max_manifest_size", cfg.Registry.MaxManifestSize); err != nil {
		return Settings{}, err
	}
	if s.MaxBlobSize, err = parseSize("registry.max_blob_size", cfg.Registry.MaxBlobSize); err != nil {
		return Settings{}, err
	}
	if s.UploadTTL, err = parseDuration("registry.upload_ttl", cfg.Registry.UploadTTL, duration.Positive); err != nil {
		return Settings{}, err
	}
	if s.JanitorInterval, err = parseDuration("registry.janitor_interval", cfg.Registry.JanitorInterval, duration.Positive); err != nil {
		return Settings{}, err
	}
	if s.GCGrace, err = parseDuration("registry.gc_grace", cfg.Registry.GCGrace, duration.NonNegative); err != nil {
		return Settings{}, err
	}
	if s.FetchTimeout, err = parseDuration("proxy.fetch_timeout", cfg.Proxy.FetchTimeout, duration.NonNegative); err != nil {
		return Settings{}, err
	}

	if (s.TLSCertFile == "") != (s.TLSKeyFile == "") {
		return Settings{}, fmt.Errorf("%w: server.tls needs both cert_file and key_file", domain.ErrInvalidConfig)
	}

	if s.Registries, err = loadProxyRegistries(cfg.Proxy.ConfigFile, cfg.Proxy.Registries); err != nil {
		return Settings{}, err
	}
	if s.Policy, err = loadValidationPolicy(cfg.Validation.ConfigFile, cfg.Validation.Default, cfg.Validation.Allow, cfg.Validation.Deny); err != nil {
		return Settings{}, err
	}

	if s.AuthEnabled {
		s.Users = make(map[string]string, len(cfg.Auth.Users))
		for _, u := range cfg.Auth.Users {
			if u.Username == "" || u.PasswordHash == "" {
				return Settings{}, fmt.Errorf("%w: auth.users entries need username and password_hash", domain.ErrInvalidConfig)
			}
			s.Users[u.Username] = u.PasswordHash
		}
		if len(s.Users) == 0 {
			return Settings{}, fmt.Errorf("%w: auth is enabled but no users are configured", domain.ErrInvalidConfig)
		}
	}

	return s, nil
}

func parseSize(key, value string) (int64, error) {
	n, err := bytesize.ParseLimit(key, value)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return n, nil
}

func parseDuration(key, value string, bound duration.Bound) (time.Duration, error) {
	d, err := duration.ParseSetting(key, value, bound)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return d, nil
}

// initLogger initializes the logger, optionally with a rotating file.
func initLogger(cfg Config, dataDir string) (logging.Logger, func(), error) {
	logConfig := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}

	if cfg.Logging.File.Enabled {
		logPath := cfg.Logging.File.Path
		if logPath == "" {
			logPath = filepath.Join(dataDir, "logs", "kestrel.log")
		}

		log, cleanup, err := logging.NewWithFile(logConfig, logging.FileConfig{
			Enabled:    true,
			Path:       logPath,
			MaxSize:    cfg.Logging.File.MaxSize,
			MaxBackups: cfg.Logging.File.MaxBackups,
			MaxAge:     cfg.Logging.File.MaxAge,
			Compress:   true,
		})
		if err != nil {
			return logging.Default(), nil, fmt.Errorf("failed to create logger with file: %w", err)
		}
		return log, cleanup, nil
	}

	return logging.New(logConfig), nil, nil
}
