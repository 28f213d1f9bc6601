package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "IMGLIDE"

type Config struct {
	BaseURL      string                `mapstructure:"baseURL"`
	Secure       SecureConfig          `mapstructure:"secure"`
	Source       SourceConfig          `mapstructure:"source"`
	Disks        map[string]DiskConfig `mapstructure:"disks" validate:"dive"`
	Cache        CacheConfig           `mapstructure:"cache"`
	Processor    ProcessorConfig       `mapstructure:"processor"`
	Server       ServerConfig          `mapstructure:"server"`
	Mongo        MongoConfig           `mapstructure:"mongo"`
	Invalidation InvalidationConfig    `mapstructure:"invalidation"`
	Log          LogConfig             `mapstructure:"log"`
}

type SecureConfig struct {
	UseSecureURLs bool   `mapstructure:"useSecureURLs"`
	Secret        string `mapstructure:"secret" validate:"required_if=UseSecureURLs true"`
}

type SourceConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// DiskConfig describes one whitelisted source disk.
type DiskConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=local minio http"`

	// local
	Path string `mapstructure:"path" validate:"required_if=Driver local"`

	// minio
	Endpoint  string `mapstructure:"endpoint" validate:"required_if=Driver minio"`
	AccessKey string `mapstructure:"accessKey"`
	SecretKey string `mapstructure:"secretKey"`
	Bucket    string `mapstructure:"bucket" validate:"required_if=Driver minio"`
	Location  string `mapstructure:"location"`
	UseSSL    bool   `mapstructure:"useSSL"`
	Prefix    string `mapstructure:"prefix"`

	// http
	URL string `mapstructure:"url" validate:"required_if=Driver http,omitempty,url"`
}

type CacheConfig struct {
	Path   string      `mapstructure:"path" validate:"required"`
	Driver string      `mapstructure:"driver" validate:"oneof=filesystem minio"`
	Minio  MinioConfig `mapstructure:"minio"`
}

type MinioConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"accessKey"`
	SecretKey string `mapstructure:"secretKey"`
	Bucket    string `mapstructure:"bucket"`
	Location  string `mapstructure:"location"`
	UseSSL    bool   `mapstructure:"useSSL"`
}

type ProcessorConfig struct {
	Driver       string        `mapstructure:"driver" validate:"oneof=native imaginary"`
	ImaginaryURL string        `mapstructure:"imaginaryURL" validate:"required_if=Driver imaginary,omitempty,url"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

type ServerConfig struct {
	Address        string        `mapstructure:"address" validate:"required"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout" validate:"gt=0"`
	AllowedOrigins []string      `mapstructure:"allowedOrigins"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri" validate:"omitempty,url"`
	Database string `mapstructure:"database"`
}

type InvalidationConfig struct {
	Token string `mapstructure:"token"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json console"`
}

// Load reads configuration from the given toml file (or ./imglide.toml when
// path is empty and the file exists) and IMGLIDE_* environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("imglide")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("could not read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("baseURL", "")
	v.SetDefault("secure.useSecureURLs", false)
	v.SetDefault("secure.secret", "")
	v.SetDefault("source.path", "./images")
	v.SetDefault("cache.path", "./cache")
	v.SetDefault("cache.driver", "filesystem")
	v.SetDefault("cache.minio.endpoint", "")
	v.SetDefault("cache.minio.accessKey", "")
	v.SetDefault("cache.minio.secretKey", "")
	v.SetDefault("cache.minio.bucket", "")
	v.SetDefault("cache.minio.location", "us-east-1")
	v.SetDefault("cache.minio.useSSL", false)
	v.SetDefault("processor.driver", "native")
	v.SetDefault("processor.imaginaryURL", "")
	v.SetDefault("processor.timeout", 2*time.Minute)
	v.SetDefault("server.address", ":80")
	v.SetDefault("server.requestTimeout", time.Minute)
	v.SetDefault("server.allowedOrigins", []string{"*"})
	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.database", "imglide")
	v.SetDefault("invalidation.token", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

func (cfg *Config) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	for name := range cfg.Disks {
		if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidDiskName, name)
		}
	}

	if cfg.Cache.Driver == "minio" && (cfg.Cache.Minio.Endpoint == "" || cfg.Cache.Minio.Bucket == "") {
		return ErrMinioCacheNotConfigured
	}

	return nil
}

// DiskNames returns the sorted disk whitelist.
func (cfg *Config) DiskNames() []string {
	names := make([]string, 0, len(cfg.Disks))
	for name := range cfg.Disks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	ErrInvalidDiskName         = errors.New("invalid disk name")
	ErrMinioCacheNotConfigured = errors.New("cache.minio.endpoint and cache.minio.bucket are required for minio cache driver")
)
