package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spf13/viper"
)

var (
	// appConfig holds *Config for lock-free reads; configMu serializes writers.
	appConfig atomic.Value
	configMu  sync.Mutex
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	SMTP       SMTPConfig       `mapstructure:"smtp"`
	Cloudinary CloudinaryConfig `mapstructure:"cloudinary"`
	Redis      RedisConfig      `mapstructure:"redis"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      bool   `mapstructure:"ssl"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	Algorithm        string `mapstructure:"algorithm"` // HS256 or HS512 only
	AccessTTLMinutes int    `mapstructure:"access_ttl_minutes"`
	RefreshTTLHours  int    `mapstructure:"refresh_ttl_hours"`
	EmailTTLHours    int    `mapstructure:"email_ttl_hours"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	SSL      bool   `mapstructure:"ssl"`
}

type CloudinaryConfig struct {
	Name      string `mapstructure:"name"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type RateLimitConfig struct {
	AuthRPS   float64 `mapstructure:"auth_rps"`
	AuthBurst int     `mapstructure:"auth_burst"`
}

// Get returns a snapshot of the current configuration.
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	if err := loadAndStore(v); err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	enforceSecretSafety()
	log.Println("configuration loaded")
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	configDir := strings.TrimSpace(customConfigDir)
	if configDir == "" {
		configDir = "config"
	}

	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080/")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/imagehub.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "imagehub")
	v.SetDefault("database.ssl", false)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.algorithm", "HS256")
	v.SetDefault("jwt.access_ttl_minutes", 15)
	v.SetDefault("jwt.refresh_ttl_hours", 168)
	v.SetDefault("jwt.email_ttl_hours", 24)
	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "")
	v.SetDefault("smtp.ssl", false)
	v.SetDefault("cloudinary.name", "")
	v.SetDefault("cloudinary.api_key", "")
	v.SetDefault("cloudinary.api_secret", "")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "imagehub")
	v.SetDefault("rate_limit.auth_rps", 5)
	v.SetDefault("rate_limit.auth_burst", 10)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("no config file found, using environment variables and defaults")
		} else {
			log.Fatalf("failed to read config file: %v", err)
		}
	}

	// Environment override: server.port -> IMAGEHUB_SERVER_PORT
	v.SetEnvPrefix("IMAGEHUB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

func loadAndStore(v *viper.Viper) error {
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		return err
	}

	if err := ValidateAlgorithm(tempConfig.JWT.Algorithm); err != nil {
		return err
	}

	if tempConfig.Server.Mode != "release" && tempConfig.JWT.Secret == "" {
		log.Println("warning: no JWT secret set, using an insecure development default")
		tempConfig.JWT.Secret = "imagehub_secret"
	}

	appConfig.Store(&tempConfig)
	return nil
}

// ValidateAlgorithm restricts token signing to the two supported HMAC variants.
func ValidateAlgorithm(alg string) error {
	switch alg {
	case "HS256", "HS512":
		return nil
	default:
		return errors.New("jwt.algorithm must be HS256 or HS512")
	}
}

func enforceSecretSafety() {
	curr := Get()
	if curr.Server.Mode == "release" {
		if curr.JWT.Secret == "" || curr.JWT.Secret == "imagehub_secret" {
			log.Fatal("a secure JWT secret is required in release mode; set IMAGEHUB_JWT_SECRET or jwt.secret")
		}
	}
}

// StoreForTest atomically replaces the configuration. Test helper.
func StoreForTest(c Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig.Store(&c)
}
