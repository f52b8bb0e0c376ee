package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type AdminHTTP struct {
	Host string
	Port int
}

type App struct {
	Name  string
	Env   string
	HTTP  HTTP
	Admin AdminHTTP
}

type Log struct {
	Level string
	JSON  bool
}

type JWT struct {
	Secret             string
	Issuer             string
	AccessTokenTTLMin  int
	RefreshTokenTTLDay int
}

type Redis struct {
	Addr            string `mapstructure:"addr"`
	Password        string `mapstructure:"password"`
	DB              int    `mapstructure:"db"`
	ListCacheTTLSec int    `mapstructure:"list_cache_ttl_sec"`
}

type DB struct {
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type MinIO struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// Media 媒体文件的对外地址与存储位置
type Media struct {
	WebsiteURL string `mapstructure:"website_url"`
	URLPrefix  string `mapstructure:"url_prefix"`
	Driver     string `mapstructure:"driver"` // "local" | "minio"
	Root       string `mapstructure:"root"`
	MinIO      MinIO  `mapstructure:"minio"`
}

type CORS struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type Config struct {
	App   App
	Log   Log
	JWT   JWT
	DB    DB
	Redis Redis `mapstructure:"redis"`
	Media Media `mapstructure:"media"`
	CORS  CORS  `mapstructure:"cors"`
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	applyDefaults(&c)
	return &c
}

func applyDefaults(c *Config) {
	if c.JWT.AccessTokenTTLMin <= 0 {
		c.JWT.AccessTokenTTLMin = 60
	}
	if c.JWT.RefreshTokenTTLDay <= 0 {
		c.JWT.RefreshTokenTTLDay = 7
	}
	if c.Media.WebsiteURL == "" {
		c.Media.WebsiteURL = "http://localhost:8000"
	}
	if c.Media.URLPrefix == "" {
		c.Media.URLPrefix = "/media/"
	}
	if c.Media.Driver == "" {
		c.Media.Driver = "local"
	}
	if c.Media.Root == "" {
		c.Media.Root = "./media"
	}
	if c.Redis.ListCacheTTLSec <= 0 {
		c.Redis.ListCacheTTLSec = 10
	}
	if len(c.CORS.AllowOrigins) == 0 {
		c.CORS.AllowOrigins = []string{
			"http://127.0.0.1:8000",
			"http://127.0.0.1:3000",
		}
	}
}
