package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	Model     ModelConfig
	Publisher PublisherConfig
}

type AppConfig struct {
	Port string
	Env  string
}

func (c AppConfig) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func (c AppConfig) IsProduction() bool {
	return c.Env == EnvProduction
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Migrate  bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TipTTL   time.Duration
}

type JWTConfig struct {
	Secret       string
	Expiry       time.Duration
	CookieSecure bool
}

type HTTPConfig struct {
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// ModelConfig selects where the heart-disease model comes from and how it is evaluated.
type ModelConfig struct {
	Backend    string // local | remote
	Source     string // file | s3
	Dir        string
	Topology   string
	Weights    string
	Cache      bool
	S3Bucket   string
	S3Prefix   string
	RemoteURL  string
	RemoteName string
}

type PublisherConfig struct {
	Driver       string // none | kafka | sqs
	KafkaBrokers []string
	KafkaTopic   string
	SQSQueueName string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	jwtExpiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY"))
	if err != nil {
		jwtExpiry = 3000 * time.Second
	}

	tipTTL, err := time.ParseDuration(viper.GetString("TIP_CACHE_TTL"))
	if err != nil {
		tipTTL = 5 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
			Migrate:  viper.GetBool("DB_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			TipTTL:   tipTTL,
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			Expiry:       jwtExpiry,
			CookieSecure: viper.GetBool("COOKIE_SECURE"),
		},
		HTTP: HTTPConfig{
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
			RateLimitRPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst: viper.GetInt("RATE_LIMIT_BURST"),
		},
		Model: ModelConfig{
			Backend:    viper.GetString("MODEL_BACKEND"),
			Source:     viper.GetString("MODEL_SOURCE"),
			Dir:        viper.GetString("MODEL_DIR"),
			Topology:   viper.GetString("MODEL_TOPOLOGY"),
			Weights:    viper.GetString("MODEL_WEIGHTS"),
			Cache:      viper.GetBool("MODEL_CACHE"),
			S3Bucket:   viper.GetString("MODEL_S3_BUCKET"),
			S3Prefix:   viper.GetString("MODEL_S3_PREFIX"),
			RemoteURL:  viper.GetString("MODEL_REMOTE_URL"),
			RemoteName: viper.GetString("MODEL_REMOTE_NAME"),
		},
		Publisher: PublisherConfig{
			Driver:       viper.GetString("ALERT_PUBLISHER"),
			KafkaBrokers: splitList(viper.GetString("KAFKA_BROKERS")),
			KafkaTopic:   viper.GetString("KAFKA_TOPIC"),
			SQSQueueName: viper.GetString("SQS_QUEUE_NAME"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "4000")
	viper.SetDefault("APP_ENV", EnvDevelopment)
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MIGRATE", true)
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT_RPS", 10)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("MODEL_BACKEND", "local")
	viper.SetDefault("MODEL_SOURCE", "file")
	viper.SetDefault("MODEL_DIR", "hd-model")
	viper.SetDefault("MODEL_TOPOLOGY", "heart-model.json")
	viper.SetDefault("MODEL_WEIGHTS", "hd-model.bin")
	viper.SetDefault("MODEL_CACHE", true)
	viper.SetDefault("MODEL_REMOTE_NAME", "heart-disease")
	viper.SetDefault("ALERT_PUBLISHER", "none")
	viper.SetDefault("KAFKA_TOPIC", "patient-alerts")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
