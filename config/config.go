package config

import (
	"os"
	"strings"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultMaxImageSize       = 5 << 20
	defaultCartSessionTTL     = 24 * time.Hour
	defaultCartSweepInterval  = 10 * time.Minute
	defaultCartMaxSessions    = 100000
	defaultListingCacheTTL    = time.Minute
	defaultMessagingHost      = "wa.me"
	defaultCurrency           = "Rs"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for checkout QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub selects where moderation events are published
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Kafka *KafkaConfig `json:"kafka" yaml:"kafka"`

	// Redis backs the listing query cache; nil disables caching
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// ObjectStorage stores listing images; nil disables uploads
	ObjectStorage *ObjectStorageConfig `json:"objectStorage" yaml:"objectStorage"`

	Cart CartConfig `json:"cart" yaml:"cart"`

	Checkout CheckoutConfig `json:"checkout" yaml:"checkout"`

	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type GoogleOAuthConfig struct {
	// ClientID is the audience expected in Google ID tokens.
	ClientID string `json:"clientId" yaml:"clientId"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	PasswordMinLength int           `json:"passwordMinLength" yaml:"passwordMinLength"`
	AccessTokenTTL    time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL   time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines where moderation events go
type PubSubConfig struct {
	// Provider is one of "noop", "local", "google" or "kafka"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the notifier (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// KafkaConfig configures the kafka provider and the notifier consumer
type KafkaConfig struct {
	Brokers []string `json:"brokers" yaml:"brokers"`
	Topic   string   `json:"topic" yaml:"topic"`
	GroupID string   `json:"groupId" yaml:"groupId"`
}

type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	CacheTTL time.Duration `json:"cacheTTL" yaml:"cacheTTL"`
}

// ObjectStorageConfig points at an S3 compatible store (MinIO in development)
type ObjectStorageConfig struct {
	Endpoint  string `json:"endpoint" yaml:"endpoint"`
	AccessKey string `json:"accessKey" yaml:"accessKey"`
	SecretKey string `json:"secretKey" yaml:"secretKey"`
	Bucket    string `json:"bucket" yaml:"bucket"`
	UseSSL    bool   `json:"useSSL" yaml:"useSSL"`
	// PublicBaseURL prefixes object keys in returned URLs, e.g. https://cdn.example.com/product-images
	PublicBaseURL string `json:"publicBaseURL" yaml:"publicBaseURL"`
	MaxImageSize  int64  `json:"maxImageSize" yaml:"maxImageSize"`
}

// CartConfig bounds the lifetime and number of cart sessions
type CartConfig struct {
	SessionTTL    time.Duration `json:"sessionTTL" yaml:"sessionTTL"`
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
	MaxSessions   int           `json:"maxSessions" yaml:"maxSessions"`
}

// CheckoutConfig addresses the operator who receives order messages
type CheckoutConfig struct {
	MessagingHost string `json:"messagingHost" yaml:"messagingHost"`
	OperatorPhone string `json:"operatorPhone" yaml:"operatorPhone"`
	Currency      string `json:"currency" yaml:"currency"`
}

// WorkerConfig configures the notifier process
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// New reads config.yaml from the working directory or one of its
// config folders, then applies environment overrides and defaults.
func New() (*Config, error) {
	cfg, err := Load[Config]("config", ".", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.LookupEnv)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Cart.SessionTTL <= 0 {
		cfg.Cart.SessionTTL = defaultCartSessionTTL
	}
	if cfg.Cart.SweepInterval <= 0 {
		cfg.Cart.SweepInterval = defaultCartSweepInterval
	}
	if cfg.Cart.MaxSessions <= 0 {
		cfg.Cart.MaxSessions = defaultCartMaxSessions
	}
	if cfg.Checkout.MessagingHost == "" {
		cfg.Checkout.MessagingHost = defaultMessagingHost
	}
	if cfg.Checkout.Currency == "" {
		cfg.Checkout.Currency = defaultCurrency
	}
	if cfg.Redis != nil && cfg.Redis.CacheTTL <= 0 {
		cfg.Redis.CacheTTL = defaultListingCacheTTL
	}
	if cfg.ObjectStorage != nil && cfg.ObjectStorage.MaxImageSize <= 0 {
		cfg.ObjectStorage.MaxImageSize = defaultMaxImageSize
	}
}
