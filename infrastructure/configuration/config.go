package configuration

import (
	"errors"
	"fmt"
	"os"
	"time"

	"trending-ingest/infrastructure/logger"

	"github.com/spf13/viper"
)

const (
	StorageS3  = "s3"
	StorageGCS = "gcs"

	NotifyNone       = "none"
	NotifyPubsub     = "pubsub"
	NotifyServiceBus = "servicebus"
)

type Config struct {
	App      App      `mapstructure:"app"`
	YouTube  YouTube  `mapstructure:"youtube"`
	Trending Trending `mapstructure:"trending"`
	Storage  Storage  `mapstructure:"storage"`
	Notify   Notify   `mapstructure:"notify"`
	Logger   Logger   `mapstructure:"logger"`
}

type App struct {
	Port      int    `mapstructure:"port"`
	SecretKey string `mapstructure:"secretKey"`
}

type YouTube struct {
	APIKey         string        `mapstructure:"apiKey"`
	ClientID       string        `mapstructure:"clientId"`
	ClientSecret   string        `mapstructure:"clientSecret"`
	AccessToken    string        `mapstructure:"accessToken"`
	RefreshToken   string        `mapstructure:"refreshToken"`
	Endpoint       string        `mapstructure:"endpoint"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"`
}

// Trending holds the search parameters of one ingestion run
type Trending struct {
	Query      string `mapstructure:"query"`
	MaxResults int64  `mapstructure:"maxResults"`
	Source     string `mapstructure:"source"`
}

type Storage struct {
	Provider string        `mapstructure:"provider"`
	Bucket   string        `mapstructure:"bucket"`
	Prefix   string        `mapstructure:"prefix"`
	Timeout  time.Duration `mapstructure:"timeout"`
	S3       S3            `mapstructure:"s3"`
	GCS      GCS           `mapstructure:"gcs"`
}

type S3 struct {
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"accessKey"`
	SecretKey string `mapstructure:"secretKey"`
}

type GCS struct {
	CredentialsFile string `mapstructure:"credentialsFile"`
}

// Notify selects where archive events are published after a successful write
type Notify struct {
	Provider   string        `mapstructure:"provider"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Pubsub     Pubsub        `mapstructure:"pubsub"`
	ServiceBus ServiceBus    `mapstructure:"serviceBus"`
}

type Pubsub struct {
	ProjectID string `mapstructure:"projectId"`
	Topic     string `mapstructure:"topic"`
}

type ServiceBus struct {
	Namespace string `mapstructure:"namespace"`
	Queue     string `mapstructure:"queue"`
}

type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// envBindings maps config keys to environment variables, first match wins.
var envBindings = map[string][]string{
	"app.port":                    {"APP_PORT", "PORT"},
	"app.secretKey":               {"SECRET_KEY"},
	"youtube.apiKey":              {"YOUTUBE_API_KEY"},
	"youtube.clientId":            {"YOUTUBE_CLIENT_ID"},
	"youtube.clientSecret":        {"YOUTUBE_CLIENT_SECRET"},
	"youtube.accessToken":         {"YOUTUBE_ACCESS_TOKEN"},
	"youtube.refreshToken":        {"YOUTUBE_REFRESH_TOKEN"},
	"youtube.endpoint":            {"YOUTUBE_ENDPOINT"},
	"youtube.requestTimeout":      {"YOUTUBE_REQUEST_TIMEOUT"},
	"trending.query":              {"TRENDING_QUERY"},
	"trending.maxResults":         {"TRENDING_MAX_RESULTS"},
	"trending.source":             {"TRENDING_SOURCE"},
	"storage.provider":            {"STORAGE_PROVIDER"},
	"storage.bucket":              {"ARCHIVE_BUCKET"},
	"storage.prefix":              {"ARCHIVE_PREFIX"},
	"storage.timeout":             {"STORAGE_TIMEOUT"},
	"storage.s3.endpoint":         {"S3_ENDPOINT"},
	"storage.s3.region":           {"S3_REGION", "AWS_REGION"},
	"storage.s3.accessKey":        {"S3_ACCESS_KEY"},
	"storage.s3.secretKey":        {"S3_SECRET_KEY"},
	"storage.gcs.credentialsFile": {"GCS_CREDENTIALS_FILE"},
	"notify.provider":             {"NOTIFY_PROVIDER"},
	"notify.timeout":              {"NOTIFY_TIMEOUT"},
	"notify.pubsub.projectId":     {"PUBSUB_PROJECT_ID"},
	"notify.pubsub.topic":         {"PUBSUB_TOPIC"},
	"notify.serviceBus.namespace": {"SERVICEBUS_NAMESPACE"},
	"notify.serviceBus.queue":     {"SERVICEBUS_QUEUE"},
	"logger.level":                {"LOG_LEVEL"},
	"logger.format":               {"LOG_FORMAT"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", 10001)
	v.SetDefault("youtube.endpoint", "https://www.googleapis.com/")
	v.SetDefault("youtube.requestTimeout", 10*time.Second)
	v.SetDefault("trending.query", "Trending")
	v.SetDefault("trending.maxResults", 10)
	v.SetDefault("trending.source", "youtube_trending")
	v.SetDefault("storage.provider", StorageS3)
	v.SetDefault("storage.prefix", "raw-data")
	v.SetDefault("storage.timeout", 30*time.Second)
	v.SetDefault("storage.s3.endpoint", "https://s3.amazonaws.com")
	v.SetDefault("storage.s3.region", "us-east-1")
	v.SetDefault("notify.provider", NotifyNone)
	v.SetDefault("notify.timeout", 10*time.Second)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.format", "json")
}

// LoadConfig reads config[-ENV].json and environment overrides.
// A missing config file is not an error; everything can come from env.
func LoadConfig() (*Config, error) {
	name := getConfig()
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("../")
	v.AddConfigPath("../../")
	setDefaults(v)
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logger.GetLogger().WithField("config", name).Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
			return nil, fmt.Errorf("failed to read config %s: %w", name, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	resolveYouTube(&cfg.YouTube)

	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
	return &cfg, nil
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

// Validate reports every setting that prevents a run.
func (c *Config) Validate() error {
	var errs []error
	if c.YouTube.APIKey == "" && !c.YouTube.HasOAuth() {
		errs = append(errs, errors.New("youtube.apiKey (YOUTUBE_API_KEY) or youtube.refreshToken with youtube.clientId and youtube.clientSecret is required"))
	}
	if c.Trending.Query == "" {
		errs = append(errs, errors.New("trending.query must not be empty"))
	}
	if c.Trending.MaxResults < 1 || c.Trending.MaxResults > 50 {
		errs = append(errs, fmt.Errorf("trending.maxResults must be between 1 and 50, got %d", c.Trending.MaxResults))
	}
	if c.Storage.Bucket == "" {
		errs = append(errs, errors.New("storage.bucket (ARCHIVE_BUCKET) is required"))
	}
	switch c.Storage.Provider {
	case StorageS3, StorageGCS:
	default:
		errs = append(errs, fmt.Errorf("unknown storage.provider %q", c.Storage.Provider))
	}
	switch c.Notify.Provider {
	case "", NotifyNone:
	case NotifyPubsub:
		if c.Notify.Pubsub.ProjectID == "" || c.Notify.Pubsub.Topic == "" {
			errs = append(errs, errors.New("notify.pubsub.projectId and notify.pubsub.topic are required"))
		}
	case NotifyServiceBus:
		if c.Notify.ServiceBus.Namespace == "" || c.Notify.ServiceBus.Queue == "" {
			errs = append(errs, errors.New("notify.serviceBus.namespace and notify.serviceBus.queue are required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown notify.provider %q", c.Notify.Provider))
	}
	return errors.Join(errs...)
}
