package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	TMDB    TMDB    `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	KOBIS   KOBIS   `json:"kobis" yaml:"kobis" mapstructure:"kobis"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
	Manager Manager `json:"manager" yaml:"manager" mapstructure:"manager"`
}

type TMDB struct {
	Scheme      string        `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host        string        `json:"host" yaml:"host" mapstructure:"host"`
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

type KOBIS struct {
	Scheme      string        `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host        string        `json:"host" yaml:"host" mapstructure:"host"`
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"omitempty,gte=1,lte=65535"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Manager houses configuration related to the reconciliation pipeline
type Manager struct {
	Jobs Jobs `json:"jobs" yaml:"jobs" mapstructure:"jobs"`
	// Workers bounds the collector pool during reconciliation
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers" validate:"omitempty,gte=1"`
	// BatchSize is the writer chunk size
	BatchSize int `json:"batchSize" yaml:"batchSize" mapstructure:"batchSize" validate:"omitempty,gte=1"`
	// Region selects which watch provider region to keep
	Region string `json:"region" yaml:"region" mapstructure:"region"`
	// Language is the canonical locale for image selection
	Language string `json:"language" yaml:"language" mapstructure:"language"`
}

type Jobs struct {
	BoxOfficeIngest     time.Duration `json:"boxOfficeIngest" yaml:"boxOfficeIngest" mapstructure:"boxOfficeIngest"`
	CatalogRefresh      time.Duration `json:"catalogRefresh" yaml:"catalogRefresh" mapstructure:"catalogRefresh"`
	BoxOfficeReconcile  time.Duration `json:"boxOfficeReconcile" yaml:"boxOfficeReconcile" mapstructure:"boxOfficeReconcile"`
	JobScheduleInterval time.Duration `json:"jobScheduleInterval" yaml:"jobScheduleInterval" mapstructure:"jobScheduleInterval"`
	// CleanupPeriod is how long finished jobs are kept. -1 disables pruning.
	CleanupPeriod time.Duration `json:"cleanupPeriod" yaml:"cleanupPeriod" mapstructure:"cleanupPeriod"`
	MinJobsToKeep int           `json:"minJobsToKeep" yaml:"minJobsToKeep" mapstructure:"minJobsToKeep"`
	// CatalogRefreshAge marks catalog records older than this as stale
	CatalogRefreshAge time.Duration `json:"catalogRefreshAge" yaml:"catalogRefreshAge" mapstructure:"catalogRefreshAge"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	if err := cu.Unmarshal(&c); err != nil {
		return c, err
	}

	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	return c, err
}
