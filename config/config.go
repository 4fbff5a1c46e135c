package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"photovault/internal/infrastructure/broker"
	"photovault/internal/infrastructure/database"
	"photovault/internal/infrastructure/minio"
	"photovault/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Default         DefaultConfig          `yaml:"default"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIORemover    minio.RemoverConfig    `yaml:"minio_remover"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Upload          UploadConfig           `yaml:"upload"`
	Thumbnail       ThumbnailConfig        `yaml:"thumbnail"`
	Logger          logger.Config          `yaml:"logger"`
}

type DefaultConfig struct {
	Address string `yaml:"address"`
}

type UploadConfig struct {
	MaxSizeMB         int64 `yaml:"max_size_in_mb"`
	ParallelThreshold int   `yaml:"parallel_threshold"`
	Workers           int   `yaml:"workers"`
}

type ThumbnailConfig struct {
	DefaultSize int  `yaml:"default_size"`
	Quality     int  `yaml:"quality"`
	Prewarm     bool `yaml:"prewarm"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Upload.MaxSizeMB <= 0 {
		c.Upload.MaxSizeMB = 15
	}
	if c.Upload.ParallelThreshold <= 0 {
		c.Upload.ParallelThreshold = 2
	}
	if c.Upload.Workers <= 0 {
		c.Upload.Workers = 4
	}
	if c.Thumbnail.DefaultSize <= 0 {
		c.Thumbnail.DefaultSize = 200
	}
	if c.Thumbnail.Quality <= 0 || c.Thumbnail.Quality > 100 {
		c.Thumbnail.Quality = 80
	}

	return nil
}
