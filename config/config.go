package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/nbd-wtf/go-nostr"
	"gopkg.in/yaml.v3"

	"hotelmedia/internal/application/usecase"
	"hotelmedia/internal/infrastructure/broker"
	"hotelmedia/internal/infrastructure/database"
	"hotelmedia/internal/infrastructure/minio"
	"hotelmedia/internal/infrastructure/session"
	"hotelmedia/pkg/tracing"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                   `yaml:"environment"`
	Default         DefaultConfig            `yaml:"default"`
	MinIOClient     minio.ClientConfig       `yaml:"minio_client"`
	MinIOLister     minio.ListerConfig       `yaml:"minio_lister"`
	MinIOUploader   minio.UploaderConfig     `yaml:"minio_uploader"`
	MinIORemover    minio.RemoverConfig      `yaml:"minio_remover"`
	MediaManager    usecase.ManagerConfig    `yaml:"media_manager"`
	MediaUploader   usecase.CollectionConfig `yaml:"media_uploader"`
	DBConfig        database.Config          `yaml:"db_config"`
	BrokerConfig    broker.Config            `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig   `yaml:"publisher_config"`
	ReceiverConfig  broker.ReceiverConfig    `yaml:"receiver_config"`
	Session         session.Config           `yaml:"session"`
	Auth            AuthConfig               `yaml:"auth"`
	Logger          logger.Config            `yaml:"logger"`
	Tracing         tracing.Config           `yaml:"tracing"`
}

type DefaultConfig struct {
	Address       string `yaml:"address"`
	BodyLimit     string `yaml:"body_limit"`
	AuditConsumer string `yaml:"audit_consumer"`
}

type AuthConfig struct {
	JWTSecret    string
	AdminPubKeys []string `yaml:"admin_pub_keys"`
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
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.Auth.JWTSecret = os.Getenv("ADMIN_JWT_SECRET")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	switch {
	case c.Default.Address == "":
		return errors.New("default.address is required")
	case c.MinIOClient.Endpoint == "":
		return errors.New("minio_client.endpoint is required")
	case c.DBConfig.URI == "":
		return errors.New("DATABASE_URI is not set")
	case c.DBConfig.DBName == "":
		return errors.New("db_config.db_name is required")
	case c.BrokerConfig.URI == "":
		return errors.New("BROKER_URI is not set")
	case c.BrokerConfig.StreamName == "" || c.BrokerConfig.GroupName == "":
		return errors.New("redis_broker_config needs stream_name and group_name")
	case c.Auth.JWTSecret == "" && len(c.Auth.AdminPubKeys) == 0:
		return errors.New("no admin can sign in: set ADMIN_JWT_SECRET or auth.admin_pub_keys")
	case c.Tracing.Enabled && c.Tracing.Endpoint == "":
		return errors.New("tracing.endpoint is required when tracing is enabled")
	}

	for _, pk := range c.Auth.AdminPubKeys {
		if !nostr.IsValidPublicKey(pk) {
			return fmt.Errorf("auth.admin_pub_keys: %q is not a valid public key", pk)
		}
	}

	return nil
}
