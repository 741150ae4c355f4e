package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME"     default:"hotel"`
		Timezone string `envconfig:"TIMEZONE"`
	} `envconfig:"APP"`

	Auth struct {
		HashPasswords bool `envconfig:"HASH_PASSWORDS"`
	} `envconfig:"AUTH"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"       default:"1"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"1"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			UserSequence   string `envconfig:"USER_SEQUENCE"   default:"users_userid_seq"`
			Host           string `envconfig:"HOST"            default:"localhost"`
			Port           string `envconfig:"PORT"            default:"5432"`
			Username       string `envconfig:"USER"`
			Password       string `envconfig:"PASSWORD"`
			Name           string `envconfig:"NAME"`
			SSLMode        string `envconfig:"SSL_MODE"        default:"disable"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Debug().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Debug().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Debug().Msg("Client configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Debug().Err(err).Msg("Configuration initialized without .env file")
		}
	}

	return &conf
}

// ApplyArgs overrides the database name, port and user with the client's positional arguments.
func (c *Config) ApplyArgs(dbName, port, user string) {
	c.DB.Postgres.Name = dbName
	c.DB.Postgres.Port = port
	c.DB.Postgres.Username = user
}
