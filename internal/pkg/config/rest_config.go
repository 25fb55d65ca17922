package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig holds the configuration of the REST service
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	KeyGen   KeyGenSettings   `mapstructure:"key_gen"`
}

// Validate checks the REST configuration and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for RestConfig port: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.KeyGen.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig reads the YAML file at path, lets RSA_* environment variables override it
// (RSA_DATABASE_DSN overrides database.dsn) and validates the result.
// A missing file is not an error as long as the defaults and environment form a valid config.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	setRestDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("RSA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.max_size", DefaultLogMaxSizeMB)
	v.SetDefault("logger.max_backups", DefaultLogMaxBackups)
	v.SetDefault("logger.max_age", DefaultLogMaxAgeDays)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.name", "")
	v.SetDefault("key_gen.key_size", DefaultKeySize)
	v.SetDefault("key_gen.rounds", DefaultPrimalityRounds)
	v.SetDefault("key_gen.max_iterations", DefaultMaxIterations)
	v.SetDefault("key_gen.max_distinct_attempts", DefaultMaxDistinctAttempts)
	v.SetDefault("key_gen.seed", 0)
}
