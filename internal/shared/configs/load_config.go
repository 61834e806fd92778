package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"attempt-stats/internal/shared/validators"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "ATTEMPT_STATS"

// secretEnvKeys are config keys that may be supplied (or overridden) from the
// environment, e.g. ATTEMPT_STATS_DB_CONFIG_PASSWORD.
var secretEnvKeys = []string{
	"api_keys.client",
	"api_keys.client_key",
	"db_config.password",
	"email_config.email_password",
	"storage.s3.access_key",
	"storage.s3.secret_key",
}

// LoadConfig reads configuration from file, applies environment overrides and validates it.
// The file type is taken from the extension (json, yaml, toml...).
var LoadConfig = func(configPath string) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range secretEnvKeys {
		envName := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envName); err != nil {
			return nil, fmt.Errorf("failed to bind env %q: %w", envName, err)
		}
	}
	setDefaults(v)

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("api.timeout", 30)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout", 5)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.root_dir", "./data")
}

// loadDotEnv loads a .env file from the working directory when one exists.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load .env file: %w", err)
}

func validate(cfg *Config) error {
	validate := validators.NewMapstructure()

	validationErrors := validateSection(validate, "", cfg)

	sections := []struct {
		enabled bool
		name    string
		value   any
		isNil   bool
	}{
		{cfg.Sinks.Table, "db_config", cfg.DB, cfg.DB == nil},
		{cfg.Sinks.Email, "email_config", cfg.Email, cfg.Email == nil},
		{cfg.Sinks.Sheets, "sheets", cfg.Sheets, cfg.Sheets == nil},
	}
	for _, section := range sections {
		if !section.enabled {
			continue
		}
		if section.isNil {
			validationErrors = append(validationErrors, fmt.Sprintf("%s (required)", section.name))
			continue
		}
		validationErrors = append(validationErrors, validateSection(validate, section.name, section.value)...)
	}

	if cfg.Storage.Backend == "s3" && cfg.Storage.S3.Bucket == "" {
		validationErrors = append(validationErrors, "storage.s3.bucket (required)")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}
	return nil
}

func validateSection(validate *validators.Validate, prefix string, section any) []string {
	err := validate.Struct(section)
	if err == nil {
		return nil
	}
	var validationErrors []string
	if ve, ok := err.(validators.ValidationErrors); ok {
		for _, e := range ve {
			validationErrors = append(validationErrors, formatValidationError(prefix, e))
		}
		return validationErrors
	}
	return []string{err.Error()}
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(prefix string, e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path from config keys (e.g., "Config.api_keys.client_key" -> "api_keys.client_key")
	if parts := strings.Split(e.Namespace(), "."); len(parts) >= 2 {
		field = strings.Join(parts[1:], ".")
	}
	if prefix != "" {
		field = prefix + "." + field
	}

	var msg string
	switch tag {
	case "required", "required_if", "required_unless":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
