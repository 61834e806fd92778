package configs

// Config holds all configuration for the application.
type Config struct {
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	API      APIConfig      `mapstructure:"api" validate:"required"`
	APIKeys  APIKeysConfig  `mapstructure:"api_keys" validate:"required"`
	Retry    RetryConfig    `mapstructure:"retry"`
	Sinks    SinksConfig    `mapstructure:"sinks"`
	Server   ServerConfig   `mapstructure:"server"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Storage  StorageConfig  `mapstructure:"storage"`

	// Sink sections are validated only when the matching sink is enabled.
	DB     *DBConfig     `mapstructure:"db_config" validate:"-"`
	Email  *EmailConfig  `mapstructure:"email_config" validate:"-"`
	Sheets *SheetsConfig `mapstructure:"sheets" validate:"-"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// APIConfig holds the statistics endpoint settings.
type APIConfig struct {
	URL     string `mapstructure:"url" validate:"required,url"`
	Timeout int    `mapstructure:"timeout" validate:"required,min=1"` // seconds, whole request
}

// APIKeysConfig holds the statistics API client credentials.
type APIKeysConfig struct {
	Client    string `mapstructure:"client" validate:"required"`
	ClientKey string `mapstructure:"client_key" validate:"required"`
}

// RetryConfig holds the fetch retry policy. Zero values fall back to defaults.
type RetryConfig struct {
	MaxAttempts     int     `mapstructure:"max_attempts" validate:"omitempty,min=1,max=10"`
	InitialInterval int     `mapstructure:"initial_interval" validate:"omitempty,min=1"` // seconds
	MaxInterval     int     `mapstructure:"max_interval" validate:"omitempty,min=1"`     // seconds
	Multiplier      float64 `mapstructure:"multiplier" validate:"omitempty,gte=1"`
}

// SinksConfig toggles the delivery targets.
type SinksConfig struct {
	Sheets  bool `mapstructure:"sheets"`
	Table   bool `mapstructure:"table"`
	Email   bool `mapstructure:"email"`
	Archive bool `mapstructure:"archive"` // raw batches go to Storage
}

// DBConfig holds the relational table connection settings.
type DBConfig struct {
	Driver   string `mapstructure:"driver" validate:"omitempty,oneof=postgres sqlite"`
	DBName   string `mapstructure:"dbname" validate:"required"`
	User     string `mapstructure:"user" validate:"required_unless=Driver sqlite"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host" validate:"required_unless=Driver sqlite"`
	Port     int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	SSLMode  string `mapstructure:"sslmode"`
}

// EmailConfig holds the SMTP relay settings.
type EmailConfig struct {
	SMTPServer    string `mapstructure:"smtp_server" validate:"required,hostname"`
	Port          int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	SenderEmail   string `mapstructure:"sender_email" validate:"required,email"`
	EmailPassword string `mapstructure:"email_password" validate:"required"`
	Recipient     string `mapstructure:"recipient" validate:"required,email"`
}

// SheetsConfig holds the spreadsheet target.
type SheetsConfig struct {
	CredentialsFile string `mapstructure:"credentials_file" validate:"required"`
	SpreadsheetID   string `mapstructure:"spreadsheet_id" validate:"required"`
	Worksheet       string `mapstructure:"worksheet" validate:"required"`
}

// StorageConfig holds the object storage behind the raw batch archive and batch reports.
type StorageConfig struct {
	Backend string   `mapstructure:"backend" validate:"required,oneof=file s3"`
	RootDir string   `mapstructure:"root_dir" validate:"required_if=Backend file"`
	S3      S3Config `mapstructure:"s3"`
}

// S3Config holds settings for an S3-compatible bucket.
type S3Config struct {
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// ServerConfig holds server-related configuration for serve mode.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"omitempty,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"omitempty,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"omitempty,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"omitempty,min=1"`        // seconds (keep-alive)
}

// ScheduleConfig enables periodic batch runs in serve mode.
type ScheduleConfig struct {
	Interval int `mapstructure:"interval" validate:"omitempty,min=60"` // seconds, 0 disables
}
