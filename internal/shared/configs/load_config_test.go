package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `log:
  level: debug
api:
  url: https://api.example.org/statistics
api_keys:
  client: Skillfactory
  client_key: file-key
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_MinimalYAMLUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "config.yml", minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "https://api.example.org/statistics", cfg.API.URL)
	assert.Equal(t, 30, cfg.API.Timeout)
	assert.Equal(t, "Skillfactory", cfg.APIKeys.Client)
	assert.Equal(t, "file-key", cfg.APIKeys.ClientKey)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "./data", cfg.Storage.RootDir)
	assert.Equal(t, SinksConfig{}, cfg.Sinks)
	assert.Equal(t, RetryConfig{}, cfg.Retry)
	assert.Nil(t, cfg.DB)
	assert.Nil(t, cfg.Email)
	assert.Nil(t, cfg.Sheets)
}

func TestLoadConfig_FullJSON(t *testing.T) {
	content := `{
  "log": {"level": "info"},
  "api": {"url": "https://api.example.org/statistics", "timeout": 45},
  "api_keys": {"client": "Skillfactory", "client_key": "M2MGWS"},
  "retry": {"max_attempts": 5, "initial_interval": 1, "max_interval": 30, "multiplier": 3},
  "sinks": {"sheets": true, "table": true, "email": true, "archive": true},
  "db_config": {"driver": "postgres", "dbname": "stats", "user": "etl", "password": "secret", "host": "db.internal", "port": 6432, "sslmode": "require"},
  "email_config": {"smtp_server": "smtp.example.org", "port": 465, "sender_email": "etl@example.org", "email_password": "mail-secret", "recipient": "team@example.org"},
  "sheets": {"credentials_file": "creds.json", "spreadsheet_id": "1AbC", "worksheet": "Summary"},
  "storage": {"backend": "s3", "s3": {"endpoint": "http://localhost:9000", "bucket": "attempt-stats"}},
  "schedule": {"interval": 3600}
}`

	cfg, err := LoadConfig(writeConfig(t, "config.json", content))
	require.NoError(t, err)

	assert.Equal(t, 45, cfg.API.Timeout)
	assert.Equal(t, RetryConfig{MaxAttempts: 5, InitialInterval: 1, MaxInterval: 30, Multiplier: 3}, cfg.Retry)
	assert.Equal(t, SinksConfig{Sheets: true, Table: true, Email: true, Archive: true}, cfg.Sinks)
	assert.Equal(t, &DBConfig{Driver: "postgres", DBName: "stats", User: "etl", Password: "secret", Host: "db.internal", Port: 6432, SSLMode: "require"}, cfg.DB)
	assert.Equal(t, &EmailConfig{SMTPServer: "smtp.example.org", Port: 465, SenderEmail: "etl@example.org", EmailPassword: "mail-secret", Recipient: "team@example.org"}, cfg.Email)
	assert.Equal(t, &SheetsConfig{CredentialsFile: "creds.json", SpreadsheetID: "1AbC", Worksheet: "Summary"}, cfg.Sheets)
	assert.Equal(t, "s3", cfg.Storage.Backend)
	assert.Equal(t, "attempt-stats", cfg.Storage.S3.Bucket)
	assert.Equal(t, 3600, cfg.Schedule.Interval)
}

func TestLoadConfig_SecretsFromEnvironment(t *testing.T) {
	t.Setenv("ATTEMPT_STATS_API_KEYS_CLIENT_KEY", "env-key")
	t.Setenv("ATTEMPT_STATS_DB_CONFIG_PASSWORD", "env-db-password")

	content := minimalConfig + `sinks:
  table: true
db_config:
  driver: sqlite
  dbname: ./stats.db
`
	cfg, err := LoadConfig(writeConfig(t, "config.yml", content))
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKeys.ClientKey)
	require.NotNil(t, cfg.DB)
	assert.Equal(t, "env-db-password", cfg.DB.Password)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "config.json", `{"log": {"level": "info"`))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name: "missing credentials",
			content: `api:
  url: https://api.example.org/statistics
`,
			expected: []string{"api_keys.client (required)", "api_keys.client_key (required)"},
		},
		{
			name: "invalid url and retry",
			content: `api:
  url: not a url
api_keys:
  client: Skillfactory
  client_key: M2MGWS
retry:
  max_attempts: 20
`,
			expected: []string{"api.url (url)", "retry.max_attempts (max=10)"},
		},
		{
			name: "enabled sink without section",
			content: minimalConfig + `sinks:
  table: true
  sheets: true
`,
			expected: []string{"db_config (required)", "sheets (required)"},
		},
		{
			name: "invalid email section",
			content: minimalConfig + `sinks:
  email: true
email_config:
  smtp_server: smtp.example.org
  port: 465
  sender_email: not-an-email
  email_password: secret
`,
			expected: []string{"email_config.sender_email (email)", "email_config.recipient (required)"},
		},
		{
			name: "postgres without host",
			content: minimalConfig + `sinks:
  table: true
db_config:
  dbname: stats
  user: etl
`,
			expected: []string{"db_config.host (required)"},
		},
		{
			name: "s3 storage without bucket",
			content: minimalConfig + `storage:
  backend: s3
`,
			expected: []string{"storage.s3.bucket (required)"},
		},
		{
			name: "unknown storage backend",
			content: minimalConfig + `storage:
  backend: ftp
`,
			expected: []string{"storage.backend (oneof=file s3)"},
		},
		{
			name: "schedule too frequent",
			content: minimalConfig + `schedule:
  interval: 5
`,
			expected: []string{"schedule.interval (min=60)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, "config.yml", tt.content))
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
			for _, expected := range tt.expected {
				assert.Contains(t, err.Error(), expected)
			}
		})
	}
}

func TestLoadConfig_DisabledSinkSectionsAreNotValidated(t *testing.T) {
	content := minimalConfig + `email_config:
  smtp_server: smtp.example.org
`
	cfg, err := LoadConfig(writeConfig(t, "config.yml", content))
	require.NoError(t, err)
	require.NotNil(t, cfg.Email)
	assert.Equal(t, "smtp.example.org", cfg.Email.SMTPServer)
}
