package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarasbuffet/CBF-BookingService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_GoogleBackend(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080

[calendar]
backend = "google"
credentials_file = "credentials.json"
calendar_id = "primary"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, BackendGoogle, cfg.Calendar.Backend)
	assert.Equal(t, "credentials.json", cfg.Calendar.CredentialsFile)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[calendar]
credentials_file = "credentials.json"
calendar_id = "primary"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, BackendGoogle, cfg.Calendar.Backend)
	assert.Equal(t, domain.DefaultMaxMainPerDay, cfg.Booking.MaxMainPerDay)
	assert.Equal(t, domain.DefaultMaxRentalPerDay, cfg.Booking.MaxRentalPerDay)
	assert.Equal(t, domain.DefaultEventDurationHours, cfg.Booking.DefaultDurationHours)
}

func TestLoad_PostgresBackend(t *testing.T) {
	path := writeConfig(t, `
[calendar]
backend = "postgres"

[database]
host = "db.internal"
port = 5433
user = "booking"
password = "secret"
dbname = "bookings"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, BackendPostgres, cfg.Calendar.Backend)
	assert.Equal(t,
		"host=db.internal port=5433 user=booking password=secret dbname=bookings sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown backend",
			content: `
[calendar]
backend = "redis"
`,
		},
		{
			name: "google without credentials",
			content: `
[calendar]
backend = "google"
calendar_id = "primary"
`,
		},
		{
			name: "google without calendar id",
			content: `
[calendar]
backend = "google"
credentials_file = "credentials.json"
`,
		},
		{
			name: "postgres without dbname",
			content: `
[calendar]
backend = "postgres"
`,
		},
		{
			name: "non-positive booking limit",
			content: `
[calendar]
credentials_file = "credentials.json"
calendar_id = "primary"

[booking]
max_main_per_day = 0
`,
		},
		{
			name: "default duration above limit",
			content: `
[calendar]
credentials_file = "credentials.json"
calendar_id = "primary"

[booking]
default_duration_hours = 24
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	assert.Error(t, err)
	assert.Nil(t, cfg)
}
