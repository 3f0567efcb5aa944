package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "tripzy"
password = "tripzy"
dbname = "bookings"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[catalog_service]
url = "http://localhost:8081"
timeout = 5

[aggregation]
page_size = 3
subject_lookup_timeout = 5

[logs]
file = "logs/app.log"
level = "info"

[metrics]
enabled = true
service_name = "tripzy-booking-service"
path = "/metrics"
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "http://localhost:8081", cfg.CatalogService.URL)
	assert.Equal(t, 3, cfg.Aggregation.PageSize)
	assert.Equal(t, 5, cfg.Aggregation.SubjectLookupTimeout)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadAppliesAggregationDefaults(t *testing.T) {
	content := `
[server]
http_port = 8080

[database]
host = "localhost"

[catalog_service]
url = "http://localhost:8081"
`
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)

	assert.Equal(t, DefaultPageSize, cfg.Aggregation.PageSize)
	assert.Equal(t, DefaultSubjectLookupTimeout, cfg.Aggregation.SubjectLookupTimeout)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing http port",
			content: `
[database]
host = "localhost"

[catalog_service]
url = "http://localhost:8081"
`,
		},
		{
			name: "missing database host",
			content: `
[server]
http_port = 8080

[catalog_service]
url = "http://localhost:8081"
`,
		},
		{
			name: "missing catalog service url",
			content: `
[server]
http_port = 8080

[database]
host = "localhost"
`,
		},
		{
			name: "metrics enabled without path",
			content: `
[server]
http_port = 8080

[database]
host = "localhost"

[catalog_service]
url = "http://localhost:8081"

[metrics]
enabled = true
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "u",
		Password: "p",
		DBName:   "bookings",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=bookings sslmode=disable", d.DSN())
}
