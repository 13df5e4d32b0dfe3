package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvKeyPath(t *testing.T) {
	known := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "crimson"},
		},
		"objectStorage": map[string]any{"publicBaseURL": ""},
		"checkout":      map[string]any{"operatorPhone": ""},
		"secretKey":     map[string]any{"access": ""},
	}

	tests := map[string]string{
		"POSTGRES_SSLMODE":            "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME":    "postgres.master.userName",
		"OBJECTSTORAGE_PUBLICBASEURL": "objectStorage.publicBaseURL",
		"CHECKOUT_OPERATORPHONE":      "checkout.operatorPhone",
		"SECRETKEY_ACCESS":            "secretKey.access",
		"CHECKOUT_NEW_SETTING":        "checkout.new.setting",
		"KAFKA_BROKERS":               "kafka.brokers",
		"POSTGRES__MASTER__USERNAME":  "postgres.master.userName",
	}

	for envName, want := range tests {
		t.Run(envName, func(t *testing.T) {
			assert.Equal(t, want, envKeyPath(envName, known))
		})
	}
}

func TestReplicasFromEnv(t *testing.T) {
	vars := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		// index 2 has no port, so 3 is never read
		"POSTGRES_REPLICAS_2_HOST": "replica-c",
		"POSTGRES_REPLICAS_3_HOST": "replica-d",
		"POSTGRES_REPLICAS_3_PORT": "5434",
	}
	lookup := func(k string) (string, bool) {
		v, ok := vars[k]

		return v, ok
	}

	assert.Equal(t, []postgres.ConnectionConfig{
		{Host: "replica-a", Port: "5432", UserName: "reader"},
		{Host: "replica-b", Port: "5433"},
	}, replicasFromEnv(lookup))

	assert.Nil(t, replicasFromEnv(func(string) (string, bool) { return "", false }))
}

type sampleConfig struct {
	Service struct {
		DisplayName string
		Port        int
	}
	Timeouts struct {
		Read time.Duration
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yaml := "service:\n  displayName: crimson\n  port: 8080\ntimeouts:\n  read: 5s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte(yaml), 0o600))

	t.Setenv(configDirEnv, dir)
	t.Setenv("SERVICE_PORT", "9090")

	cfg, err := Load[sampleConfig]("app")

	require.NoError(t, err)
	assert.Equal(t, "crimson", cfg.Service.DisplayName)
	assert.Equal(t, 9090, cfg.Service.Port)
	assert.Equal(t, 5*time.Second, cfg.Timeouts.Read)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(configDirEnv, "")

	_, err := Load[sampleConfig]("absent", t.TempDir())

	assert.ErrorContains(t, err, "absent.yaml not found")
}
