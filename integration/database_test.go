//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestEpiclogWithMySQL tests the epiclog CLI with a MySQL run store.
func TestEpiclogWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "epiclog",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/epiclog?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("EPICLOG_STORE_BACKEND", "mysql")
	_ = os.Setenv("EPICLOG_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("EPICLOG_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("EPICLOG_STORE_DB_CONNECT") }()

	runStoreRoundTrip(t)
}

// TestEpiclogWithPostgres tests the epiclog CLI with a PostgreSQL run store.
func TestEpiclogWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("EPICLOG_STORE_BACKEND", "postgresql")
	_ = os.Setenv("EPICLOG_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("EPICLOG_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("EPICLOG_STORE_DB_CONNECT") }()

	runStoreRoundTrip(t)
}

// runStoreRoundTrip exercises the run store against whatever backend the
// environment points at: clear, export a fixture day twice, check status.
func runStoreRoundTrip(t *testing.T) {
	dataDir := writeFixtureData(t)

	// Run epiclog runs clear
	err := runEpiclogCommand(t, "runs", "clear")
	require.NoError(t, err)

	// Run epiclog export (records a run and the detected growth)
	err = runEpiclogCommand(t, "export", "--date", fixtureDate, dataDir)
	require.NoError(t, err)

	// Run epiclog export with merged output
	err = runEpiclogCommand(t, "export", "--date", fixtureDate, "--write-method", "merged", dataDir)
	require.NoError(t, err)

	// Run epiclog runs status
	err = runEpiclogCommand(t, "runs", "status")
	require.NoError(t, err)
}
