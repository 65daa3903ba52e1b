package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/localnerve/boardsdb/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	mariadbImage    = "mariadb:11"
	mariadbDatabase = "boardsdb_test"
	mariadbUser     = "boardsdb"
	mariadbPassword = "boardsdb_test_pw"
)

// StartMariaDB launches a throwaway MariaDB container and returns it with
// a config pointed at its mapped port. The caller terminates the container.
func StartMariaDB(ctx context.Context) (testcontainers.Container, *config.Config, error) {
	dbPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db port: %w", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        mariadbImage,
			ExposedPorts: []string{string(dbPort)},
			Env: map[string]string{
				"MARIADB_ROOT_PASSWORD": "rootpass",
				"MARIADB_DATABASE":      mariadbDatabase,
				"MARIADB_USER":          mariadbUser,
				"MARIADB_PASSWORD":      mariadbPassword,
			},
			WaitingFor: wait.ForListeningPort(dbPort).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start mariadb: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, fmt.Errorf("failed to get container host: %w", err)
	}
	mappedPort, err := container.MappedPort(ctx, dbPort)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, fmt.Errorf("failed to get container port: %w", err)
	}

	cfg := &config.Config{
		DBType:            "mariadb",
		DBHost:            host,
		DBPort:            mappedPort.Port(),
		DBDatabase:        mariadbDatabase,
		DBUser:            mariadbUser,
		DBPassword:        mariadbPassword,
		DBConnectionLimit: 5,
		JWTSecret:         JWTSecret,
	}

	if err := waitForMariaDB(cfg); err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	return container, cfg, nil
}

// waitForMariaDB pings until the server accepts credentials; the listening
// port comes up before authentication does.
func waitForMariaDB(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBDatabase)

	var lastErr error
	for i := 0; i < 30; i++ {
		db, err := sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			_ = db.Close()
			if err == nil {
				return nil
			}
		}
		lastErr = err
		time.Sleep(time.Second)
	}
	return fmt.Errorf("mariadb never became ready: %w", lastErr)
}
