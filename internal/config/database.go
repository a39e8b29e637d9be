package config

import (
	"fmt"
	"time"

	"questions-backend/internal/infrastructure/database"
)

// LoadDatabaseConfig reads pool tuning from the environment and returns
// the DBConfig for the connection provider.
func LoadDatabaseConfig(db DatabaseConfig) (*database.DBConfig, error) {
	maxConns, err := getEnvInt("DB_MAX_CONNS", 25)
	if err != nil {
		return nil, err
	}

	minConns, err := getEnvInt("DB_MIN_CONNS", 2)
	if err != nil {
		return nil, err
	}
	if minConns > maxConns {
		return nil, fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", minConns, maxConns)
	}

	maxRetries, err := getEnvInt("DB_MAX_RETRIES", 5)
	if err != nil {
		return nil, err
	}

	maxConnLifetime, err := getEnvDuration("DB_MAX_CONN_LIFETIME", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	maxConnIdleTime, err := getEnvDuration("DB_MAX_CONN_IDLE_TIME", time.Minute)
	if err != nil {
		return nil, err
	}

	healthCheckPeriod, err := getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute)
	if err != nil {
		return nil, err
	}

	retryDelay, err := getEnvDuration("DB_RETRY_DELAY", time.Second)
	if err != nil {
		return nil, err
	}

	connectTimeout, err := getEnvDuration("DB_CONNECT_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	monitorInterval, err := getEnvDuration("DB_MONITOR_INTERVAL", 30*time.Second)
	if err != nil {
		return nil, err
	}

	return &database.DBConfig{
		ConnString:        db.ConnectionString(),
		MaxConns:          int32(maxConns),
		MinConns:          int32(minConns),
		MaxConnLifetime:   maxConnLifetime,
		MaxConnIdleTime:   maxConnIdleTime,
		HealthCheckPeriod: healthCheckPeriod,
		MaxRetries:        maxRetries,
		RetryDelay:        retryDelay,
		ConnectTimeout:    connectTimeout,
		MonitorInterval:   monitorInterval,
	}, nil
}
