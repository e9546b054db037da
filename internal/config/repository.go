package config

import (
	"context"
	"fmt"

	"todo-api/internal/repository/sqlstore"
)

// CreateRepository opens the configured store. It fails if the store cannot be
// reached or its schema cannot be created.
func CreateRepository(ctx context.Context, config *Config) (*sqlstore.SQLRepository, error) {
	repo, err := sqlstore.Open(ctx, sqlstore.Options{
		Driver:       config.Database.Driver,
		DSN:          config.Database.DSN,
		QueryTimeout: config.GetQueryTimeout(),
		WriteTimeout: config.GetWriteTimeout(),
		MaxOpenConns: config.Database.MaxOpenConns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (*sqlstore.SQLRepository, error) {
	repo, err := sqlstore.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
