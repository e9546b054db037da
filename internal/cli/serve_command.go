package cli

import (
	"context"
	"log/slog"

	"todo-api/internal/api"
	"todo-api/internal/config"
	"todo-api/internal/repository/sqlstore"
	"todo-api/internal/services"
)

// ServeCommand runs the HTTP API until its context is canceled
type ServeCommand struct {
	config *config.Config
	logger *slog.Logger
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(cfg *config.Config, logger *slog.Logger) *ServeCommand {
	return &ServeCommand{config: cfg, logger: logger}
}

// Execute opens the store and serves requests. Any failure to open the store
// is returned immediately.
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	c.logger.Info("opening task store",
		"driver", c.config.Database.Driver,
		"address", sqlstore.Address(c.config.Database.Driver, c.config.Database.DSN),
	)

	repo, err := config.CreateRepository(ctx, c.config)
	if err != nil {
		c.logger.Error("task store unavailable", "error", err)
		return err
	}
	defer repo.Close()

	svc := services.NewServiceContainer(repo, c.config, c.logger)
	handler := api.NewHandler(svc.TaskService, c.logger)
	return api.NewServer(c.config.Server, handler, c.logger).Run(ctx)
}
