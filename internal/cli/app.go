package cli

import (
	"context"
	"io"
	"strconv"

	"todo-api/internal/domain"
	"todo-api/internal/errors"
)

// TaskAPI is the remote task API the commands operate on
type TaskAPI interface {
	GetTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	AddTask(ctx context.Context, name string) (*domain.Task, error)
	SetCompleted(ctx context.Context, id int64, isComplete bool) error
	RenameTask(ctx context.Context, id int64, name string) error
	DeleteTask(ctx context.Context, id int64) error
}

// App represents the main CLI application
type App struct {
	api      TaskAPI
	out      io.Writer
	registry *CommandRegistry
}

// NewAppWithOutput creates a new CLI application writing to out
func NewAppWithOutput(api TaskAPI, out io.Writer) *App {
	app := &App{
		api: api,
		out: out,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// parseTaskID parses a task id argument
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError("id", arg, "must be a positive integer")
	}
	return id, nil
}
