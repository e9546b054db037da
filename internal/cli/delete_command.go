package cli

import (
	"context"
	"fmt"
	"io"

	"todo-api/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	api TaskAPI
	out io.Writer
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{api: app.api, out: app.out}
}

// Execute deletes every task id given as an argument, stopping at the first failure
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("args", args, "expected at least one task id")
	}

	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := parseTaskID(arg)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	for _, id := range ids {
		if err := c.api.DeleteTask(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Deleted task %d\n", id)
	}
	return nil
}
