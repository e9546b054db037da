package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"todo-api/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	api TaskAPI
	out io.Writer
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{api: app.api, out: app.out}
}

// Execute adds a task named by the joined arguments
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if strings.TrimSpace(name) == "" {
		return errors.NewInvalidInputError("name", name, "task name is required")
	}

	task, err := c.api.AddTask(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Added task %d: %s\n", task.ID, task.Name)
	return nil
}

// CompleteCommand marks a task done or not done
type CompleteCommand struct {
	api        TaskAPI
	out        io.Writer
	isComplete bool
}

// NewCompleteCommand creates a handler that sets the completion flag to isComplete
func NewCompleteCommand(app *App, isComplete bool) *CompleteCommand {
	return &CompleteCommand{api: app.api, out: app.out, isComplete: isComplete}
}

// Execute updates the task given by the single id argument
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("args", args, "expected exactly one task id")
	}
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	if err := c.api.SetCompleted(ctx, id, c.isComplete); err != nil {
		return err
	}
	if c.isComplete {
		fmt.Fprintf(c.out, "Task %d marked done\n", id)
	} else {
		fmt.Fprintf(c.out, "Task %d marked not done\n", id)
	}
	return nil
}

// RenameCommand handles the rename command
type RenameCommand struct {
	api TaskAPI
	out io.Writer
}

// NewRenameCommand creates a new rename command handler
func NewRenameCommand(app *App) *RenameCommand {
	return &RenameCommand{api: app.api, out: app.out}
}

// Execute renames the task given by the first argument to the remaining words
func (c *RenameCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("args", args, "expected a task id and a new name")
	}
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}
	name := strings.Join(args[1:], " ")

	if err := c.api.RenameTask(ctx, id, name); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Task %d renamed to %s\n", id, strings.TrimSpace(name))
	return nil
}
