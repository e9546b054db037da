package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mattn/go-isatty"

	"todo-api/internal/domain"
	"todo-api/internal/errors"
)

// Output formats for list
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// ListCommand handles the list command
type ListCommand struct {
	api TaskAPI
	out io.Writer
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{api: app.api, out: app.out}
}

// Execute runs the list command. The optional argument is the output format;
// without one, terminals get a table and pipes get JSON.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	format := defaultFormat(c.out)
	if len(args) > 0 {
		format = args[0]
	}

	tasks, err := c.api.GetTasks(ctx)
	if err != nil {
		return err
	}

	switch format {
	case FormatTable:
		return printTable(c.out, tasks)
	case FormatJSON:
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	default:
		return errors.NewInvalidInputError("format", format, "must be table or json")
	}
}

func defaultFormat(out io.Writer) string {
	if f, ok := out.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return FormatTable
	}
	return FormatJSON
}

func printTable(out io.Writer, tasks []domain.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(out, "No tasks.")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tNAME")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", task.ID, checkbox(task.IsComplete), task.Name)
	}
	return tw.Flush()
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
