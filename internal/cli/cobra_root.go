package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"todo-api/internal/client"
	"todo-api/internal/config"
	"todo-api/internal/logging"
)

// APIFactory builds the TaskAPI used by the client commands
type APIFactory func(cfg *config.Config, logger *slog.Logger) (TaskAPI, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd          *cobra.Command
	config       *config.Config
	logger       *slog.Logger
	newAPI       APIFactory
	out          io.Writer
	errorHandler *ErrorHandler

	configPath string
	logLevel   string
	logFormat  string
	listFormat string
}

// NewRootCommand creates the root command talking to the configured API URL
func NewRootCommand() *RootCommand {
	return NewRootCommandWithAPI(httpAPI, os.Stdout)
}

// NewRootCommandWithAPI creates the root command with a custom API factory and output
func NewRootCommandWithAPI(factory APIFactory, out io.Writer) *RootCommand {
	root := &RootCommand{
		newAPI:       factory,
		out:          out,
		errorHandler: NewErrorHandler(),
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A minimal to-do list service and client",
		Long: `todo serves a small task API over HTTP and talks to it from the command line.

EXAMPLES:
  todo serve                         # Serve the API on TODO_HTTP_ADDR
  todo add Buy milk                  # Create a task
  todo list                          # List tasks
  todo done 1                        # Mark task 1 complete
  todo undo 1                        # Mark task 1 not complete
  todo rename 1 Buy oat milk         # Rename task 1
  todo delete 1                      # Delete task 1

CONFIGURATION:
  Defaults are overridden by the YAML file named by --config or TODO_CONFIG,
  then by environment variables:

    TODO_DB_DRIVER                   mysql or sqlite (default: sqlite, mysql with ToDoDB)
    TODO_DB_DSN, ToDoDB              connection string (default: todo.db)
    TODO_DB_QUERY_TIMEOUT            read deadline (default: 10s)
    TODO_DB_WRITE_TIMEOUT            write deadline (default: 5s)
    TODO_HTTP_ADDR                   listen address (default: :5095)
    TODO_API_URL                     API used by client commands (default: http://localhost:5095)
    TODO_VALIDATION_TASK_NAME_MAX    maximum task name length (default: 45)
    TODO_LOG_LEVEL, TODO_LOG_FORMAT  logging (default: info, text)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs overrides the arguments, for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()
	flags.StringVar(&r.configPath, "config", "", "YAML configuration file (overrides TODO_CONFIG)")
	flags.StringVar(&r.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides TODO_LOG_LEVEL)")
	flags.StringVar(&r.logFormat, "log-format", "", "Log format: text or json (overrides TODO_LOG_FORMAT)")
}

// loadConfig builds the configuration and logger before any command runs
func (r *RootCommand) loadConfig(cmd *cobra.Command) error {
	overrides := &config.ConfigOverrides{}
	if cmd.Flags().Changed("log-level") {
		overrides.LogLevel = &r.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		overrides.LogFormat = &r.logFormat
	}

	cfg, err := config.NewLoader().WithFile(r.configPath).LoadWithOverrides(overrides)
	if err != nil {
		return err
	}
	r.config = cfg
	r.logger = logging.New(cfg.Log)
	return nil
}

func (r *RootCommand) app() (*App, error) {
	taskAPI, err := r.newAPI(r.config, r.logger)
	if err != nil {
		return nil, err
	}
	return NewAppWithOutput(taskAPI, r.out), nil
}

// run builds the app and executes a registered command, mapping errors for display
func (r *RootCommand) run(cmd *cobra.Command, operation, name string, args []string) error {
	app, err := r.app()
	if err != nil {
		return r.errorHandler.Handle(operation, err)
	}
	if err := app.registry.Execute(cmd.Context(), name, args); err != nil {
		return r.errorHandler.Handle(operation, err)
	}
	return nil
}

func (r *RootCommand) addSubcommands() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the task API",
		Long:  "Open the task store, create its table if needed and serve the HTTP API until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewServeCommand(r.config, r.logger).Execute(cmd.Context(), args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var listArgs []string
			if r.listFormat != "" {
				listArgs = []string{r.listFormat}
			}
			return r.run(cmd, "list tasks", "list", listArgs)
		},
	}
	listCmd.Flags().StringVar(&r.listFormat, "format", "", "Output format: table or json (default: table on a terminal, json otherwise)")

	addCmd := &cobra.Command{
		Use:   "add <name...>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "add task", "add", args)
		},
	}

	doneCmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "complete task", "done", args)
		},
	}

	undoCmd := &cobra.Command{
		Use:   "undo <id>",
		Short: "Mark a task not complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "reopen task", "undo", args)
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename <id> <name...>",
		Short: "Rename a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "rename task", "rename", args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id...>",
		Short: "Delete tasks",
		Long:  "Delete one or more tasks by id. This cannot be undone.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "delete task", "delete", args)
		},
	}

	r.cmd.AddCommand(serveCmd, listCmd, addCmd, doneCmd, undoCmd, renameCmd, deleteCmd)
}

// httpAPI talks to the configured server. Failures are reported once by the
// error handler, so the client hook only logs them at debug level.
func httpAPI(cfg *config.Config, logger *slog.Logger) (TaskAPI, error) {
	return client.New(cfg.Client,
		client.WithLogger(logger),
		client.WithErrorHook(func(ctx context.Context, op string, err error) {
			logger.DebugContext(ctx, "todo api call failed", "op", op, "error", err)
		}),
	)
}
