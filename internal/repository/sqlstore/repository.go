package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"todo-api/internal/errors"
	"todo-api/internal/repository/sqlstore/migrations"
)

// Supported drivers
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

const (
	defaultQueryTimeout = 10 * time.Second
	defaultWriteTimeout = 5 * time.Second
)

// Repository defines the interface for task persistence
type Repository interface {
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id int64) error

	Ping(ctx context.Context) error
	Close() error
}

// Options configures how the store is opened
type Options struct {
	Driver       string
	DSN          string
	QueryTimeout time.Duration
	WriteTimeout time.Duration
	MaxOpenConns int
}

// SQLRepository implements Repository on database/sql
type SQLRepository struct {
	db           *sql.DB
	driver       string
	queryTimeout time.Duration
	writeTimeout time.Duration
}

// Open connects to the store, verifies it is reachable and creates the schema.
func Open(ctx context.Context, opts Options) (*SQLRepository, error) {
	dsn := opts.DSN
	switch opts.Driver {
	case DriverMySQL:
		normalized, err := MySQLDSN(dsn)
		if err != nil {
			return nil, errors.NewStoreUnavailableError("parse connection string", err)
		}
		dsn = normalized
	case DriverSQLite:
	default:
		return nil, errors.NewStoreUnavailableError("open database", fmt.Errorf("unsupported driver %q", opts.Driver))
	}

	db, err := sql.Open(opts.Driver, dsn)
	if err != nil {
		return nil, errors.NewStoreUnavailableError("open database", err)
	}

	// A single connection keeps ":memory:" databases shared and serializes writers.
	if opts.Driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	} else if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}

	repo := &SQLRepository{
		db:           db,
		driver:       opts.Driver,
		queryTimeout: opts.QueryTimeout,
		writeTimeout: opts.WriteTimeout,
	}
	if repo.queryTimeout <= 0 {
		repo.queryTimeout = defaultQueryTimeout
	}
	if repo.writeTimeout <= 0 {
		repo.writeTimeout = defaultWriteTimeout
	}

	if err := repo.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}

	migrateCtx, cancel := context.WithTimeout(ctx, repo.writeTimeout)
	defer cancel()
	if err := migrations.RunMigrations(migrateCtx, db, opts.Driver); err != nil {
		db.Close()
		return nil, errors.NewStoreUnavailableError("run migrations", err)
	}

	return repo, nil
}

// New creates a SQLite repository at dbPath
func New(dbPath string) (*SQLRepository, error) {
	return Open(context.Background(), Options{Driver: DriverSQLite, DSN: dbPath})
}

// Driver returns the name of the underlying driver
func (r *SQLRepository) Driver() string {
	return r.driver
}

// Ping checks that the store is reachable
func (r *SQLRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()
	if err := r.db.PingContext(ctx); err != nil {
		return errors.NewStoreUnavailableError("ping", err)
	}
	return nil
}

// Close closes the database connection
func (r *SQLRepository) Close() error {
	return r.db.Close()
}

// CreateTask inserts a task and sets its ID
func (r *SQLRepository) CreateTask(ctx context.Context, task *Task) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	query := `INSERT INTO items (name, is_complete) VALUES (?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, task.Name, task.IsComplete)
	if err != nil {
		return err
	}
	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `SELECT id, name, is_complete FROM items WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks ordered by ID
func (r *SQLRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `SELECT id, name, is_complete FROM items ORDER BY id`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// UpdateTask replaces the name and completion flag of an existing task
func (r *SQLRepository) UpdateTask(ctx context.Context, task *Task) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	query := `UPDATE items SET name = ?, is_complete = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID), task.Name, task.IsComplete, task.ID)
}

// DeleteTask deletes a task by ID
func (r *SQLRepository) DeleteTask(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	query := `DELETE FROM items WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}
