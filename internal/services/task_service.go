package services

import (
	"context"
	"fmt"
	"log/slog"

	"todo-api/internal/config"
	"todo-api/internal/domain"
	"todo-api/internal/errors"
	"todo-api/internal/repository/sqlstore"
	"todo-api/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlstore.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	logger        *slog.Logger
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlstore.Repository, cfg *config.Config, logger *slog.Logger) TaskService {
	if logger == nil {
		logger = slog.Default()
	}
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(cfg),
		logger:        logger,
	}
}

// NewServiceContainer wires every service over one repository
func NewServiceContainer(repo sqlstore.Repository, cfg *config.Config, logger *slog.Logger) *ServiceContainer {
	return &ServiceContainer{
		TaskService: NewTaskService(repo, cfg, logger),
	}
}

// validateAndTrimTaskName validates and trims a task name
func (t *taskServiceImpl) validateAndTrimTaskName(name string) (string, error) {
	trimmedName, err := t.taskValidator.GetValidTaskName(name)
	if err != nil {
		return "", errors.NewValidationError("invalid task name", err)
	}
	return trimmedName, nil
}

func notFound(id int64) error {
	return errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
}

// ListTasks returns every task ordered by ID. The result is never nil.
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if t.taskValidator.ValidateTaskID(id) != nil {
		return nil, notFound(id)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// CreateTask validates the name and inserts a new task
func (t *taskServiceImpl) CreateTask(ctx context.Context, name string, isComplete bool) (*domain.Task, error) {
	trimmedName, err := t.validateAndTrimTaskName(name)
	if err != nil {
		return nil, err
	}

	dbTask := t.mapper.Task.ToDatabase(domain.NewTask(trimmedName).WithCompleted(isComplete))
	if err := t.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	t.logger.DebugContext(ctx, "task created", "id", dbTask.ID)

	domainTask := t.mapper.Task.FromDatabase(dbTask)
	return &domainTask, nil
}

// UpdateTask overwrites both the name and the completion flag of a task
func (t *taskServiceImpl) UpdateTask(ctx context.Context, id int64, name string, isComplete bool) error {
	trimmedName, err := t.validateAndTrimTaskName(name)
	if err != nil {
		return err
	}
	if t.taskValidator.ValidateTaskID(id) != nil {
		return notFound(id)
	}

	task := domain.Task{ID: id, Name: trimmedName, IsComplete: isComplete}
	dbTask := t.mapper.Task.ToDatabase(task)
	if err := t.repo.UpdateTask(ctx, &dbTask); err != nil {
		return err
	}

	t.logger.DebugContext(ctx, "task updated", "id", id, "isComplete", isComplete)
	return nil
}

// DeleteTask removes a task by ID
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if t.taskValidator.ValidateTaskID(id) != nil {
		return notFound(id)
	}

	if err := t.repo.DeleteTask(ctx, id); err != nil {
		return err
	}

	t.logger.DebugContext(ctx, "task deleted", "id", id)
	return nil
}
