package services

import (
	"context"

	"todo-api/internal/domain"
)

// TaskService handles the task lifecycle on top of the store
type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	CreateTask(ctx context.Context, name string, isComplete bool) (*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, name string, isComplete bool) error
	DeleteTask(ctx context.Context, id int64) error
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService TaskService
}
