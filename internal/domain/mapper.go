package domain

import (
	"todo-api/internal/repository/sqlstore"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlstore.Task {
	return sqlstore.Task{
		ID:         domainTask.ID,
		Name:       domainTask.Name,
		IsComplete: domainTask.IsComplete,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlstore.Task) Task {
	return Task{
		ID:         dbTask.ID,
		Name:       dbTask.Name,
		IsComplete: dbTask.IsComplete,
	}
}

// FromDatabaseSlice converts database rows to domain Tasks. The result is never nil.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlstore.Task) []Task {
	domainTasks := make([]Task, 0, len(dbTasks))
	for _, task := range dbTasks {
		domainTasks = append(domainTasks, m.FromDatabase(*task))
	}
	return domainTasks
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
