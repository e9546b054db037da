package cli

import (
	"context"
	"fmt"
	"sort"

	"todo-api/internal/client"
	"todo-api/internal/domain"
)

// mockTaskAPI implements TaskAPI in memory for testing
type mockTaskAPI struct {
	tasks  map[int64]*domain.Task
	nextID int64
	err    error
}

func newMockTaskAPI() *mockTaskAPI {
	return &mockTaskAPI{tasks: make(map[int64]*domain.Task), nextID: 1}
}

func notFound(id int64) error {
	return &client.APIError{StatusCode: 404, Title: "Not Found", Detail: fmt.Sprintf("task not found: %d", id)}
}

func (m *mockTaskAPI) GetTasks(ctx context.Context) ([]domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	tasks := make([]domain.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		tasks = append(tasks, *task)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (m *mockTaskAPI) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, ok := m.tasks[id]
	if !ok {
		return nil, notFound(id)
	}
	c := *task
	return &c, nil
}

func (m *mockTaskAPI) AddTask(ctx context.Context, name string) (*domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	task := &domain.Task{ID: m.nextID, Name: name}
	m.tasks[task.ID] = task
	m.nextID++
	c := *task
	return &c, nil
}

func (m *mockTaskAPI) SetCompleted(ctx context.Context, id int64, isComplete bool) error {
	task, ok := m.tasks[id]
	if !ok {
		return notFound(id)
	}
	task.IsComplete = isComplete
	return nil
}

func (m *mockTaskAPI) RenameTask(ctx context.Context, id int64, name string) error {
	task, ok := m.tasks[id]
	if !ok {
		return notFound(id)
	}
	task.Name = name
	return nil
}

func (m *mockTaskAPI) DeleteTask(ctx context.Context, id int64) error {
	if _, ok := m.tasks[id]; !ok {
		return notFound(id)
	}
	delete(m.tasks, id)
	return nil
}
