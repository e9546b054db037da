package domain

// Task represents a to-do item in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsComplete bool   `json:"isComplete"`
}

// NewTask creates a new, incomplete Task with the given name.
func NewTask(name string) Task {
	return Task{
		Name: name,
	}
}

// WithCompleted returns a copy of the task with the completion flag replaced.
func (t Task) WithCompleted(isComplete bool) Task {
	t.IsComplete = isComplete
	return t
}
