package sqlstore

// Task is a row of the items table
type Task struct {
	ID         int64
	Name       string
	IsComplete bool
}
