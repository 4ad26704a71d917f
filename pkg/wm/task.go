package wm

// Task is a leaf-level grouping within a stack.
type Task struct {
	ContainerBase
	name string
}

// NewTask creates a detached task.
func NewTask(name string) *Task {
	t := &Task{name: name}
	t.SetSelf(t)
	return t
}

// Name returns the task's name.
func (t *Task) Name() string {
	return t.name
}

func (t *Task) String() string {
	return "task:" + t.name
}
