package wm

// Stack groups the tasks that render together as one window stack.
type Stack struct {
	ContainerBase
	name string
}

// NewStack creates a detached stack. Attach it to a display via
// DisplayContent.AttachChild, or use NewStackController to do both.
func NewStack(name string) *Stack {
	s := &Stack{name: name}
	s.SetSelf(s)
	return s
}

// Name returns the stack's name.
func (s *Stack) Name() string {
	return s.name
}

func (s *Stack) String() string {
	return "stack:" + s.name
}
