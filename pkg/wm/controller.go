package wm

import (
	"github.com/go-drift/stage/pkg/errors"
	"github.com/go-drift/stage/pkg/geometry"
)

// Controller is the façade external systems hold to drive one
// container's lifecycle without owning the tree.
//
// A controller binds to exactly one container at a time. The binding is
// severed by RemoveContainer or when the container is force-removed;
// either way the controller ends up unbound and stays that way.
type Controller interface {
	// Container returns the bound container, or nil once released.
	Container() Container
	// RemoveContainer releases the bound container. The binding is
	// severed immediately in both directions; the container itself is
	// detached from the tree only if no descendant is animating.
	RemoveContainer()

	containerRemoved()
}

// ControllerBase implements the container binding shared by the
// concrete controllers.
type ControllerBase struct {
	container Container
}

// Container returns the bound container, or nil once released.
func (c *ControllerBase) Container() Container {
	return c.container
}

// bind links self and container in both directions.
func (c *ControllerBase) bind(self Controller, container Container) {
	c.container = container
	container.setController(self)
}

// RemoveContainer releases the controller's container.
//
// The controller/container link is severed immediately in both
// directions regardless of animation state. The container itself is
// detached from the tree only if no descendant is animating; otherwise
// it stays attached, marked for deferred removal, until its
// RemoveImmediately runs after the animation signal clears.
//
// Calling RemoveContainer on a released controller is a no-op.
func (c *ControllerBase) RemoveContainer() {
	if c.container == nil {
		return
	}
	container := c.container
	c.container = nil
	container.setController(nil)
	if parent := container.Parent(); parent != nil {
		parent.RemoveChild(container)
	} else {
		container.RemoveImmediately()
	}
}

// containerRemoved is invoked by the tree when the container is
// force-removed while still bound.
func (c *ControllerBase) containerRemoved() {
	c.container = nil
}

// StackController mediates lifecycle requests for one stack.
type StackController struct {
	ControllerBase
	root *Root
}

// NewStackController creates a stack named name on top of display's
// z-order and binds a fresh controller to it.
func NewStackController(root *Root, display *DisplayContent, name string) *StackController {
	stack := NewStack(name)
	display.AttachChild(stack, true)
	controller := &StackController{root: root}
	controller.bind(controller, stack)
	return controller
}

// Stack returns the bound stack, or nil once released.
func (c *StackController) Stack() *Stack {
	if c.container == nil {
		return nil
	}
	return c.container.(*Stack)
}

// NewTask creates a task on top of the bound stack and returns its
// controller. Fails with a state error when the stack controller has
// already been released.
func (c *StackController) NewTask(name string) (*TaskController, error) {
	if c.container == nil {
		return nil, errors.State("wm.StackController.NewTask", "controller is not bound to a stack")
	}
	task := NewTask(name)
	c.container.AddChild(task)
	controller := &TaskController{}
	controller.bind(controller, task)
	return controller, nil
}

// Reparent moves the bound stack to the display with the given
// identifier; onTop selects placement in the target z-order. The tree
// is left untouched when the display is unknown.
func (c *StackController) Reparent(displayID int, bounds geometry.Rect, onTop bool) error {
	if c.container == nil {
		return errors.State("wm.StackController.Reparent", "controller is not bound to a stack")
	}
	target, err := c.root.DisplayByID(displayID)
	if err != nil {
		return err
	}
	c.container.Reparent(target, bounds, onTop)
	return nil
}

// TaskController mediates lifecycle requests for one task.
type TaskController struct {
	ControllerBase
}

// Task returns the bound task, or nil once released.
func (c *TaskController) Task() *Task {
	if c.container == nil {
		return nil
	}
	return c.container.(*Task)
}
