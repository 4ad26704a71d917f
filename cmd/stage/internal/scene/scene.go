// Package scene loads declarative window-scene files and replays their
// operations against a container tree.
//
// A scene file describes displays with their initial stacks and tasks,
// followed by a sequence of lifecycle operations:
//
//	version: v1
//	displays:
//	  - stacks:
//	      - name: home
//	        tasks: [browser, mail]
//	  - stacks: []
//	ops:
//	  - {action: animate, target: mail}
//	  - {action: remove, target: home}
//	  - {action: idle, target: mail}
//	  - {action: sweep}
package scene

import (
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/stage/pkg/errors"
	"github.com/go-drift/stage/pkg/geometry"
	"github.com/go-drift/stage/pkg/wm"
)

// SupportedVersion is the newest scene schema major version the tool
// understands.
const SupportedVersion = "v1"

// Scene describes displays, their initial contents, and a sequence of
// operations to replay.
type Scene struct {
	Version  string        `yaml:"version"`
	Displays []DisplaySpec `yaml:"displays"`
	Ops      []Op          `yaml:"ops"`
}

// DisplaySpec describes one display and its initial stacks, bottom to
// top.
type DisplaySpec struct {
	Stacks []StackSpec `yaml:"stacks"`
}

// StackSpec describes one stack and its initial tasks, bottom to top.
type StackSpec struct {
	Name  string   `yaml:"name"`
	Tasks []string `yaml:"tasks"`
}

// Op is one replayed operation. Action selects the operation; the
// remaining fields apply to specific actions.
type Op struct {
	// Action is one of: add-task, animate, idle, remove, remove-now,
	// sweep, reparent.
	Action string `yaml:"action"`
	// Target names the stack or task the action applies to.
	Target string `yaml:"target"`
	// Task names the task created by add-task.
	Task string `yaml:"task"`
	// Display is the target display identifier for reparent.
	Display int `yaml:"display"`
	// OnTop selects z-placement for reparent.
	OnTop bool `yaml:"onTop"`
	// Bounds is the reparent bounds as [left, top, width, height].
	Bounds []float64 `yaml:"bounds"`
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("scene.Load", err)
	}
	return Parse(data)
}

// Parse decodes scene data and validates its version against
// SupportedVersion.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Config("scene.Parse", err)
	}
	if s.Version == "" {
		return nil, errors.Config("scene.Parse", fmt.Errorf("missing scene version"))
	}
	if !semver.IsValid(s.Version) {
		return nil, errors.Config("scene.Parse", fmt.Errorf("invalid scene version %q", s.Version))
	}
	if semver.Compare(semver.Major(s.Version), SupportedVersion) > 0 {
		return nil, errors.Config("scene.Parse",
			fmt.Errorf("scene version %s is newer than supported %s", s.Version, SupportedVersion))
	}
	return &s, nil
}

// Result is the tree state after replaying a scene.
type Result struct {
	// Root is the display registry the scene was replayed against.
	Root *wm.Root
	// Stacks maps stack names to their controllers.
	Stacks map[string]*wm.StackController
	// Tasks maps task names to their controllers.
	Tasks map[string]*wm.TaskController

	// containers outlives controller release so that animate/idle and
	// remove-now can still target removed-but-alive containers.
	containers map[string]wm.Container
}

// Container resolves a named stack or task, including containers whose
// controller has been released.
func (r *Result) Container(name string) (wm.Container, bool) {
	container, ok := r.containers[name]
	return container, ok
}

// Replay builds the scene's initial tree and applies its operations in
// order. Tree invariant violations surface as panics inside the wm
// package; Replay recovers them, reports them through the global error
// handler, and returns them as config errors.
func Replay(s *Scene) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			panicErr := &errors.PanicError{
				Op:         "scene.Replay",
				Value:      r,
				StackTrace: errors.CaptureStack(),
			}
			errors.ReportPanic(panicErr)
			result = nil
			err = errors.Config("scene.Replay", panicErr)
		}
	}()

	res := &Result{
		Root:       wm.NewRoot(),
		Stacks:     make(map[string]*wm.StackController),
		Tasks:      make(map[string]*wm.TaskController),
		containers: make(map[string]wm.Container),
	}
	for _, displaySpec := range s.Displays {
		dc := res.Root.NewDisplay()
		for _, stackSpec := range displaySpec.Stacks {
			if err := res.addStack(dc, stackSpec); err != nil {
				return nil, err
			}
		}
	}
	for i, op := range s.Ops {
		if err := res.apply(op); err != nil {
			return nil, fmt.Errorf("op %d (%s %s): %w", i, op.Action, op.Target, err)
		}
	}
	return res, nil
}

func (r *Result) addStack(dc *wm.DisplayContent, spec StackSpec) error {
	if _, exists := r.containers[spec.Name]; exists {
		return errors.Config("scene.Replay", fmt.Errorf("duplicate container name %q", spec.Name))
	}
	controller := wm.NewStackController(r.Root, dc, spec.Name)
	r.Stacks[spec.Name] = controller
	r.containers[spec.Name] = controller.Stack()
	for _, taskName := range spec.Tasks {
		if err := r.addTask(controller, taskName); err != nil {
			return err
		}
	}
	return nil
}

func (r *Result) addTask(controller *wm.StackController, name string) error {
	if _, exists := r.containers[name]; exists {
		return errors.Config("scene.Replay", fmt.Errorf("duplicate container name %q", name))
	}
	taskController, err := controller.NewTask(name)
	if err != nil {
		return err
	}
	r.Tasks[name] = taskController
	r.containers[name] = taskController.Task()
	return nil
}

func (r *Result) apply(op Op) error {
	switch op.Action {
	case "add-task":
		controller, ok := r.Stacks[op.Target]
		if !ok {
			return errors.NotFound("scene.apply", "unknown stack %q", op.Target)
		}
		return r.addTask(controller, op.Task)

	case "animate":
		container, ok := r.containers[op.Target]
		if !ok {
			return errors.NotFound("scene.apply", "unknown container %q", op.Target)
		}
		container.SetAnimationState(wm.AnimationRunning)
		return nil

	case "idle":
		container, ok := r.containers[op.Target]
		if !ok {
			return errors.NotFound("scene.apply", "unknown container %q", op.Target)
		}
		container.SetAnimationState(wm.AnimationIdle)
		return nil

	case "remove":
		if controller, ok := r.Stacks[op.Target]; ok {
			controller.RemoveContainer()
			return nil
		}
		if controller, ok := r.Tasks[op.Target]; ok {
			controller.RemoveContainer()
			return nil
		}
		return errors.NotFound("scene.apply", "unknown container %q", op.Target)

	case "remove-now":
		container, ok := r.containers[op.Target]
		if !ok {
			return errors.NotFound("scene.apply", "unknown container %q", op.Target)
		}
		container.RemoveImmediately()
		return nil

	case "sweep":
		r.Root.CheckCompleteDeferredRemoval()
		return nil

	case "reparent":
		controller, ok := r.Stacks[op.Target]
		if !ok {
			return errors.NotFound("scene.apply", "unknown stack %q", op.Target)
		}
		bounds, err := boundsRect(op.Bounds)
		if err != nil {
			return err
		}
		return controller.Reparent(op.Display, bounds, op.OnTop)

	default:
		return errors.Config("scene.apply", fmt.Errorf("unknown action %q", op.Action))
	}
}

func boundsRect(spec []float64) (geometry.Rect, error) {
	if len(spec) == 0 {
		return geometry.Rect{}, nil
	}
	if len(spec) != 4 {
		return geometry.Rect{}, errors.Config("scene.apply",
			fmt.Errorf("bounds must be [left, top, width, height], got %d values", len(spec)))
	}
	return geometry.RectFromLTWH(spec[0], spec[1], spec[2], spec[3]), nil
}
