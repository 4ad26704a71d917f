package wm

import (
	"testing"

	"github.com/go-drift/stage/pkg/geometry"
)

func newTestDisplay() (*Root, *DisplayContent) {
	root := NewRoot()
	return root, root.NewDisplay()
}

func TestAddChildPropagatesDisplay(t *testing.T) {
	_, dc := newTestDisplay()
	stack := NewStack("home")
	dc.AttachChild(stack, true)

	task := NewTask("browser")
	leaf := NewTask("tab")
	task.AddChild(leaf)
	stack.AddChild(task)

	if stack.Display() != dc {
		t.Fatalf("expected stack display %v, got %v", dc, stack.Display())
	}
	if task.Display() != dc {
		t.Fatalf("expected task display %v, got %v", dc, task.Display())
	}
	if leaf.Display() != dc {
		t.Fatalf("expected leaf display %v, got %v", dc, leaf.Display())
	}
	if task.Parent() != stack {
		t.Fatalf("expected task parent %v, got %v", stack, task.Parent())
	}

	second := NewTask("mail")
	stack.AddChild(second)
	if got := stack.PositionOf(second); got != 1 {
		t.Fatalf("expected second task on top at position 1, got %d", got)
	}
}

func TestRemoveChildDetachesSubtree(t *testing.T) {
	_, dc := newTestDisplay()
	stack := NewStack("home")
	dc.AttachChild(stack, true)
	task := NewTask("browser")
	stack.AddChild(task)

	if !dc.RemoveChild(stack) {
		t.Fatalf("expected idle stack to be removed, got deferred")
	}
	if stack.Parent() != nil {
		t.Fatalf("expected stack to be detached, got parent %v", stack.Parent())
	}
	if stack.Display() != nil || task.Display() != nil {
		t.Fatalf("expected display cleared for subtree, got %v / %v", stack.Display(), task.Display())
	}
	// The subtree itself stays intact.
	if task.Parent() != stack {
		t.Fatalf("expected task to stay attached to stack, got %v", task.Parent())
	}
	if dc.ChildCount() != 0 {
		t.Fatalf("expected empty display, got %d children", dc.ChildCount())
	}
}

func TestRemoveChildDefersWhileAnimating(t *testing.T) {
	_, dc := newTestDisplay()
	stack := NewStack("home")
	dc.AttachChild(stack, true)
	task := NewTask("browser")
	stack.AddChild(task)
	task.SetAnimationState(AnimationRunning)

	if dc.RemoveChild(stack) {
		t.Fatalf("expected removal of animating stack to be deferred")
	}
	if !stack.DeferredRemoval() {
		t.Fatalf("expected stack marked for deferred removal")
	}
	if stack.Parent() != dc {
		t.Fatalf("expected deferred stack to stay attached, got parent %v", stack.Parent())
	}
	if stack.Display() != dc || task.Display() != dc {
		t.Fatalf("expected deferred subtree to keep its display")
	}
}

func TestRemoveChildForcesDeferredDescendants(t *testing.T) {
	_, dc := newTestDisplay()
	stack := NewStack("home")
	dc.AttachChild(stack, true)
	task := NewTask("browser")
	stack.AddChild(task)
	leaf := NewTask("tab")
	task.AddChild(leaf)

	leaf.SetAnimationState(AnimationRunning)
	if task.RemoveChild(leaf) {
		t.Fatalf("expected leaf removal to be deferred")
	}
	leaf.SetAnimationState(AnimationIdle)

	if !dc.RemoveChild(stack) {
		t.Fatalf("expected stack removal to proceed once leaf is idle")
	}
	if leaf.Parent() != nil {
		t.Fatalf("expected deferred leaf to be force-removed, got parent %v", leaf.Parent())
	}
	if task.ChildCount() != 0 {
		t.Fatalf("expected task to have no children, got %d", task.ChildCount())
	}
}

func TestRemoveImmediatelyOrphansChildren(t *testing.T) {
	_, dc := newTestDisplay()
	stack := NewStack("home")
	dc.AttachChild(stack, true)
	first := NewTask("browser")
	second := NewTask("mail")
	stack.AddChild(first)
	stack.AddChild(second)
	first.SetAnimationState(AnimationRunning)

	stack.RemoveImmediately()

	if stack.Parent() != nil || stack.Display() != nil {
		t.Fatalf("expected stack fully detached, got parent %v display %v", stack.Parent(), stack.Display())
	}
	if stack.ChildCount() != 0 {
		t.Fatalf("expected stack emptied, got %d children", stack.ChildCount())
	}
	if first.Parent() != nil || second.Parent() != nil {
		t.Fatalf("expected tasks orphaned, got parents %v / %v", first.Parent(), second.Parent())
	}
	if first.Display() != nil || second.Display() != nil {
		t.Fatalf("expected task displays cleared")
	}
}

func TestIsAnimatingPropagatesFromDescendants(t *testing.T) {
	stack := NewStack("home")
	task := NewTask("browser")
	leaf := NewTask("tab")
	stack.AddChild(task)
	task.AddChild(leaf)

	if stack.IsAnimating() {
		t.Fatalf("expected idle tree")
	}
	leaf.SetAnimationState(AnimationRunning)
	if !stack.IsAnimating() {
		t.Fatalf("expected animating leaf to propagate to stack")
	}
	if stack.AnimationState() != AnimationIdle {
		t.Fatalf("expected stack's own state to stay idle, got %v", stack.AnimationState())
	}
	leaf.SetAnimationState(AnimationIdle)
	if stack.IsAnimating() {
		t.Fatalf("expected tree idle again")
	}
}

func TestReparentPlacesContainerAboveTop(t *testing.T) {
	root := NewRoot()
	first := root.NewDisplay()
	second := root.NewDisplay()

	moved := NewStack("moved")
	first.AttachChild(moved, true)
	resident := NewStack("resident")
	second.AttachChild(resident, true)

	bounds := geometry.RectFromLTWH(0, 0, 320, 240)
	moved.Reparent(second, bounds, true)

	if moved.Display() != second {
		t.Fatalf("expected moved stack on %v, got %v", second, moved.Display())
	}
	parent := moved.Parent()
	if parent != second {
		t.Fatalf("expected moved stack parented to target display, got %v", parent)
	}
	movedPos := parent.PositionOf(moved)
	residentPos := parent.PositionOf(resident)
	if movedPos != residentPos+1 {
		t.Fatalf("expected moved stack directly above resident, got positions %d and %d", movedPos, residentPos)
	}
	if first.ChildCount() != 0 {
		t.Fatalf("expected source display emptied, got %d children", first.ChildCount())
	}
	if moved.Bounds() != bounds {
		t.Fatalf("expected bounds %+v, got %+v", bounds, moved.Bounds())
	}
}

func TestReparentOnBottomPlacesContainerFirst(t *testing.T) {
	root := NewRoot()
	first := root.NewDisplay()
	second := root.NewDisplay()

	moved := NewStack("moved")
	first.AttachChild(moved, true)
	resident := NewStack("resident")
	second.AttachChild(resident, true)

	moved.Reparent(second, geometry.Rect{}, false)

	if got := second.PositionOf(moved); got != 0 {
		t.Fatalf("expected moved stack at the bottom, got position %d", got)
	}
	if got := second.PositionOf(resident); got != 1 {
		t.Fatalf("expected resident stack pushed to position 1, got %d", got)
	}
}

func TestReparentNotifiesSubtreeExactlyOnce(t *testing.T) {
	root := NewRoot()
	first := root.NewDisplay()
	second := root.NewDisplay()

	stack := NewStack("home")
	first.AttachChild(stack, true)
	task := NewTask("browser")
	stack.AddChild(task)

	var stackNotified, taskNotified int
	stack.SetOnDisplayChanged(func(dc *DisplayContent) { stackNotified++ })
	task.SetOnDisplayChanged(func(dc *DisplayContent) { taskNotified++ })

	stack.Reparent(second, geometry.Rect{}, true)
	if stackNotified != 1 || taskNotified != 1 {
		t.Fatalf("expected one notification per node, got stack=%d task=%d", stackNotified, taskNotified)
	}

	// Reparenting onto the current display is a no-op.
	stack.Reparent(second, geometry.Rect{}, true)
	if stackNotified != 1 || taskNotified != 1 {
		t.Fatalf("expected no notifications for same-display reparent, got stack=%d task=%d", stackNotified, taskNotified)
	}
	if second.ChildCount() != 1 {
		t.Fatalf("expected no duplicate entries, got %d children", second.ChildCount())
	}
}

func TestRemoveChildPanicsForForeignChild(t *testing.T) {
	_, dc := newTestDisplay()
	orphan := NewStack("orphan")

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when removing a container that is not a child")
		}
	}()
	dc.RemoveChild(orphan)
}
