package wm

import (
	"fmt"

	"github.com/go-drift/stage/pkg/geometry"
)

// AnimationState reports whether a container is mid-animation.
//
// The state is transitioned only by an external notifier (the renderer
// or an [Animator]); the tree itself never starts or stops animations.
type AnimationState int

const (
	// AnimationIdle means no animation is running on the container itself.
	AnimationIdle AnimationState = iota
	// AnimationRunning means the renderer is animating the container.
	AnimationRunning
)

// String returns a human-readable representation of the animation state.
func (s AnimationState) String() string {
	switch s {
	case AnimationIdle:
		return "idle"
	case AnimationRunning:
		return "running"
	default:
		return fmt.Sprintf("AnimationState(%d)", int(s))
	}
}

// Container is a node in the window container tree.
//
// Concrete containers ([DisplayContent], [Stack], [Task]) embed
// [ContainerBase], which implements all of these methods. The
// unexported methods seal the interface to this package.
type Container interface {
	// Parent returns the containing node, or nil for detached
	// containers and display roots.
	Parent() Container
	// Children returns the child sequence in z-order (last is topmost).
	Children() []Container
	// ChildCount returns the number of children.
	ChildCount() int
	// PositionOf returns the z-order index of child, or -1 if child is
	// not a member of this container.
	PositionOf(child Container) int
	// Display returns the display this container is attached to, or
	// nil once detached.
	Display() *DisplayContent
	// Controller returns the bound controller, or nil.
	Controller() Controller
	// Bounds returns the container's bookkeeping bounds.
	Bounds() geometry.Rect
	// SetBounds records the container's bounds.
	SetBounds(bounds geometry.Rect)
	// AnimationState returns the container's own animation state.
	AnimationState() AnimationState
	// SetAnimationState records the animation state reported by the
	// renderer. This is the seam the animation-completion signal feeds.
	SetAnimationState(state AnimationState)
	// IsAnimating reports whether this container or any descendant is
	// mid-animation.
	IsAnimating() bool
	// DeferredRemoval reports whether a removal request was deferred
	// because the container was animating.
	DeferredRemoval() bool
	// AddChild appends child to the top of the z-order and adopts its
	// subtree onto this container's display.
	AddChild(child Container)
	// RemoveChild detaches child unless it is animating, in which case
	// the removal is deferred. Returns true when child was detached.
	RemoveChild(child Container) bool
	// RemoveImmediately detaches this container unconditionally and
	// force-removes its children.
	RemoveImmediately()
	// Reparent atomically moves this container and its subtree onto
	// target, at the top or bottom of the target's z-order.
	Reparent(target *DisplayContent, bounds geometry.Rect, onTop bool)
	// OnDisplayChanged delivers the display-changed notification.
	OnDisplayChanged(dc *DisplayContent)

	setParent(parent Container)
	setDisplay(dc *DisplayContent)
	setController(controller Controller)
	markDeferredRemoval(deferred bool)
	detachChild(child Container)
}

// ContainerBase provides the tree bookkeeping shared by all container
// types. Concrete containers embed it and must call SetSelf so tree
// walks dispatch through the outer type.
type ContainerBase struct {
	self            Container
	parent          Container
	children        []Container
	display         *DisplayContent
	controller      Controller
	state           AnimationState
	deferredRemoval bool
	bounds          geometry.Rect
	displayChanged  func(dc *DisplayContent)
}

// SetSelf records the outer container for tree walks.
func (c *ContainerBase) SetSelf(self Container) {
	c.self = self
}

// Parent returns the containing node, or nil.
func (c *ContainerBase) Parent() Container {
	return c.parent
}

// Children returns the child sequence in z-order.
func (c *ContainerBase) Children() []Container {
	return c.children
}

// ChildCount returns the number of children.
func (c *ContainerBase) ChildCount() int {
	return len(c.children)
}

// PositionOf returns the z-order index of child, or -1.
func (c *ContainerBase) PositionOf(child Container) int {
	for i, existing := range c.children {
		if existing == child {
			return i
		}
	}
	return -1
}

// Display returns the display this container is attached to, or nil.
func (c *ContainerBase) Display() *DisplayContent {
	return c.display
}

// Controller returns the bound controller, or nil. The reference is
// non-owning: clearing it never tears the container down.
func (c *ContainerBase) Controller() Controller {
	return c.controller
}

// Bounds returns the container's bookkeeping bounds.
func (c *ContainerBase) Bounds() geometry.Rect {
	return c.bounds
}

// SetBounds records the container's bounds.
func (c *ContainerBase) SetBounds(bounds geometry.Rect) {
	c.bounds = bounds
}

// AnimationState returns the container's own animation state.
func (c *ContainerBase) AnimationState() AnimationState {
	return c.state
}

// SetAnimationState records the animation state reported by the renderer.
func (c *ContainerBase) SetAnimationState(state AnimationState) {
	c.state = state
}

// IsAnimating reports whether this container or any descendant is
// mid-animation.
func (c *ContainerBase) IsAnimating() bool {
	if c.state == AnimationRunning {
		return true
	}
	for _, child := range c.children {
		if child.IsAnimating() {
			return true
		}
	}
	return false
}

// DeferredRemoval reports whether a removal request was deferred.
func (c *ContainerBase) DeferredRemoval() bool {
	return c.deferredRemoval
}

// SetOnDisplayChanged registers a hook fired when the container moves
// to a different display via Reparent.
func (c *ContainerBase) SetOnDisplayChanged(fn func(dc *DisplayContent)) {
	c.displayChanged = fn
}

// OnDisplayChanged delivers the display-changed notification.
func (c *ContainerBase) OnDisplayChanged(dc *DisplayContent) {
	if c.displayChanged != nil {
		c.displayChanged(dc)
	}
}

// AddChild appends child to the top of this container's z-order and
// adopts its subtree onto this container's display.
func (c *ContainerBase) AddChild(child Container) {
	child.setParent(c.self)
	c.children = append(c.children, child)
	setDisplayTree(child, c.display, false)
}

// RemoveChild detaches child from this container. If the child or any
// of its descendants is animating, detachment is deferred: the child
// stays attached, keeps its display, and is marked for removal once
// the animation signal clears. Returns true when child was detached.
//
// Passing a container that is not a child is a programmer error and
// panics.
func (c *ContainerBase) RemoveChild(child Container) bool {
	if child.Parent() != c.self || c.PositionOf(child) < 0 {
		panic(fmt.Sprintf("wm: RemoveChild: %v is not a child of %v", child, c.self))
	}
	if child.IsAnimating() {
		child.markDeferredRemoval(true)
		return false
	}
	c.detachChild(child)
	child.markDeferredRemoval(false)
	setDisplayTree(child, nil, false)
	// Descendants already marked for deferred removal lost their last
	// path back to a display; force them out now.
	for _, grandchild := range snapshotChildren(child) {
		completeDeferred(grandchild)
	}
	return true
}

// RemoveImmediately detaches this container unconditionally: it is cut
// from its parent and display, its controller link is severed, and all
// children are force-removed regardless of animation state. This is
// the escape hatch invoked once a deferred removal's animation has
// finished.
func (c *ContainerBase) RemoveImmediately() {
	if c.parent != nil {
		c.parent.detachChild(c.self)
	}
	c.display = nil
	c.deferredRemoval = false
	children := c.children
	c.children = nil
	for _, child := range children {
		child.RemoveImmediately()
	}
	if c.controller != nil {
		c.controller.containerRemoved()
		c.controller = nil
	}
}

// Reparent moves this container and its subtree onto target, placed at
// the top or bottom of the target's z-order. Moving to the current
// display is a no-op. Detach and attach happen within the same call so
// observers never see the container without a parent; display-changed
// hooks fire exactly once per moved node, before Reparent returns.
func (c *ContainerBase) Reparent(target *DisplayContent, bounds geometry.Rect, onTop bool) {
	if target == nil {
		panic("wm: Reparent: target display is nil")
	}
	if c.display == target {
		return
	}
	if c.parent != nil {
		c.parent.detachChild(c.self)
	}
	target.insertChild(c.self, onTop)
	c.bounds = bounds
	setDisplayTree(c.self, target, true)
}

func (c *ContainerBase) setParent(parent Container) {
	c.parent = parent
}

func (c *ContainerBase) setDisplay(dc *DisplayContent) {
	c.display = dc
}

func (c *ContainerBase) setController(controller Controller) {
	c.controller = controller
}

func (c *ContainerBase) markDeferredRemoval(deferred bool) {
	c.deferredRemoval = deferred
}

// detachChild removes child from the sequence and clears its parent.
// Display and deferred bookkeeping are the caller's responsibility.
func (c *ContainerBase) detachChild(child Container) {
	for i, existing := range c.children {
		if existing == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			break
		}
	}
	child.setParent(nil)
}

// insertChild places child at the top or bottom of the z-order.
func (c *ContainerBase) insertChild(child Container, onTop bool) {
	child.setParent(c.self)
	if onTop {
		c.children = append(c.children, child)
	} else {
		c.children = append([]Container{child}, c.children...)
	}
}

// setDisplayTree updates the display reference for c and its subtree.
// When notify is set, each node's display-changed hook fires exactly once.
func setDisplayTree(c Container, dc *DisplayContent, notify bool) {
	c.setDisplay(dc)
	if notify {
		c.OnDisplayChanged(dc)
	}
	for _, child := range c.Children() {
		setDisplayTree(child, dc, notify)
	}
}

// completeDeferred force-removes every node in c's subtree that was
// marked for deferred removal.
func completeDeferred(c Container) {
	if c.DeferredRemoval() {
		c.RemoveImmediately()
		return
	}
	for _, child := range snapshotChildren(c) {
		completeDeferred(child)
	}
}

// snapshotChildren copies the child sequence so walks survive removals.
func snapshotChildren(c Container) []Container {
	children := c.Children()
	if len(children) == 0 {
		return nil
	}
	out := make([]Container, len(children))
	copy(out, children)
	return out
}
