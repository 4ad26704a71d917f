package wm

import (
	"github.com/go-drift/stage/pkg/animation"
	"github.com/go-drift/stage/pkg/dispatch"
)

// Animator feeds animation controller status into container animation
// state. The tree stays a pure structural machine; the animator is the
// glue that marks a container animating while a transition runs and
// sweeps deferred removals once it completes.
//
// Completion callbacks arrive on the animation loop, so the animator
// marshals them back onto the serialization thread via dispatch before
// touching the tree.
type Animator struct {
	root *Root
}

// NewAnimator creates an animator that sweeps deferred removals under
// root when tracked animations complete.
func NewAnimator(root *Root) *Animator {
	return &Animator{root: root}
}

// Track marks container as animating until ctrl completes, then
// returns it to idle and sweeps deferred removals. Returns an
// unsubscribe function that detaches the animator from ctrl without
// changing the container's state.
func (a *Animator) Track(container Container, ctrl *animation.Controller) func() {
	container.SetAnimationState(AnimationRunning)
	return ctrl.AddStatusListener(func(status animation.Status) {
		if status != animation.StatusCompleted {
			return
		}
		dispatch.Dispatch(func() {
			container.SetAnimationState(AnimationIdle)
			a.root.CheckCompleteDeferredRemoval()
		})
	})
}
