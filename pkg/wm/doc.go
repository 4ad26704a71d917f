// Package wm implements the window container tree at the heart of the
// Stage compositor core.
//
// # Containers and controllers
//
// A [Container] is a node in an ordered tree of visual groupings:
// a [DisplayContent] hosts [Stack]s, a Stack hosts [Task]s. Child order
// is z-order; a higher position index means closer to the top. External
// systems never hold containers directly. They hold a [Controller],
// a façade bound to exactly one container that mediates creation,
// removal, and reparenting requests.
//
// # Deferred removal
//
// Tearing down a container mid-animation produces visible artifacts, so
// removal is gated on animation state. [Controller.RemoveContainer]
// always severs the controller/container link immediately in both
// directions, but the container itself only detaches from the tree if
// no descendant is animating. Otherwise it is marked for deferred
// removal and stays attached until the animation signal clears and
// something calls [Container.RemoveImmediately], typically via
// [DisplayContent.CheckCompleteDeferredRemoval].
//
// The tree is a pure structural machine: animation state is injected
// through [Container.SetAnimationState] by the renderer (or by
// [Animator], which bridges animation controllers to that seam).
//
// # Threading
//
// All tree mutations must run on one serialization thread. Operations
// run to completion without suspension and the package takes no locks.
// External events marshal onto that thread via the dispatch package.
package wm
