package wm

import (
	"fmt"

	"github.com/go-drift/stage/pkg/errors"
)

// DisplayContent is the root container for one display. Reparented
// containers are accepted at the top or bottom of its z-order.
type DisplayContent struct {
	ContainerBase
	id int
}

func newDisplayContent(id int) *DisplayContent {
	dc := &DisplayContent{id: id}
	dc.SetSelf(dc)
	// A display is its own display context; children inherit it.
	dc.display = dc
	return dc
}

// ID returns the display identifier.
func (dc *DisplayContent) ID() int {
	return dc.id
}

func (dc *DisplayContent) String() string {
	return fmt.Sprintf("display#%d", dc.id)
}

// AttachChild places child on this display at the top or bottom of the
// z-order and adopts its subtree.
func (dc *DisplayContent) AttachChild(child Container, onTop bool) {
	dc.insertChild(child, onTop)
	setDisplayTree(child, dc, false)
}

// CheckCompleteDeferredRemoval finishes any deferred removal on this
// display whose animation has since gone idle.
func (dc *DisplayContent) CheckCompleteDeferredRemoval() {
	for _, child := range snapshotChildren(dc) {
		checkDeferredTree(child)
	}
}

func checkDeferredTree(c Container) {
	if c.DeferredRemoval() && !c.IsAnimating() {
		c.RemoveImmediately()
		return
	}
	for _, child := range snapshotChildren(c) {
		checkDeferredTree(child)
	}
}

// Root owns the set of attached displays and resolves display
// identifiers for controllers.
type Root struct {
	displays []*DisplayContent
	nextID   int
}

// NewRoot creates an empty display registry.
func NewRoot() *Root {
	return &Root{}
}

// NewDisplay allocates the next display identifier and attaches a new
// display to the root.
func (r *Root) NewDisplay() *DisplayContent {
	dc := newDisplayContent(r.nextID)
	r.nextID++
	r.displays = append(r.displays, dc)
	return dc
}

// DisplayByID resolves a display identifier to its display.
func (r *Root) DisplayByID(id int) (*DisplayContent, error) {
	for _, dc := range r.displays {
		if dc.id == id {
			return dc, nil
		}
	}
	return nil, errors.NotFound("wm.Root.DisplayByID", "display %d is not attached", id)
}

// RemoveDisplay tears down the display with the given identifier,
// orphaning any containers still attached to it.
func (r *Root) RemoveDisplay(id int) error {
	for i, dc := range r.displays {
		if dc.id == id {
			r.displays = append(r.displays[:i], r.displays[i+1:]...)
			dc.RemoveImmediately()
			return nil
		}
	}
	return errors.NotFound("wm.Root.RemoveDisplay", "display %d is not attached", id)
}

// Displays returns the attached displays in creation order.
func (r *Root) Displays() []*DisplayContent {
	out := make([]*DisplayContent, len(r.displays))
	copy(out, r.displays)
	return out
}

// CheckCompleteDeferredRemoval sweeps every attached display.
func (r *Root) CheckCompleteDeferredRemoval() {
	for _, dc := range r.displays {
		dc.CheckCompleteDeferredRemoval()
	}
}
