package entity

import (
	"github.com/oomph-ac/scout/world"
	"github.com/sasha-s/go-deadlock"
)

// entry holds the capabilities resolved for one object at registration.
type entry struct {
	obj        any
	scannable  Scannable
	pickupable Pickupable
}

// Registry maps world handles to the capabilities of the objects behind them. The
// capabilities of an object are resolved once, when it is registered.
type Registry struct {
	entries map[world.Handle]entry

	deadlock.RWMutex
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[world.Handle]entry)}
}

// Register associates obj with the handle passed, replacing any previous object.
func (r *Registry) Register(h world.Handle, obj any) {
	if h == world.NoHandle || obj == nil {
		return
	}
	e := entry{obj: obj}
	e.scannable, _ = obj.(Scannable)
	e.pickupable, _ = obj.(Pickupable)

	r.Lock()
	r.entries[h] = e
	r.Unlock()
}

// Unregister removes the object with the handle passed.
func (r *Registry) Unregister(h world.Handle) {
	r.Lock()
	delete(r.entries, h)
	r.Unlock()
}

// Object returns the raw object registered under the handle.
func (r *Registry) Object(h world.Handle) (any, bool) {
	r.RLock()
	defer r.RUnlock()
	e, ok := r.entries[h]
	return e.obj, ok
}

// Scannable returns the scannable capability of the object under the handle, if any.
func (r *Registry) Scannable(h world.Handle) (Scannable, bool) {
	r.RLock()
	defer r.RUnlock()
	e := r.entries[h]
	return e.scannable, e.scannable != nil
}

// Pickupable returns the pickupable capability of the object under the handle, if any.
func (r *Registry) Pickupable(h world.Handle) (Pickupable, bool) {
	r.RLock()
	defer r.RUnlock()
	e := r.entries[h]
	return e.pickupable, e.pickupable != nil
}

// Len returns the amount of registered objects.
func (r *Registry) Len() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.entries)
}
