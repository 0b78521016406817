package resolver

import "sort"

// Registry owns the objects of one resolution session, keyed by id.
// Each session gets its own registry; two sessions never alias state.
type Registry struct {
	objects map[string]*Object
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{objects: make(map[string]*Object)}
}

// Add registers an object, replacing any object with the same id.
func (r *Registry) Add(obj *Object) {
	r.objects[obj.ID] = obj
}

// Remove drops an object from the registry.
func (r *Registry) Remove(id string) {
	delete(r.objects, id)
}

// Get returns the object with the given id.
func (r *Registry) Get(id string) (*Object, bool) {
	obj, ok := r.objects[id]
	return obj, ok
}

// Len returns the number of registered objects.
func (r *Registry) Len() int {
	return len(r.objects)
}

// IDs returns all object ids in sorted order. Pair scans iterate this
// slice so detection output is deterministic.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.objects))
	for id := range r.objects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns all objects ordered by id.
func (r *Registry) All() []*Object {
	ids := r.IDs()
	objs := make([]*Object, len(ids))
	for i, id := range ids {
		objs[i] = r.objects[id]
	}
	return objs
}
