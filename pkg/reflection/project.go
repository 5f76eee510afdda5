package reflection

// Project is the arena that owns every reflection of one analyzer run.
// IDs are assigned densely from 1 in creation order, and that order is
// preserved by List, IDs and ForEach even after removals.
//
// A Project is owned by a single run and is not safe for concurrent use;
// the host invokes the lifecycle strictly sequentially.
type Project struct {
	reflections map[ID]*Reflection
	order       []ID
	nextID      ID
}

// ProjectOption defines a function that configures a Project instance.
type ProjectOption func(*Project)

// WithCapacity sizes the arena for an expected number of reflections.
func WithCapacity(capacity int) ProjectOption {
	return func(p *Project) {
		p.reflections = make(map[ID]*Reflection, capacity)
		p.order = make([]ID, 0, capacity)
	}
}

// NewProject creates an empty Project with optional configuration.
func NewProject(opts ...ProjectOption) *Project {
	p := &Project{
		reflections: make(map[ID]*Reflection),
		nextID:      1,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Create allocates a new reflection, assigns it the next ID and attaches
// it to the given parent. OriginalName starts out equal to name; renames
// later mutate Name only. Pass None to create a root reflection.
func (p *Project) Create(kind Kind, name string, parent ID) *Reflection {
	r := &Reflection{
		ID:           p.nextID,
		Kind:         kind,
		Name:         name,
		OriginalName: name,
		Parent:       parent,
	}
	p.nextID++

	if owner, ok := p.reflections[parent]; ok {
		owner.Children = append(owner.Children, r.ID)
	} else {
		r.Parent = None
	}

	p.reflections[r.ID] = r
	p.order = append(p.order, r.ID)
	return r
}

// Get returns a reflection by id and whether it is live.
func (p *Project) Get(id ID) (*Reflection, bool) {
	r, ok := p.reflections[id]
	return r, ok
}

// Contains checks if a reflection is live without returning it.
func (p *Project) Contains(id ID) bool {
	_, ok := p.reflections[id]
	return ok
}

// Remove detaches a reflection from its parent and drops it from the
// arena. Children of the removed reflection are not removed; whoever
// removes a reflection is responsible for relocating or clearing its
// children first. Returns false if the id is not live.
func (p *Project) Remove(id ID) bool {
	r, ok := p.reflections[id]
	if !ok {
		return false
	}

	if owner, ok := p.reflections[r.Parent]; ok {
		owner.Children = dropID(owner.Children, id)
	}

	delete(p.reflections, id)
	return true
}

// Len returns the number of live reflections.
func (p *Project) Len() int {
	return len(p.reflections)
}

// List returns all live reflections in creation order.
func (p *Project) List() []*Reflection {
	out := make([]*Reflection, 0, len(p.reflections))
	for _, id := range p.order {
		if r, ok := p.reflections[id]; ok {
			out = append(out, r)
		}
	}
	return out
}

// IDs returns the ids of all live reflections in creation order.
func (p *Project) IDs() []ID {
	out := make([]ID, 0, len(p.reflections))
	for _, id := range p.order {
		if _, ok := p.reflections[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// ForEach applies a function to each live reflection in creation order.
// If the function returns false, iteration stops early.
func (p *Project) ForEach(fn func(r *Reflection) bool) {
	for _, id := range p.order {
		if r, ok := p.reflections[id]; ok {
			if !fn(r) {
				break
			}
		}
	}
}

// ChildrenOf resolves the children of a reflection, skipping ids that are
// no longer live.
func (p *Project) ChildrenOf(id ID) []*Reflection {
	r, ok := p.reflections[id]
	if !ok {
		return nil
	}

	out := make([]*Reflection, 0, len(r.Children))
	for _, childID := range r.Children {
		if child, ok := p.reflections[childID]; ok {
			out = append(out, child)
		}
	}
	return out
}

// Copy returns a deep copy of the project. IDs, creation order and the
// id sequence are preserved, so a copy behaves exactly like the
// original under further mutation.
func (p *Project) Copy() *Project {
	clone := NewProject(WithCapacity(len(p.reflections)))
	clone.nextID = p.nextID

	for _, id := range p.order {
		r, ok := p.reflections[id]
		if !ok {
			continue
		}

		copied := *r
		copied.Children = append([]ID(nil), r.Children...)
		if r.Comment != nil {
			comment := *r.Comment
			copied.Comment = &comment
		}

		clone.reflections[copied.ID] = &copied
		clone.order = append(clone.order, copied.ID)
	}

	return clone
}

// Roots returns all live reflections without a parent, in creation order.
func (p *Project) Roots() []*Reflection {
	var out []*Reflection
	for _, id := range p.order {
		if r, ok := p.reflections[id]; ok && r.Parent == None {
			out = append(out, r)
		}
	}
	return out
}

// dropID removes the first occurrence of id from ids, preserving order.
func dropID(ids []ID, id ID) []ID {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
