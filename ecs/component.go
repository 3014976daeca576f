package ecs

import (
	"reflect"

	"github.com/kamstrup/intmap"
)

// ComponentID is a small integer assigned to a component type the first time
// it is registered or used, in assignment order. It stands in for the type
// itself wherever a stable, comparable, sortable identity is needed
// (archetype set hashing, pool indexing).
type ComponentID uint32

// componentPool is the type-erased surface every ComponentPool[T] satisfies,
// used by code that must act on "whatever component this archetype lists"
// without knowing T (Registry.Destroy, Registry.Clean).
type componentPool interface {
	id() ComponentID
	has(Entity) bool
	delete(Entity) bool
	count() int
}

// ComponentPool is a sparse set: sparse maps an entity's index to a position
// in dense, packed maps a dense position back to the owning entity's index.
// Values never move when an entity changes archetype; only archetype
// membership changes. Add is idempotent: it is a no-op when the entity
// already has the value.
type ComponentPool[T any] struct {
	cid    ComponentID
	dense  SlotArray[T]
	packed []uint32
	sparse *intmap.Map[uint32, int]
}

func newComponentPool[T any](cid ComponentID) *ComponentPool[T] {
	return &ComponentPool[T]{
		cid:    cid,
		sparse: intmap.New[uint32, int](64),
	}
}

func (p *ComponentPool[T]) id() ComponentID { return p.cid }

// Add stores v for e if e does not already carry this component, returning
// the dense position. If e already has the component, Add is a no-op and
// returns its existing position: the first value wins.
func (p *ComponentPool[T]) Add(e Entity, v T) int {
	if pos, ok := p.sparse.Get(e.Index()); ok {
		return pos
	}
	pos := p.dense.Add(v)
	if pos == len(p.packed) {
		p.packed = append(p.packed, e.Index())
	} else {
		p.packed[pos] = e.Index()
	}
	p.sparse.Put(e.Index(), pos)
	return pos
}

// Get returns e's component value and true, or the zero value and false.
func (p *ComponentPool[T]) Get(e Entity) (T, bool) {
	var zero T
	pos, ok := p.sparse.Get(e.Index())
	if !ok {
		return zero, false
	}
	v, _ := p.dense.TryGet(pos)
	return v, true
}

// GetRef returns a pointer to e's stored value, live until the next
// structural change to this pool. Not a contract across frames.
func (p *ComponentPool[T]) GetRef(e Entity) (*T, bool) {
	pos, ok := p.sparse.Get(e.Index())
	if !ok {
		return nil, false
	}
	return &p.dense.dense[pos], true
}

// Has reports whether e currently carries this component.
func (p *ComponentPool[T]) Has(e Entity) bool {
	_, ok := p.sparse.Get(e.Index())
	return ok
}

func (p *ComponentPool[T]) has(e Entity) bool { return p.Has(e) }

// Remove deletes e's value, returning it and true, or the zero value and
// false if e did not carry the component. The freed dense position may be
// reused by a later Add; callers must not rely on dense positions as a
// stable identity across a removal.
func (p *ComponentPool[T]) Remove(e Entity) (T, bool) {
	var zero T
	pos, ok := p.sparse.Get(e.Index())
	if !ok {
		return zero, false
	}
	old, _ := p.dense.RemoveAt(pos)
	p.sparse.Del(e.Index())
	return old, true
}

func (p *ComponentPool[T]) delete(e Entity) bool {
	_, ok := p.Remove(e)
	return ok
}

func (p *ComponentPool[T]) count() int { return p.dense.Count() }

// componentRegistry assigns ComponentIDs to types on first use and owns the
// type-erased pool for each.
type componentRegistry struct {
	idsByType map[reflect.Type]ComponentID
	typeByID  []reflect.Type
	pools     []componentPool
	factories []func() componentPool
}

func newComponentRegistry() *componentRegistry {
	return &componentRegistry{idsByType: make(map[reflect.Type]ComponentID)}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// registerComponent returns T's ComponentID, assigning and creating its pool
// on first call. Idempotent: components are registered by being used, not by
// scanning declarations.
func registerComponent[T any](r *componentRegistry) ComponentID {
	t := typeOf[T]()
	if id, ok := r.idsByType[t]; ok {
		return id
	}
	id := ComponentID(len(r.pools))
	r.idsByType[t] = id
	r.typeByID = append(r.typeByID, t)
	r.pools = append(r.pools, newComponentPool[T](id))
	r.factories = append(r.factories, func() componentPool { return newComponentPool[T](id) })
	return id
}

// lookupID returns T's ComponentID without registering it.
func lookupID[T any](r *componentRegistry) (ComponentID, bool) {
	id, ok := r.idsByType[typeOf[T]()]
	return id, ok
}

// poolFor returns T's concrete pool, registering it if necessary.
func poolFor[T any](r *componentRegistry) (*ComponentPool[T], ComponentID) {
	id := registerComponent[T](r)
	return r.pools[id].(*ComponentPool[T]), id
}

// poolLookup returns T's concrete pool and id without registering, reporting
// ok=false when T has never been used.
func poolLookup[T any](r *componentRegistry) (*ComponentPool[T], ComponentID, bool) {
	id, ok := lookupID[T](r)
	if !ok {
		return nil, 0, false
	}
	return r.pools[id].(*ComponentPool[T]), id, true
}

func (r *componentRegistry) poolByID(id ComponentID) componentPool {
	if int(id) >= len(r.pools) {
		return nil
	}
	return r.pools[id]
}

// activePoolCount returns the number of component pools that currently hold
// at least one component.
func (r *componentRegistry) activePoolCount() int {
	n := 0
	for _, p := range r.pools {
		if p != nil && p.count() > 0 {
			n++
		}
	}
	return n
}

// resetPool replaces an empty pool with a freshly constructed one of the
// same type, used by Registry.Clean to reclaim a drained pool's storage
// without forgetting that the type was registered.
func (r *componentRegistry) resetPool(id ComponentID) {
	r.pools[id] = r.factories[id]()
}
