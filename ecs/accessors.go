package ecs

// CreateWith allocates a fresh entity and attaches an initial component
// value to it in a single step.
func CreateWith[T any](r *Registry, v T) (Entity, error) {
	e := r.Create()
	if err := AddValue(r, e, v); err != nil {
		return e, err
	}
	return e, nil
}

// Add attaches the zero value of T to e if e does not already carry a T.
// Idempotent: a no-op, not an error, if e already has one.
func Add[T any](r *Registry, e Entity) error {
	var zero T
	return AddValue(r, e, zero)
}

// AddValue attaches v to e if e does not already carry a T. Idempotent: if e
// already has a T, the existing value is kept and v is discarded.
func AddValue[T any](r *Registry, e Entity, v T) error {
	if err := r.Validate(e); err != nil {
		return err
	}
	pool, id := poolFor[T](r.components)
	if pool.Has(e) {
		return nil
	}
	r.addComponentType(e, id)
	pool.Add(e, v)
	return nil
}

// MustAddValue is AddValue for call sites (tests, examples) that know e is
// live and want to keep the line short.
func MustAddValue[T any](r *Registry, e Entity, v T) {
	if err := AddValue(r, e, v); err != nil {
		panic(err)
	}
}

// Set writes the zero value of T into e, attaching the component first if
// necessary.
func Set[T any](r *Registry, e Entity) error {
	var zero T
	return SetValue(r, e, zero)
}

// SetValue writes v into e's T component, attaching it (and performing the
// archetype transition) first if e did not already carry one. Unlike
// AddValue, an existing value is always overwritten.
func SetValue[T any](r *Registry, e Entity, v T) error {
	if err := r.Validate(e); err != nil {
		return err
	}
	pool, id := poolFor[T](r.components)
	if !pool.Has(e) {
		r.addComponentType(e, id)
		pool.Add(e, v)
		return nil
	}
	ref, _ := pool.GetRef(e)
	*ref = v
	return nil
}

// Get returns e's T component. Returns InvalidComponentError if T's pool
// does not exist, MissingComponentError if e does not carry one.
func Get[T any](r *Registry, e Entity) (T, error) {
	var zero T
	if err := r.Validate(e); err != nil {
		return zero, err
	}
	pool, _, ok := poolLookup[T](r.components)
	if !ok {
		return zero, InvalidComponentError{Type: typeOf[T]()}
	}
	v, ok := pool.Get(e)
	if !ok {
		return zero, MissingComponentError{Entity: e, Type: typeOf[T]()}
	}
	return v, nil
}

// GetRef returns a pointer to e's T component, live until the next
// structural change. Raises MissingComponentError when absent; see
// GetRefOrNil for a non-raising variant.
func GetRef[T any](r *Registry, e Entity) (*T, error) {
	if err := r.Validate(e); err != nil {
		return nil, err
	}
	pool, _, ok := poolLookup[T](r.components)
	if !ok {
		return nil, InvalidComponentError{Type: typeOf[T]()}
	}
	ref, ok := pool.GetRef(e)
	if !ok {
		return nil, MissingComponentError{Entity: e, Type: typeOf[T]()}
	}
	return ref, nil
}

// GetRefOrNil is the non-raising counterpart to GetRef: it returns nil
// instead of a MissingComponentError (or an InvalidComponentError) when the
// component is not available. Kept distinctly named from GetRef per the
// redesign decision that a "get reference" should raise by default.
func GetRefOrNil[T any](r *Registry, e Entity) *T {
	if r.Validate(e) != nil {
		return nil
	}
	pool, _, ok := poolLookup[T](r.components)
	if !ok {
		return nil
	}
	ref, _ := pool.GetRef(e)
	return ref
}

// GetOrNil returns e's T component, or nil if unavailable for any reason.
// Never raises.
func GetOrNil[T any](r *Registry, e Entity) *T {
	return GetRefOrNil[T](r, e)
}

// GetOrCreate returns e's T component, attaching a zero-valued one first if
// e did not already have one.
func GetOrCreate[T any](r *Registry, e Entity) (T, error) {
	var zero T
	if err := r.Validate(e); err != nil {
		return zero, err
	}
	pool, id := poolFor[T](r.components)
	if v, ok := pool.Get(e); ok {
		return v, nil
	}
	r.addComponentType(e, id)
	pool.Add(e, zero)
	return zero, nil
}

// GetOrCreateRef is GetOrCreate returning a pointer to the (possibly
// freshly attached) component.
func GetOrCreateRef[T any](r *Registry, e Entity) (*T, error) {
	if err := r.Validate(e); err != nil {
		return nil, err
	}
	pool, id := poolFor[T](r.components)
	if ref, ok := pool.GetRef(e); ok {
		return ref, nil
	}
	var zero T
	r.addComponentType(e, id)
	pool.Add(e, zero)
	ref, _ := pool.GetRef(e)
	return ref, nil
}

// Has reports whether e currently carries a T. Never raises: an invalid
// entity or an unregistered type both simply report false.
func Has[T any](r *Registry, e Entity) bool {
	if r.Validate(e) != nil {
		return false
	}
	pool, _, ok := poolLookup[T](r.components)
	return ok && pool.Has(e)
}

// Remove drops e's T component if present. A no-op, not an error, if T's
// pool exists but e does not carry one; see GetAndRemove when the absence of
// a value to return back should be surfaced as MissingComponentError.
// Returns InvalidComponentError if T's pool does not exist.
func Remove[T any](r *Registry, e Entity) error {
	if err := r.Validate(e); err != nil {
		return err
	}
	pool, id, ok := poolLookup[T](r.components)
	if !ok {
		return InvalidComponentError{Type: typeOf[T]()}
	}
	if !pool.Has(e) {
		return nil
	}
	pool.Remove(e)
	r.removeComponentType(e, id)
	return nil
}

// GetAndRemove removes and returns e's T component, raising
// MissingComponentError if it did not have one.
func GetAndRemove[T any](r *Registry, e Entity) (T, error) {
	var zero T
	if err := r.Validate(e); err != nil {
		return zero, err
	}
	pool, id, ok := poolLookup[T](r.components)
	if !ok {
		return zero, InvalidComponentError{Type: typeOf[T]()}
	}
	v, ok := pool.Remove(e)
	if !ok {
		return zero, MissingComponentError{Entity: e, Type: typeOf[T]()}
	}
	r.removeComponentType(e, id)
	return v, nil
}

// RemoveAll strips e of every component it carries, leaving it alive but
// archetype-less.
func RemoveAll(r *Registry, e Entity) error {
	if err := r.Validate(e); err != nil {
		return err
	}
	idx := int(e.Index())
	arch := r.entityArchetype[idx]
	if arch == nil {
		return nil
	}
	for _, id := range arch.ids {
		if p := r.components.poolByID(id); p != nil {
			p.delete(e)
		}
	}
	arch.removeEntity(e)
	r.entityArchetype[idx] = nil
	return nil
}

// ComponentsCount returns how many component types e currently carries.
func ComponentsCount(r *Registry, e Entity) (int, error) {
	if err := r.Validate(e); err != nil {
		return 0, err
	}
	if arch := r.archetypeFor(e); arch != nil {
		return len(arch.ids), nil
	}
	return 0, nil
}

// IsEmpty reports whether e carries no components. Never raises: an invalid
// entity reports true.
func IsEmpty(r *Registry, e Entity) bool {
	n, err := ComponentsCount(r, e)
	return err != nil || n == 0
}
