package ecs

import (
	"weak"

	"github.com/kamstrup/intmap"
)

// EntityRef is a convenience handle that resolves to a live Entity on
// demand, or reports that it no longer can. Holding an EntityRef does not
// keep its entity alive and does not pin archetype storage; it is meant for
// long-lived references (a "target" held by another entity) that must not
// silently resurrect if the slot is reused.
type EntityRef struct {
	entity   Entity
	registry *Registry
}

// Resolve returns the ref's entity and true if it is still live, or
// Invalid and false otherwise.
func (ref *EntityRef) Resolve() (Entity, bool) {
	if ref.registry.Validate(ref.entity) != nil {
		return Invalid, false
	}
	return ref.entity, true
}

// Valid reports whether Resolve would succeed.
func (ref *EntityRef) Valid() bool {
	_, ok := ref.Resolve()
	return ok
}

// entityRefCache deduplicates EntityRef allocation: repeated CreateEntityRef
// calls for the same live entity return the same object, via a weak pointer
// keyed by the full (index, version) value so a reused slot never hands back
// a stale ref.
type entityRefCache struct {
	byEntity *intmap.Map[uint64, weak.Pointer[EntityRef]]
}

func newEntityRefCache() *entityRefCache {
	return &entityRefCache{byEntity: intmap.New[uint64, weak.Pointer[EntityRef]](64)}
}

// CreateEntityRef returns (creating if necessary) the EntityRef for e.
func (r *Registry) CreateEntityRef(e Entity) (*EntityRef, error) {
	if err := r.Validate(e); err != nil {
		return nil, err
	}
	key := uint64(e)
	if wp, ok := r.refs.byEntity.Get(key); ok {
		if ref := wp.Value(); ref != nil {
			return ref, nil
		}
		r.refs.byEntity.Del(key)
	}
	ref := &EntityRef{entity: e, registry: r}
	r.refs.byEntity.Put(key, weak.Make(ref))
	return ref, nil
}
