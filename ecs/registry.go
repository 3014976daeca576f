package ecs

// Registry is the single public surface for entity lifecycle, component
// mutation, views and the scheduler. A zero Registry is not usable; build
// one with NewRegistry.
type Registry struct {
	entities        *entityTable
	components      *componentRegistry
	archetypes      *archetypeIndex
	entityArchetype []*Archetype // index by entity.Index(); nil means no components
	scheduler       *scheduler
	refs            *entityRefCache
}

// NewRegistry returns an empty Registry ready for entity creation.
func NewRegistry() *Registry {
	r := &Registry{
		entities:   newEntityTable(),
		components: newComponentRegistry(),
		archetypes: newArchetypeIndex(),
		scheduler:  newScheduler(),
	}
	r.refs = newEntityRefCache()
	return r
}

// Create allocates a fresh entity with no components.
func (r *Registry) Create() Entity {
	e := r.entities.create()
	idx := int(e.Index())
	for len(r.entityArchetype) <= idx {
		r.entityArchetype = append(r.entityArchetype, nil)
	}
	r.entityArchetype[idx] = nil
	return e
}

// Validate reports whether e currently names a live entity in this registry.
func (r *Registry) Validate(e Entity) error {
	if !r.entities.validate(e) {
		return InvalidEntityError{Entity: e}
	}
	return nil
}

// Destroy removes e and every component it carries. Touches only the pools
// its archetype actually references, never a full scan of every registered
// component type.
func (r *Registry) Destroy(e Entity) error {
	if err := r.Validate(e); err != nil {
		return err
	}
	idx := int(e.Index())
	if arch := r.entityArchetype[idx]; arch != nil {
		for _, id := range arch.ids {
			if p := r.components.poolByID(id); p != nil {
				p.delete(e)
			}
		}
		arch.removeEntity(e)
		r.entityArchetype[idx] = nil
	}
	r.entities.destroy(e)
	return nil
}

// EntitiesCount returns the number of currently live entities.
func (r *Registry) EntitiesCount() int { return r.entities.count() }

// ComponentPoolsCount returns the number of component pools that currently
// hold at least one value.
func (r *Registry) ComponentPoolsCount() int { return r.components.activePoolCount() }

// ArchetypeCount returns the number of interned archetypes, including ones
// that have since gone empty but have not been Clean-ed.
func (r *Registry) ArchetypeCount() int { return r.archetypes.count() }

// RegisterComponent pre-creates T's pool so a later view referencing T does
// not fail with InvalidView just because no entity has yet carried it.
func RegisterComponent[T any](r *Registry) ComponentID {
	return registerComponent[T](r.components)
}

// Exists reports whether T's pool has ever been created (by
// RegisterComponent or by use), independent of any particular entity.
func Exists[T any](r *Registry) bool {
	_, ok := lookupID[T](r.components)
	return ok
}

// archetypeFor returns the archetype e currently belongs to, or nil.
func (r *Registry) archetypeFor(e Entity) *Archetype {
	idx := int(e.Index())
	if idx >= len(r.entityArchetype) {
		return nil
	}
	return r.entityArchetype[idx]
}

// addComponentType moves e into the archetype that is its current set plus
// id, creating that archetype if necessary. No-op if e's archetype already
// has id.
func (r *Registry) addComponentType(e Entity, id ComponentID) *Archetype {
	idx := int(e.Index())
	old := r.entityArchetype[idx]
	if old != nil && old.Has(id) {
		return old
	}
	var ids []ComponentID
	if old != nil {
		ids = append(append(ids, old.ids...), id)
	} else {
		ids = []ComponentID{id}
	}
	next := r.archetypes.getOrCreate(sortedIDs(ids))
	if old != nil {
		old.removeEntity(e)
	}
	next.addEntity(e)
	r.entityArchetype[idx] = next
	return next
}

// removeComponentType moves e into the archetype that is its current set
// minus id. No-op if e's archetype does not have id. Returns nil if the
// resulting set is empty.
func (r *Registry) removeComponentType(e Entity, id ComponentID) *Archetype {
	idx := int(e.Index())
	old := r.entityArchetype[idx]
	if old == nil || !old.Has(id) {
		return old
	}
	ids := make([]ComponentID, 0, len(old.ids)-1)
	for _, t := range old.ids {
		if t != id {
			ids = append(ids, t)
		}
	}
	old.removeEntity(e)
	if len(ids) == 0 {
		r.entityArchetype[idx] = nil
		return nil
	}
	next := r.archetypes.getOrCreate(ids)
	next.addEntity(e)
	r.entityArchetype[idx] = next
	return next
}

// Clean drops every component pool with no remaining values and every
// archetype that referenced one of them. Collects the to-remove set before
// mutating either the pool list or the archetype index.
func (r *Registry) Clean() {
	var empty []ComponentID
	for id, p := range r.components.pools {
		if p != nil && p.count() == 0 {
			empty = append(empty, ComponentID(id))
		}
	}
	for _, id := range empty {
		r.archetypes.dropWith(id)
		r.components.resetPool(id)
	}
}
