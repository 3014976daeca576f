package ecs

import "reflect"

// ViewDescriptor builds an include/exclude query over component types,
// resolved against a Registry's ArchetypeIndex by Build. Types are recorded
// by reflect.Type, not by ComponentID, so a descriptor can be assembled
// before any of its types have been registered; Build is where an unknown
// type becomes an error.
type ViewDescriptor struct {
	withTypes    []reflect.Type
	withoutTypes []reflect.Type
}

// NewViewDescriptor returns an empty descriptor (matches every archetype).
func NewViewDescriptor() *ViewDescriptor {
	return &ViewDescriptor{}
}

// With requires T to be present.
func With[T any](d *ViewDescriptor) *ViewDescriptor {
	d.withTypes = append(d.withTypes, typeOf[T]())
	return d
}

// Without requires T to be absent.
func Without[T any](d *ViewDescriptor) *ViewDescriptor {
	d.withoutTypes = append(d.withoutTypes, typeOf[T]())
	return d
}

// Build resolves the descriptor's types against r and returns a View
// holding the snapshot of archetypes that currently match. Returns
// InvalidViewError naming every type that has never been registered or
// used.
func (d *ViewDescriptor) Build(r *Registry) (*View, error) {
	withIDs, missing := resolveIDs(r, d.withTypes, nil)
	withoutIDs, missing := resolveIDs(r, d.withoutTypes, missing)
	if len(missing) > 0 {
		return nil, InvalidViewError{Types: missing}
	}
	return &View{
		registry:   r,
		archetypes: r.archetypes.match(withIDs, withoutIDs),
	}, nil
}

func resolveIDs(r *Registry, types []reflect.Type, missing []reflect.Type) ([]ComponentID, []reflect.Type) {
	ids := make([]ComponentID, 0, len(types))
	for _, t := range types {
		id, ok := r.components.idsByType[t]
		if !ok {
			missing = append(missing, t)
			continue
		}
		ids = append(ids, id)
	}
	return ids, missing
}

// View is a snapshot of the archetypes that matched a ViewDescriptor at
// Build time. The archetype set itself does not change as the view is used
// (an entity created afterward in a newly matching archetype is not seen),
// but component values and entity membership within those archetypes are
// read live at iteration time.
type View struct {
	registry   *Registry
	archetypes []*Archetype
}

// EntitiesCount returns the number of currently live entities across the
// view's snapshotted archetypes. Computed live, not cached at Build time.
func (v *View) EntitiesCount() int {
	n := 0
	for _, a := range v.archetypes {
		n += a.EntityCount()
	}
	return n
}

// ArchetypeCount returns the number of archetypes in the view's snapshot.
func (v *View) ArchetypeCount() int { return len(v.archetypes) }
