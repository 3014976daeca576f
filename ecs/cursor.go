package ecs

import "iter"

// Cursor is a reusable handle into one step of a View's iteration: the
// current entity, its position, and whether this is the first or last step.
// One Cursor instance is reused across an entire iteration; callers must not
// retain a Cursor past the step that produced it.
type Cursor struct {
	registry *Registry
	view     *View
	archIdx  int
	slotIdx  int

	iteration int
	entity    Entity

	cache map[ComponentID]any

	lastComputed bool
	lastVal      bool
}

func (c *Cursor) reset(archIdx, slotIdx, iteration int, e Entity) {
	c.archIdx, c.slotIdx, c.iteration, c.entity = archIdx, slotIdx, iteration, e
	c.lastComputed = false
	if c.cache == nil {
		c.cache = make(map[ComponentID]any, 4)
	} else {
		clear(c.cache)
	}
}

// Entity returns the entity this step is visiting.
func (c *Cursor) Entity() Entity { return c.entity }

// Iteration returns the monotonic step counter for this pass over the
// view, starting at 0.
func (c *Cursor) Iteration() int { return c.iteration }

// Archetype returns the view archetype this step is iterating, the one the
// entity belonged to when the step was reached. A structural change to the
// entity during the step does not update it.
func (c *Cursor) Archetype() *Archetype { return c.view.archetypes[c.archIdx] }

// SlotIndex returns the entity's position within its archetype's member
// list. Not stable across a structural change to that archetype.
func (c *Cursor) SlotIndex() int { return c.slotIdx }

// IsFirst reports whether this is the first step of the iteration.
func (c *Cursor) IsFirst() bool { return c.iteration == 0 }

// IsLast reports whether this is the final step of the iteration. Computed
// by a one-shot forward scan the first time it is asked in a given step,
// then cached for the rest of that step.
func (c *Cursor) IsLast() bool {
	if c.lastComputed {
		return c.lastVal
	}
	c.lastComputed = true
	c.lastVal = !hasLiveEntityFrom(c.view, c.archIdx, c.slotIdx+1)
	return c.lastVal
}

func hasLiveEntityFrom(v *View, archIdx, slotIdx int) bool {
	if archIdx < len(v.archetypes) {
		a := v.archetypes[archIdx]
		for pos := slotIdx; pos < a.entities.Size(); pos++ {
			if ent, ok := a.entities.TryGet(pos); ok && ent != Invalid {
				return true
			}
		}
	}
	for ai := archIdx + 1; ai < len(v.archetypes); ai++ {
		a := v.archetypes[ai]
		for pos := 0; pos < a.entities.Size(); pos++ {
			if ent, ok := a.entities.TryGet(pos); ok && ent != Invalid {
				return true
			}
		}
	}
	return false
}

// Fetch returns a pointer to the cursor's current entity's T component,
// memoized for the remainder of this step: a second Fetch[T] call in the
// same step is a map lookup, not a pool lookup.
func Fetch[T any](c *Cursor) (*T, bool) {
	pool, id, ok := poolLookup[T](c.registry.components)
	if !ok {
		return nil, false
	}
	if cached, hit := c.cache[id]; hit {
		ref, _ := cached.(*T)
		return ref, ref != nil
	}
	ref, ok := pool.GetRef(c.entity)
	if !ok {
		c.cache[id] = (*T)(nil)
		return nil, false
	}
	c.cache[id] = ref
	return ref, true
}

// Groups iterates every live entity across the view's archetypes in
// archetype-registration order, yielding a shared, mutated-in-place Cursor
// at each step.
func (v *View) Groups() iter.Seq[*Cursor] {
	return func(yield func(*Cursor) bool) {
		c := &Cursor{registry: v.registry, view: v}
		iteration := 0
		for ai, a := range v.archetypes {
			for pos := 0; pos < a.entities.Size(); pos++ {
				ent, ok := a.entities.TryGet(pos)
				if !ok || ent == Invalid {
					continue
				}
				c.reset(ai, pos, iteration, ent)
				if !yield(c) {
					return
				}
				iteration++
			}
		}
	}
}

// Entities iterates the view's live entities without exposing a Cursor.
func (v *View) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for c := range v.Groups() {
			if !yield(c.Entity()) {
				return
			}
		}
	}
}

// IndexedEntities iterates the view's live entities paired with a
// monotonic step index.
func (v *View) IndexedEntities() iter.Seq2[int, Entity] {
	return func(yield func(int, Entity) bool) {
		for c := range v.Groups() {
			if !yield(c.Iteration(), c.Entity()) {
				return
			}
		}
	}
}
