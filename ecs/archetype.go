package ecs

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// ArchetypeID is the registration-order index of an interned Archetype.
type ArchetypeID uint32

// Archetype is the interned set of component types shared by every entity
// that currently belongs to it. Its id set is frozen at creation; an entity
// moving to a different set of types moves to a different Archetype, never
// mutates this one's ids.
type Archetype struct {
	id       ArchetypeID
	ids      []ComponentID // sorted, frozen
	hash     uint64
	entities SlotArray[Entity]  // position -> member entity, or Invalid
	index    *intmap.Map[uint32, int] // entity.Index() -> position in entities
	live     int // entities currently Invalid-free in entities; entities.Count() cannot tell, see removeEntity
}

func newArchetype(id ArchetypeID, ids []ComponentID, hash uint64) *Archetype {
	a := &Archetype{
		id:    id,
		ids:   ids,
		hash:  hash,
		index: intmap.New[uint32, int](64),
	}
	a.entities.SetInvalidate(true, Invalid)
	return a
}

// ID returns the archetype's interning id.
func (a *Archetype) ID() ArchetypeID { return a.id }

// ComponentIDs returns the sorted set of component ids this archetype holds.
// The returned slice must not be mutated.
func (a *Archetype) ComponentIDs() []ComponentID { return a.ids }

// Has reports whether this archetype's type set includes id.
func (a *Archetype) Has(id ComponentID) bool {
	_, found := slices.BinarySearch(a.ids, id)
	return found
}

// EntityCount returns the number of entities currently live in this
// archetype.
func (a *Archetype) EntityCount() int { return a.live }

// addEntity records e as a member, returning its position.
func (a *Archetype) addEntity(e Entity) int {
	pos := a.entities.Add(e)
	a.index.Put(e.Index(), pos)
	a.live++
	return pos
}

// removeEntity drops e from this archetype. Its slot is overwritten with
// Invalid in place rather than freed: RemoveAt would push the position onto
// entities' free-list, letting a later addEntity on this same archetype
// reuse it immediately, which would corrupt a view iteration already in
// flight over this archetype's positions. Replace leaves the position
// permanently allocated and Invalid, a transparent hole Groups already
// knows to skip.
func (a *Archetype) removeEntity(e Entity) {
	if _, ok := a.index.Get(e.Index()); !ok {
		return
	}
	a.entities.Replace(e, Invalid, func(x, y Entity) bool { return x == y })
	a.index.Del(e.Index())
	a.live--
}

// archetypeIndex interns archetypes by the order-independent hash of their
// sorted component id set, so that any two equal sets of types always
// resolve to the same *Archetype instance.
type archetypeIndex struct {
	byHash  *intmap.Map[uint64, *Archetype]
	ordered []*Archetype // registration order; iteration order for Match
}

func newArchetypeIndex() *archetypeIndex {
	return &archetypeIndex{byHash: intmap.New[uint64, *Archetype](64)}
}

// hashIDs computes an FNV-1a 64-bit hash over a sorted id set. Sorting first
// makes the hash order-independent: {A,B} and {B,A} hash identically.
func hashIDs(sorted []ComponentID) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for _, id := range sorted {
		h ^= uint64(id)
		h *= prime64
	}
	return h
}

// sortedIDs returns a sorted copy of ids.
func sortedIDs(ids []ComponentID) []ComponentID {
	out := slices.Clone(ids)
	slices.Sort(out)
	return out
}

// getOrCreate interns the archetype for the given (already sorted) id set,
// creating it on first use.
func (x *archetypeIndex) getOrCreate(sorted []ComponentID) *Archetype {
	h := hashIDs(sorted)
	if a, ok := x.byHash.Get(h); ok {
		return a
	}
	a := newArchetype(ArchetypeID(len(x.ordered)), sorted, h)
	x.byHash.Put(h, a)
	x.ordered = append(x.ordered, a)
	return a
}

// get looks up the archetype for an id set without creating it.
func (x *archetypeIndex) get(sorted []ComponentID) (*Archetype, bool) {
	return x.byHash.Get(hashIDs(sorted))
}

// match returns, in registration order, every archetype whose type set
// includes every id in with and excludes every id in without.
func (x *archetypeIndex) match(with, without []ComponentID) []*Archetype {
	var out []*Archetype
	for _, a := range x.ordered {
		ok := true
		for _, id := range with {
			if !a.Has(id) {
				ok = false
				break
			}
		}
		if ok {
			for _, id := range without {
				if a.Has(id) {
					ok = false
					break
				}
			}
		}
		if ok {
			out = append(out, a)
		}
	}
	return out
}

// dropWith removes every archetype referencing id from the index, returning
// the removed archetypes. Collects the removal set before mutating, since
// the index cannot be safely mutated while being ranged over.
func (x *archetypeIndex) dropWith(id ComponentID) []*Archetype {
	var drop []*Archetype
	for _, a := range x.ordered {
		if a.Has(id) {
			drop = append(drop, a)
		}
	}
	if len(drop) == 0 {
		return nil
	}
	for _, a := range drop {
		x.byHash.Del(a.hash)
	}
	kept := x.ordered[:0:0]
	for _, a := range x.ordered {
		if !slices.Contains(drop, a) {
			kept = append(kept, a)
		}
	}
	x.ordered = kept
	return drop
}

func (x *archetypeIndex) count() int { return len(x.ordered) }
