/*
Package ecs provides an Entity-Component-System registry for games and
simulations.

The registry associates arbitrarily typed component values with lightweight
entity handles, partitions entities by the exact set of component types they
carry (their archetype), answers filtered queries efficiently, and drives a
lifecycle of user-supplied systems across a fixed set of phases.

Core Concepts:

  - Entity: a 64-bit (index, version) handle into the registry's entity table.
  - Component: a typed value attached to an entity, stored in a per-type pool.
  - Archetype: the interned set of component types an entity currently has.
  - View: a snapshot of the archetypes matching an include/exclude query.
  - System: a user behavior bound to a ViewDescriptor and one or more
    lifecycle hooks (Start, PreProcess, Process, PostProcess, SingleFrame, End).

Basic Usage:

	reg := ecs.NewRegistry()

	e := reg.Create()
	ecs.MustAddValue(reg, e, Position{X: 1, Y: 2})
	ecs.MustAddValue(reg, e, Velocity{DX: 1, DY: 0})

	desc := ecs.With[Velocity](ecs.With[Position](ecs.NewViewDescriptor()))
	view, _ := desc.Build(reg)

	for entity, row := range ecs.Components2[Position, Velocity](view) {
		row.A.X += row.B.DX
		row.A.Y += row.B.DY
		_ = entity
	}

The registry is single-threaded: systems run to completion on the calling
goroutine, one at a time, in registration order.
*/
package ecs
