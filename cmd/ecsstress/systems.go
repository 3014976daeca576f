package main

import (
	"log"

	"github.com/plus3/ecsreg/ecs"
)

// movementSystem integrates Velocity into Position every frame, the
// steady-state hot path this binary is built to put pressure on.
type movementSystem struct {
	desc  *ecs.ViewDescriptor
	Moved int64
}

func newMovementSystem() *movementSystem {
	return &movementSystem{desc: ecs.With[Velocity](ecs.With[Position](ecs.NewViewDescriptor()))}
}

func (s *movementSystem) Descriptor() *ecs.ViewDescriptor { return s.desc }

func (s *movementSystem) Process(r *ecs.Registry, c *ecs.Cursor) error {
	pos, _ := ecs.Fetch[Position](c)
	vel, _ := ecs.Fetch[Velocity](c)
	pos.X += vel.DX
	pos.Y += vel.DY
	s.Moved++
	return nil
}

// decaySystem ticks down Lifetime and, on expiry, queues the entity for
// destruction via Commands rather than mutating the registry mid-iteration.
type decaySystem struct {
	desc      *ecs.ViewDescriptor
	cmds      *ecs.Commands
	dt        float64
	Destroyed int64
}

func newDecaySystem(cmds *ecs.Commands) *decaySystem {
	return &decaySystem{desc: ecs.With[Lifetime](ecs.NewViewDescriptor()), cmds: cmds}
}

func (s *decaySystem) Descriptor() *ecs.ViewDescriptor { return s.desc }

func (s *decaySystem) Process(r *ecs.Registry, c *ecs.Cursor) error {
	life, _ := ecs.Fetch[Lifetime](c)
	life.Remaining -= s.dt
	if life.Remaining <= 0 {
		s.cmds.Destroy(c.Entity())
		s.Destroyed++
	}
	return nil
}

func (s *decaySystem) PostProcess(r *ecs.Registry, c *ecs.Cursor) error {
	s.cmds.Flush(r)
	return nil
}

// aiSystem cycles AI.State across four states, exercising archetype churn by
// attaching and detaching Target as a side effect of state transitions.
type aiSystem struct {
	desc        *ecs.ViewDescriptor
	Transitions int64
}

func newAISystem() *aiSystem {
	return &aiSystem{desc: ecs.With[AI](ecs.NewViewDescriptor())}
}

func (s *aiSystem) Descriptor() *ecs.ViewDescriptor { return s.desc }

func (s *aiSystem) Process(r *ecs.Registry, c *ecs.Cursor) error {
	ai, _ := ecs.Fetch[AI](c)
	ai.State = (ai.State + 1) % 4
	s.Transitions++
	switch ai.State {
	case 0:
		return ecs.Remove[Target](r, c.Entity())
	case 2:
		return ecs.AddValue(r, c.Entity(), Target{})
	default:
		return nil
	}
}

// reportingSystem logs a population snapshot on scheduler start and end.
type reportingSystem struct{}

func (s *reportingSystem) Descriptor() *ecs.ViewDescriptor { return nil }

func (s *reportingSystem) Start(r *ecs.Registry, c *ecs.Cursor) error {
	stats := r.Stats()
	log.Printf("scheduler started: %d entities, %d archetypes, %d pools",
		stats.EntityCount, stats.ArchetypeCount, stats.ComponentPoolCount)
	return nil
}

func (s *reportingSystem) End(r *ecs.Registry, c *ecs.Cursor) error {
	stats := r.Stats()
	log.Printf("scheduler ended: %d entities, %d archetypes, %d pools",
		stats.EntityCount, stats.ArchetypeCount, stats.ComponentPoolCount)
	return nil
}

// spawnSystem is enqueued as a single-frame system to backfill population
// lost to decaySystem, keeping entity count roughly steady over the run.
type spawnSystem struct {
	count   int
	Spawned *int64
}

func (s *spawnSystem) Descriptor() *ecs.ViewDescriptor { return nil }

func (s *spawnSystem) SingleFrame(r *ecs.Registry, c *ecs.Cursor) error {
	for i := 0; i < s.count; i++ {
		spawnRandomEntity(r, 1+i%5)
	}
	if s.Spawned != nil {
		*s.Spawned += int64(s.count)
	}
	return nil
}
