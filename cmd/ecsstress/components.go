package main

import (
	"math/rand"

	"github.com/plus3/ecsreg/ecs"
)

// A handful of synthetic component types, standing in for the teacher
// generator's code-generated set, wide enough to produce a realistic spread
// of archetypes under churn.
type Position struct{ X, Y float64 }
type Velocity struct{ DX, DY float64 }
type Health struct{ Current, Max int }
type AI struct{ State int }
type Tag struct{ Name string }
type Lifetime struct{ Remaining float64 }
type Target struct{ X, Y float64 }
type Faction struct{ ID int }

// spawnRandomEntity creates one entity and attaches numComponents (at most
// eight) of the types above, chosen at random, so the registry ends
// up with a realistic number of distinct archetypes rather than one.
func spawnRandomEntity(r *ecs.Registry, numComponents int) {
	e := r.Create()
	attach := []func(){
		func() { ecs.MustAddValue(r, e, Position{X: rand.Float64() * 100, Y: rand.Float64() * 100}) },
		func() { ecs.MustAddValue(r, e, Velocity{DX: rand.Float64()*2 - 1, DY: rand.Float64()*2 - 1}) },
		func() { ecs.MustAddValue(r, e, Health{Current: 100, Max: 100}) },
		func() { ecs.MustAddValue(r, e, AI{State: rand.Intn(4)}) },
		func() { ecs.MustAddValue(r, e, Tag{Name: "unit"}) },
		func() { ecs.MustAddValue(r, e, Lifetime{Remaining: rand.Float64() * 30}) },
		func() { ecs.MustAddValue(r, e, Target{X: rand.Float64() * 100, Y: rand.Float64() * 100}) },
		func() { ecs.MustAddValue(r, e, Faction{ID: rand.Intn(3)}) },
	}
	rand.Shuffle(len(attach), func(i, j int) { attach[i], attach[j] = attach[j], attach[i] })
	if numComponents > len(attach) {
		numComponents = len(attach)
	}
	for _, fn := range attach[:numComponents] {
		fn()
	}
}
