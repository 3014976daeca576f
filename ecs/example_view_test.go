package ecs_test

import (
	"fmt"

	"github.com/plus3/ecsreg/ecs"
)

// ExampleView demonstrates building a view over an include set and streaming
// matching entities as typed component tuples.
func ExampleView() {
	r := ecs.NewRegistry()

	a := r.Create()
	ecs.MustAddValue(r, a, Position{X: 0, Y: 0})
	ecs.MustAddValue(r, a, Velocity{DX: 1, DY: 2})

	b := r.Create()
	ecs.MustAddValue(r, b, Position{X: 100, Y: 100})
	// b has no Velocity: Components2 must skip it.

	view, err := ecs.With[Velocity](ecs.With[Position](ecs.NewViewDescriptor())).Build(r)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, row := range ecs.Components2[Position, Velocity](view) {
		row.A.X += row.B.DX
		row.A.Y += row.B.DY
	}

	pos, _ := ecs.Get[Position](r, a)
	fmt.Printf("a moved to (%.0f, %.0f)\n", pos.X, pos.Y)

	other, _ := ecs.Get[Position](r, b)
	fmt.Printf("b stayed at (%.0f, %.0f)\n", other.X, other.Y)

	// Output:
	// a moved to (1, 2)
	// b stayed at (100, 100)
}
