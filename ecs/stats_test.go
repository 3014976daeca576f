package ecs_test

import (
	"testing"

	"github.com/plus3/ecsreg/ecs"
	"github.com/stretchr/testify/assert"
)

func TestStatsSnapshot(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()
	r.Create()
	ecs.MustAddValue(r, e, Position{})

	s := r.Stats()
	assert.Equal(t, 2, s.EntityCount)
	assert.Equal(t, 1, s.ArchetypeCount)
	assert.Equal(t, 1, s.ComponentPoolCount)
}

func TestStatsSnapshotDoesNotUpdate(t *testing.T) {
	r := ecs.NewRegistry()
	s := r.Stats()
	r.Create()
	assert.Equal(t, 0, s.EntityCount, "a Stats value is a point-in-time snapshot")
}
