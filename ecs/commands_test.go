package ecs_test

import (
	"testing"

	"github.com/plus3/ecsreg/ecs"
	"github.com/stretchr/testify/assert"
)

func TestCommandsDeferredOpsApplyOnFlushInOrder(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()
	cmds := ecs.NewCommands()

	ecs.DeferAddValue(cmds, e, Position{X: 1})
	ecs.DeferSetValue(cmds, e, Position{X: 2})
	assert.Equal(t, 2, cmds.Len())

	assert.False(t, ecs.Has[Position](r, e), "ops must not apply before Flush")
	cmds.Flush(r)

	got, err := ecs.Get[Position](r, e)
	assert.NoError(t, err)
	assert.Equal(t, Position{X: 2}, got)
	assert.Equal(t, 0, cmds.Len(), "Flush must clear the queue")
}

func TestCommandsDeferRemove(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()
	ecs.MustAddValue(r, e, Velocity{DX: 1})

	cmds := ecs.NewCommands()
	ecs.DeferRemove[Velocity](cmds, e)
	cmds.Flush(r)

	assert.False(t, ecs.Has[Velocity](r, e))
}

func TestCommandsDestroyIsDeferred(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()
	cmds := ecs.NewCommands()
	cmds.Destroy(e)

	assert.NoError(t, r.Validate(e), "destroy must not apply before Flush")
	cmds.Flush(r)
	assert.Error(t, r.Validate(e))
}

func TestCommandsCanBeReusedAfterFlush(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()
	cmds := ecs.NewCommands()

	ecs.DeferAddValue(cmds, e, Position{X: 1})
	cmds.Flush(r)
	ecs.DeferSetValue(cmds, e, Position{X: 9})
	cmds.Flush(r)

	got, _ := ecs.Get[Position](r, e)
	assert.Equal(t, Position{X: 9}, got)
}
