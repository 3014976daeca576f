package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/ecsreg/ecs"
	"github.com/stretchr/testify/assert"
)

type recordingSystem struct {
	desc                             *ecs.ViewDescriptor
	starts, preProcesses, processes int
	postProcesses, singleFrames, ends int
}

func (s *recordingSystem) Descriptor() *ecs.ViewDescriptor { return s.desc }
func (s *recordingSystem) Start(r *ecs.Registry, c *ecs.Cursor) error {
	s.starts++
	return nil
}
func (s *recordingSystem) PreProcess(r *ecs.Registry, c *ecs.Cursor) error {
	s.preProcesses++
	return nil
}
func (s *recordingSystem) Process(r *ecs.Registry, c *ecs.Cursor) error {
	s.processes++
	return nil
}
func (s *recordingSystem) PostProcess(r *ecs.Registry, c *ecs.Cursor) error {
	s.postProcesses++
	return nil
}
func (s *recordingSystem) SingleFrame(r *ecs.Registry, c *ecs.Cursor) error {
	s.singleFrames++
	return nil
}
func (s *recordingSystem) End(r *ecs.Registry, c *ecs.Cursor) error {
	s.ends++
	return nil
}

func TestSchedulerLifecycleOrder(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()
	ecs.MustAddValue(r, e, Position{})

	sys := &recordingSystem{desc: ecs.With[Position](ecs.NewViewDescriptor())}
	r.AddSystem(sys)

	assert.NoError(t, r.Start())
	assert.Equal(t, 1, sys.starts)

	assert.NoError(t, r.Process())
	assert.Equal(t, 1, sys.preProcesses)
	assert.Equal(t, 1, sys.processes)
	assert.Equal(t, 1, sys.postProcesses)

	assert.NoError(t, r.End())
	assert.Equal(t, 1, sys.ends)
}

func TestProcessBeforeStartFails(t *testing.T) {
	r := ecs.NewRegistry()
	err := r.Process()
	assert.ErrorIs(t, err, ecs.ErrSchedulerNotStarted)
}

func TestEnqueueSingleFrameRunsOnceThenDrops(t *testing.T) {
	r := ecs.NewRegistry()
	sys := &recordingSystem{desc: nil}
	assert.NoError(t, r.Start())

	r.EnqueueSingleFrame(sys)
	assert.NoError(t, r.Process())
	assert.Equal(t, 1, sys.singleFrames)

	assert.NoError(t, r.Process())
	assert.Equal(t, 1, sys.singleFrames, "a single-frame system must not run on a later Process")
}

func TestRemoveSystemDropsFromEveryList(t *testing.T) {
	r := ecs.NewRegistry()
	sys := &recordingSystem{desc: nil}
	r.AddSystem(sys)
	assert.True(t, ecs.HasSystem[*recordingSystem](r))

	ecs.RemoveSystem[*recordingSystem](r)
	assert.False(t, ecs.HasSystem[*recordingSystem](r))

	assert.NoError(t, r.Start())
	assert.Equal(t, 0, sys.starts)
	assert.NoError(t, r.Process())
	assert.Equal(t, 0, sys.processes)
}

func TestGetSystemReturnsRegisteredInstance(t *testing.T) {
	r := ecs.NewRegistry()
	sys := &recordingSystem{desc: nil}
	r.AddSystem(sys)

	got, ok := ecs.GetSystem[*recordingSystem](r)
	assert.True(t, ok)
	assert.Same(t, sys, got)
}

func TestSubscribeStartAndEndNotificables(t *testing.T) {
	r := ecs.NewRegistry()
	var startCalls, endCalls int
	r.SubscribeStart(func(r *ecs.Registry) { startCalls++ })
	token := r.SubscribeEnd(func(r *ecs.Registry) { endCalls++ })

	assert.NoError(t, r.Start())
	assert.Equal(t, 1, startCalls)
	assert.NoError(t, r.End())
	assert.Equal(t, 1, endCalls)

	r.UnsubscribeEnd(token)
	assert.NoError(t, r.Start())
	assert.NoError(t, r.End())
	assert.Equal(t, 1, endCalls, "unsubscribed callback must not fire again")
}

func TestRestartWhileIdleRunsImmediately(t *testing.T) {
	r := ecs.NewRegistry()
	sys := &recordingSystem{desc: nil}
	r.AddSystem(sys)
	assert.NoError(t, r.Start())
	assert.Equal(t, 1, sys.starts)
	assert.Equal(t, 0, sys.ends)

	assert.NoError(t, r.Restart())
	assert.Equal(t, 1, sys.ends)
	assert.Equal(t, 2, sys.starts)
	assert.True(t, r.Started())
}

func TestRestartOnNeverStartedSchedulerIsNoOp(t *testing.T) {
	r := ecs.NewRegistry()
	assert.NoError(t, r.Restart())
	assert.False(t, r.Started())
}

func TestRestartDuringProcessIsDeferredToProcessExit(t *testing.T) {
	r := ecs.NewRegistry()
	var restarted bool
	sys := &restartingSystem{recordingSystem: recordingSystem{desc: nil}, restartOnce: &restarted}
	r.AddSystem(sys)

	assert.NoError(t, r.Start())
	assert.NoError(t, r.Process())

	assert.True(t, restarted)
	assert.Equal(t, 2, sys.starts, "a mid-Process restart must fully End and Start again before Process returns")
	assert.Equal(t, 1, sys.ends)
	assert.True(t, r.Started())
	assert.False(t, r.Processing())
}

func TestRunTicksUntilContextCancelled(t *testing.T) {
	r := ecs.NewRegistry()
	sys := &recordingSystem{desc: nil}
	r.AddSystem(sys)
	assert.NoError(t, r.Start())

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	err := r.Run(ctx, 2*time.Millisecond)
	assert.NoError(t, err)
	assert.Greater(t, sys.processes, 1, "Run must drive Process on every tick until ctx is done")
}

func TestRunStopsOnProcessError(t *testing.T) {
	r := ecs.NewRegistry()
	sys := &recordingSystem{desc: nil}
	r.AddSystem(sys)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := r.Run(ctx, time.Millisecond)
	assert.ErrorIs(t, err, ecs.ErrSchedulerNotStarted, "a Process error (e.g. never Started) must abort Run")
}

type restartingSystem struct {
	recordingSystem
	restartOnce *bool
}

func (s *restartingSystem) Process(r *ecs.Registry, c *ecs.Cursor) error {
	s.processes++
	if !*s.restartOnce {
		*s.restartOnce = true
		return r.Restart()
	}
	return nil
}
