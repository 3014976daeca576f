package ecs

import (
	"context"
	"errors"
	"reflect"
	"time"
)

// System is a behavior bound to a ViewDescriptor and any subset of the
// lifecycle hooks (StartSystem, PreProcessSystem, ProcessSystem,
// PostProcessSystem, SingleFrameSystem, EndSystem). Descriptor may return
// nil for a system that runs once per invocation with no per-entity
// iteration (its hook is called with a nil Cursor).
type System interface {
	Descriptor() *ViewDescriptor
}

// StartSystem runs once when the scheduler starts, over every entity its
// descriptor matches at that moment.
type StartSystem interface {
	System
	Start(r *Registry, c *Cursor) error
}

// PreProcessSystem runs at the beginning of every Process call.
type PreProcessSystem interface {
	System
	PreProcess(r *Registry, c *Cursor) error
}

// ProcessSystem runs once per Process call, the main per-frame behavior.
type ProcessSystem interface {
	System
	Process(r *Registry, c *Cursor) error
}

// PostProcessSystem runs at the end of every Process call.
type PostProcessSystem interface {
	System
	PostProcess(r *Registry, c *Cursor) error
}

// SingleFrameSystem runs exactly once, the next time its queue drains, and
// is then discarded. Reached only via EnqueueSingleFrame.
type SingleFrameSystem interface {
	System
	SingleFrame(r *Registry, c *Cursor) error
}

// EndSystem runs once when the scheduler ends.
type EndSystem interface {
	System
	End(r *Registry, c *Cursor) error
}

// Notificable is a plain callback subscribed to a lifecycle edge (scheduler
// start or end) with no associated entity iteration.
type Notificable func(r *Registry)

// ErrSchedulerNotStarted is returned by Process and End when called before
// Start.
var ErrSchedulerNotStarted = errors.New("ecs: scheduler not started")

type phase int

const (
	phaseIdle phase = iota
	phaseProcess
	phaseEnd
)

// scheduler drives System hooks through the Start/PreProcess/Process/
// PostProcess/SingleFrame/End lifecycle. Embedded in Registry; its public
// surface is the set of methods Registry exposes.
type scheduler struct {
	systems []System

	startSystems      []StartSystem
	preProcessSystems []PreProcessSystem
	processSystems    []ProcessSystem
	postProcessSystem []PostProcessSystem
	endSystems        []EndSystem

	singleFrameQueue []SingleFrameSystem
	preProcessQueue  []PreProcessSystem
	postProcessQueue []PostProcessSystem

	startNotificables []Notificable
	endNotificables   []Notificable

	started    bool
	starting   bool
	processing bool
	ending     bool

	phase          phase
	restartPending bool
}

func newScheduler() *scheduler {
	return &scheduler{}
}

func dispatch(r *Registry, sys System, hook func(*Registry, *Cursor) error) error {
	d := sys.Descriptor()
	if d == nil {
		return hook(r, nil)
	}
	view, err := d.Build(r)
	if err != nil {
		return err
	}
	for c := range view.Groups() {
		if err := hook(r, c); err != nil {
			return err
		}
	}
	return nil
}

// AddSystem registers sys permanently, classifying it by every lifecycle
// hook interface it implements.
func (r *Registry) AddSystem(sys System) {
	s := r.scheduler
	s.systems = append(s.systems, sys)
	if v, ok := sys.(StartSystem); ok {
		s.startSystems = append(s.startSystems, v)
	}
	if v, ok := sys.(PreProcessSystem); ok {
		s.preProcessSystems = append(s.preProcessSystems, v)
	}
	if v, ok := sys.(ProcessSystem); ok {
		s.processSystems = append(s.processSystems, v)
	}
	if v, ok := sys.(PostProcessSystem); ok {
		s.postProcessSystem = append(s.postProcessSystem, v)
	}
	if v, ok := sys.(EndSystem); ok {
		s.endSystems = append(s.endSystems, v)
	}
}

// RemoveSystem drops every registered system of concrete type T from every
// list that held it — the permanent lists, independently of one another,
// not a single shared index.
func RemoveSystem[T System](r *Registry) {
	s := r.scheduler
	want := reflect.TypeOf((*T)(nil)).Elem()
	matches := func(sys System) bool {
		return reflect.TypeOf(sys) == want
	}
	s.systems = filterOut(s.systems, matches)
	s.startSystems = filterOutTyped(s.startSystems, matches)
	s.preProcessSystems = filterOutTyped(s.preProcessSystems, matches)
	s.processSystems = filterOutTyped(s.processSystems, matches)
	s.postProcessSystem = filterOutTyped(s.postProcessSystem, matches)
	s.endSystems = filterOutTyped(s.endSystems, matches)
}

func filterOut(in []System, drop func(System) bool) []System {
	out := in[:0:0]
	for _, v := range in {
		if !drop(v) {
			out = append(out, v)
		}
	}
	return out
}

func filterOutTyped[T System](in []T, drop func(System) bool) []T {
	out := in[:0:0]
	for _, v := range in {
		if !drop(v) {
			out = append(out, v)
		}
	}
	return out
}

// GetSystem returns the registered system of concrete type T, if any.
func GetSystem[T System](r *Registry) (T, bool) {
	var zero T
	want := reflect.TypeOf((*T)(nil)).Elem()
	for _, sys := range r.scheduler.systems {
		if reflect.TypeOf(sys) == want {
			return sys.(T), true
		}
	}
	return zero, false
}

// HasSystem reports whether a system of concrete type T is registered.
func HasSystem[T System](r *Registry) bool {
	_, ok := GetSystem[T](r)
	return ok
}

// SubscribeStart registers fn to run when Start is invoked, before any
// Start system, and returns a token for UnsubscribeStart.
func (r *Registry) SubscribeStart(fn Notificable) int {
	r.scheduler.startNotificables = append(r.scheduler.startNotificables, fn)
	return len(r.scheduler.startNotificables) - 1
}

// UnsubscribeStart removes a start notificable by its token.
func (r *Registry) UnsubscribeStart(token int) {
	unsubscribe(r.scheduler.startNotificables, token)
}

// SubscribeEnd registers fn to run when End is invoked, after every End
// system, and returns a token for UnsubscribeEnd.
func (r *Registry) SubscribeEnd(fn Notificable) int {
	r.scheduler.endNotificables = append(r.scheduler.endNotificables, fn)
	return len(r.scheduler.endNotificables) - 1
}

// UnsubscribeEnd removes an end notificable by its token.
func (r *Registry) UnsubscribeEnd(token int) {
	unsubscribe(r.scheduler.endNotificables, token)
}

func unsubscribe(list []Notificable, token int) {
	if token >= 0 && token < len(list) {
		list[token] = nil
	}
}

func notify(list []Notificable, r *Registry) {
	for _, fn := range list {
		if fn != nil {
			fn(r)
		}
	}
}

// EnqueueSingleFrame queues sys to run exactly once at the next SingleFrame
// drain point (after each Start/Process system, and at the end of Process),
// then be discarded. Legal to call from within any system's hook.
func (r *Registry) EnqueueSingleFrame(sys SingleFrameSystem) {
	r.scheduler.singleFrameQueue = append(r.scheduler.singleFrameQueue, sys)
}

// EnqueuePreProcess queues sys to run once at the next Process call's
// pre-process step, alongside the permanently registered PreProcess
// systems, then be discarded.
func (r *Registry) EnqueuePreProcess(sys PreProcessSystem) {
	r.scheduler.preProcessQueue = append(r.scheduler.preProcessQueue, sys)
}

// EnqueuePostProcess queues sys to run once at the next Process call's
// post-process step, then be discarded.
func (r *Registry) EnqueuePostProcess(sys PostProcessSystem) {
	r.scheduler.postProcessQueue = append(r.scheduler.postProcessQueue, sys)
}

func (r *Registry) drainSingleFrame() error {
	s := r.scheduler
	for len(s.singleFrameQueue) > 0 {
		sys := s.singleFrameQueue[0]
		s.singleFrameQueue = s.singleFrameQueue[1:]
		if err := dispatch(r, sys, sys.SingleFrame); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) drainPreProcess() error {
	s := r.scheduler
	for _, sys := range s.preProcessSystems {
		if err := dispatch(r, sys, sys.PreProcess); err != nil {
			return err
		}
	}
	for _, sys := range s.preProcessQueue {
		if err := dispatch(r, sys, sys.PreProcess); err != nil {
			return err
		}
	}
	s.preProcessQueue = nil
	return nil
}

func (r *Registry) drainPostProcess() error {
	s := r.scheduler
	for _, sys := range s.postProcessSystem {
		if err := dispatch(r, sys, sys.PostProcess); err != nil {
			return err
		}
	}
	for _, sys := range s.postProcessQueue {
		if err := dispatch(r, sys, sys.PostProcess); err != nil {
			return err
		}
	}
	s.postProcessQueue = nil
	return nil
}

// Start runs the start notificables, then every registered StartSystem
// once, draining the SingleFrame queue after each. A no-op if already
// started.
func (r *Registry) Start() error {
	s := r.scheduler
	if s.started {
		return nil
	}
	s.starting = true
	defer func() { s.starting = false }()

	notify(s.startNotificables, r)
	for _, sys := range s.startSystems {
		if err := dispatch(r, sys, sys.Start); err != nil {
			return err
		}
		if err := r.drainSingleFrame(); err != nil {
			return err
		}
	}
	s.started = true
	return nil
}

// Process runs one frame: drain the PreProcess queue, run every
// ProcessSystem (draining SingleFrame after each), then drain the
// PostProcess queue and a final SingleFrame drain. If a Restart was
// requested while Process was running, honors it now that Process has
// reached its natural exit.
func (r *Registry) Process() error {
	s := r.scheduler
	if !s.started {
		return ErrSchedulerNotStarted
	}
	s.processing = true
	s.phase = phaseProcess
	defer func() {
		s.processing = false
		s.phase = phaseIdle
	}()

	if err := r.drainPreProcess(); err != nil {
		return err
	}
	for _, sys := range s.processSystems {
		if err := dispatch(r, sys, sys.Process); err != nil {
			return err
		}
		if err := r.drainSingleFrame(); err != nil {
			return err
		}
	}
	if err := r.drainPostProcess(); err != nil {
		return err
	}
	if err := r.drainSingleFrame(); err != nil {
		return err
	}

	if s.restartPending {
		s.restartPending = false
		s.phase = phaseIdle
		if err := r.End(); err != nil {
			return err
		}
		return r.Start()
	}
	return nil
}

// End runs every registered EndSystem once (draining SingleFrame after
// each), then the end notificables. If a Restart was requested while End
// was running, honors it by calling Start again.
func (r *Registry) End() error {
	s := r.scheduler
	if !s.started {
		return ErrSchedulerNotStarted
	}
	s.ending = true
	s.phase = phaseEnd
	defer func() {
		s.ending = false
		s.phase = phaseIdle
	}()

	for _, sys := range s.endSystems {
		if err := dispatch(r, sys, sys.End); err != nil {
			return err
		}
		if err := r.drainSingleFrame(); err != nil {
			return err
		}
	}
	notify(s.endNotificables, r)
	s.started = false

	if s.restartPending {
		s.restartPending = false
		s.phase = phaseIdle
		return r.Start()
	}
	return nil
}

// Restart ends and immediately restarts the scheduler. A no-op if not
// started. Start marks the scheduler started only after its Start systems
// have run, so a Restart called from a Start hook is a no-op as well and is
// not deferred. If called from inside a Process or End hook, the restart is
// deferred to that phase's natural exit rather than reentering End/Start
// mid-phase.
func (r *Registry) Restart() error {
	s := r.scheduler
	if !s.started {
		return nil
	}
	if s.phase == phaseIdle {
		if err := r.End(); err != nil {
			return err
		}
		return r.Start()
	}
	s.restartPending = true
	return nil
}

// Started reports whether the scheduler is currently started.
func (r *Registry) Started() bool { return r.scheduler.started }

// Starting reports whether a Start call is currently in progress.
func (r *Registry) Starting() bool { return r.scheduler.starting }

// Processing reports whether a Process call is currently in progress.
func (r *Registry) Processing() bool { return r.scheduler.processing }

// Ending reports whether an End call is currently in progress.
func (r *Registry) Ending() bool { return r.scheduler.ending }

// Run calls Process on every tick of interval until ctx is cancelled or a
// Process call returns an error. The caller is responsible for Start and
// End.
func (r *Registry) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := r.Process(); err != nil {
				return err
			}
		}
	}
}
