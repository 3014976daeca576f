package ecs

// Commands buffers structural mutations raised while a view is being
// iterated, so they can be applied after the iteration completes instead of
// changing archetype membership out from under it. Because component
// values never move when an entity's archetype changes (only archetype
// membership does), a deferred command never needs to re-resolve an
// entity's identity the way a column-storage ECS does: the Entity handle
// queued at Defer time is still the right handle when Flush runs it.
type Commands struct {
	ops []func(*Registry)
}

// NewCommands returns an empty command buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run against the registry at the next Flush.
func (c *Commands) Defer(fn func(r *Registry)) {
	c.ops = append(c.ops, fn)
}

// Destroy queues e for destruction.
func (c *Commands) Destroy(e Entity) {
	c.Defer(func(r *Registry) { _ = r.Destroy(e) })
}

// DeferAddValue queues attaching v to e, idempotently, at the next Flush.
func DeferAddValue[T any](c *Commands, e Entity, v T) {
	c.Defer(func(r *Registry) { _ = AddValue(r, e, v) })
}

// DeferSetValue queues overwriting e's T component with v at the next
// Flush, attaching it first if necessary.
func DeferSetValue[T any](c *Commands, e Entity, v T) {
	c.Defer(func(r *Registry) { _ = SetValue(r, e, v) })
}

// DeferRemove queues removing e's T component at the next Flush.
func DeferRemove[T any](c *Commands, e Entity) {
	c.Defer(func(r *Registry) { _ = Remove[T](r, e) })
}

// Flush applies every queued operation against r, in queue order, then
// clears the buffer.
func (c *Commands) Flush(r *Registry) {
	for _, op := range c.ops {
		op(r)
	}
	c.ops = c.ops[:0]
}

// Len reports how many operations are currently queued.
func (c *Commands) Len() int { return len(c.ops) }
