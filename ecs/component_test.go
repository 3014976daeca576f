package ecs_test

import (
	"testing"

	"github.com/plus3/ecsreg/ecs"
	"github.com/stretchr/testify/assert"
)

func TestAddIsIdempotentFirstValueWins(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()

	assert.NoError(t, ecs.AddValue(r, e, Position{X: 1, Y: 1}))
	assert.NoError(t, ecs.AddValue(r, e, Position{X: 99, Y: 99}))

	got, err := ecs.Get[Position](r, e)
	assert.NoError(t, err)
	assert.Equal(t, Position{X: 1, Y: 1}, got)
}

func TestSetOverwritesInPlace(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()

	assert.NoError(t, ecs.AddValue(r, e, Position{X: 1, Y: 1}))
	assert.NoError(t, ecs.SetValue(r, e, Position{X: 5, Y: 5}))

	got, err := ecs.Get[Position](r, e)
	assert.NoError(t, err)
	assert.Equal(t, Position{X: 5, Y: 5}, got)
}

func TestGetOnUnregisteredTypeIsInvalidComponent(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()

	_, err := ecs.Get[Position](r, e)
	var invalidComp ecs.InvalidComponentError
	assert.ErrorAs(t, err, &invalidComp)
}

func TestGetOnMissingComponentAfterRegistration(t *testing.T) {
	r := ecs.NewRegistry()
	ecs.RegisterComponent[Position](r)
	e := r.Create()

	_, err := ecs.Get[Position](r, e)
	var missing ecs.MissingComponentError
	assert.ErrorAs(t, err, &missing)
}

func TestGetRefOrNilNeverRaises(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()
	assert.Nil(t, ecs.GetOrNil[Position](r, e))

	assert.NoError(t, ecs.AddValue(r, e, Position{X: 2, Y: 3}))
	ref := ecs.GetOrNil[Position](r, e)
	assert.NotNil(t, ref)
	assert.Equal(t, Position{X: 2, Y: 3}, *ref)
}

func TestHasNeverRaises(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()
	assert.False(t, ecs.Has[Position](r, e))

	bad := ecs.Entity(999999)
	assert.False(t, ecs.Has[Position](r, bad))
}

func TestRemoveAbsentComponentIsNoOp(t *testing.T) {
	r := ecs.NewRegistry()
	ecs.RegisterComponent[Position](r)
	e := r.Create()

	assert.NoError(t, ecs.Remove[Position](r, e))
}

func TestGetAndRemoveRaisesWhenMissing(t *testing.T) {
	r := ecs.NewRegistry()
	ecs.RegisterComponent[Position](r)
	e := r.Create()

	_, err := ecs.GetAndRemove[Position](r, e)
	var missing ecs.MissingComponentError
	assert.ErrorAs(t, err, &missing)
}

func TestGetAndRemoveReturnsValueAndDetaches(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()
	assert.NoError(t, ecs.AddValue(r, e, Health{Current: 10, Max: 10}))

	v, err := ecs.GetAndRemove[Health](r, e)
	assert.NoError(t, err)
	assert.Equal(t, Health{Current: 10, Max: 10}, v)
	assert.False(t, ecs.Has[Health](r, e))
}

func TestGetOrCreateAttachesZeroValueOnce(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()

	v, err := ecs.GetOrCreate[Health](r, e)
	assert.NoError(t, err)
	assert.Equal(t, Health{}, v)
	assert.True(t, ecs.Has[Health](r, e))

	ref, err := ecs.GetOrCreateRef[Health](r, e)
	assert.NoError(t, err)
	ref.Current = 3
	got, _ := ecs.Get[Health](r, e)
	assert.Equal(t, 3, got.Current)
}

func TestComponentsCountAndIsEmpty(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()
	assert.True(t, ecs.IsEmpty(r, e))

	ecs.MustAddValue(r, e, Position{})
	ecs.MustAddValue(r, e, Velocity{})
	n, err := ecs.ComponentsCount(r, e)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, ecs.IsEmpty(r, e))
}

func TestRemoveAllStripsEveryComponent(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()
	ecs.MustAddValue(r, e, Position{})
	ecs.MustAddValue(r, e, Velocity{})

	assert.NoError(t, ecs.RemoveAll(r, e))
	assert.True(t, ecs.IsEmpty(r, e))
	assert.False(t, ecs.Has[Position](r, e))
	assert.False(t, ecs.Has[Velocity](r, e))
}

func TestComponentValuesSurviveArchetypeTransitions(t *testing.T) {
	// The defining property of sparse-set storage: a component's value is
	// untouched by its owning entity moving between archetypes.
	r := ecs.NewRegistry()
	e := r.Create()
	ecs.MustAddValue(r, e, Position{X: 7, Y: 8})

	ref, err := ecs.GetRef[Position](r, e)
	assert.NoError(t, err)

	ecs.MustAddValue(r, e, Velocity{DX: 1})
	assert.NoError(t, ecs.Remove[Velocity](r, e))
	ecs.MustAddValue(r, e, Health{Current: 1, Max: 1})

	assert.Equal(t, float32(7), ref.X, "pointer identity must survive archetype churn")
	got, _ := ecs.Get[Position](r, e)
	assert.Equal(t, Position{X: 7, Y: 8}, got)
}

func TestExists(t *testing.T) {
	r := ecs.NewRegistry()
	assert.False(t, ecs.Exists[Position](r))
	ecs.RegisterComponent[Position](r)
	assert.True(t, ecs.Exists[Position](r))
}
