package ecs_test

import (
	"testing"

	"github.com/plus3/ecsreg/ecs"
	"github.com/stretchr/testify/assert"
)

func TestEntityInvalidSentinel(t *testing.T) {
	assert.False(t, ecs.Invalid.Valid())
}

func TestCreateAssignsIncreasingVersionsOnReuse(t *testing.T) {
	r := ecs.NewRegistry()

	a := r.Create()
	assert.NoError(t, r.Validate(a))
	assert.Equal(t, uint32(0), a.Version())

	assert.NoError(t, r.Destroy(a))
	assert.Error(t, r.Validate(a), "a destroyed entity must fail validation")

	c := r.Create()
	assert.Equal(t, a.Index(), c.Index(), "the freed slot must be reused")
	assert.Equal(t, a.Version()+1, c.Version(), "version must increment on reuse")
	assert.NotEqual(t, a, c, "old and new handles at the same slot must differ")
}

func TestDestroyInvalidEntityFails(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.Create()
	assert.NoError(t, r.Destroy(e))
	err := r.Destroy(e)
	assert.Error(t, err)
	var invalidErr ecs.InvalidEntityError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestEntitiesCountTracksLiveEntities(t *testing.T) {
	r := ecs.NewRegistry()
	assert.Equal(t, 0, r.EntitiesCount())

	a := r.Create()
	r.Create()
	assert.Equal(t, 2, r.EntitiesCount())

	assert.NoError(t, r.Destroy(a))
	assert.Equal(t, 1, r.EntitiesCount())
}
