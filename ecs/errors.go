package ecs

import (
	"fmt"
	"reflect"
)

// InvalidEntityError reports an operation against an entity handle that is
// not (or is no longer) live in the registry.
type InvalidEntityError struct {
	Entity Entity
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("ecs: invalid entity %s", e.Entity)
}

// InvalidComponentError reports an operation referencing a component type
// for which no pool exists. RegisterComponent pre-empts this.
type InvalidComponentError struct {
	Type reflect.Type
}

func (e InvalidComponentError) Error() string {
	return fmt.Sprintf("ecs: invalid component type %s: no pool registered", e.Type)
}

// MissingComponentError reports a read or a get-reference against a
// component type whose pool exists but which the entity does not carry.
type MissingComponentError struct {
	Entity Entity
	Type   reflect.Type
}

func (e MissingComponentError) Error() string {
	return fmt.Sprintf("ecs: entity %s has no component %s", e.Entity, e.Type)
}

// InvalidViewError reports a ViewDescriptor.Build call where one or more
// referenced types have never been registered.
type InvalidViewError struct {
	Types []reflect.Type
}

func (e InvalidViewError) Error() string {
	return fmt.Sprintf("ecs: view references unregistered types %v", e.Types)
}
