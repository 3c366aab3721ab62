package introspect

import (
	"fmt"

	"github.com/traitkit/traitkit/props"
)

// ResolveClass resolves an entity to its class: a class resolves to
// itself, an instance to its constructing class. Pure, no side effects.
func ResolveClass(e Entity) *Class {
	switch x := e.(type) {
	case *Class:
		return x
	case *Instance:
		return x.class
	default:
		// Entity is sealed; this is unreachable for well-formed callers.
		panic(fmt.Sprintf("introspect: unknown entity type %T", e))
	}
}

// ResolveParent returns the immediate ancestor of the resolved class.
// The built-in root class is its own parent.
func ResolveParent(e Entity) *Class {
	return ResolveClass(e).Parent()
}

// StaticMembers returns the members owned by the resolved class itself,
// reserved slots excluded. Inherited members are not included.
func StaticMembers(e Entity) props.Map {
	return ResolveClass(e).Statics()
}

// InstanceMembers returns the members shared by the resolved class's
// instances, the constructor slot excluded.
func InstanceMembers(e Entity) props.Map {
	return ResolveClass(e).Methods()
}

// Attributes constructs one default instance of the resolved class with
// no arguments and returns that instance's own properties. Construction
// failure propagates to the caller; no partial map is ever returned.
func Attributes(e Entity) (props.Map, error) {
	inst, err := ResolveClass(e).New()
	if err != nil {
		return nil, err
	}
	return inst.Properties(), nil
}
