// Package introspect implements the class model at the heart of traitkit:
// explicit runtime class entities with introspectable member surfaces.
//
// # Model
//
// A Class owns three member tables:
//
//   - statics: members of the class entity itself
//   - methods: members shared by the class's instances
//   - template: attribute defaults applied at construction
//
// An Instance pairs its constructing class with an own-property table.
// Every introspection operation accepts an Entity, which is always either
// a *Class or an *Instance — the two are never ambiguous.
//
// # Operations
//
// ResolveClass maps any entity to its class; ResolveParent walks one step
// up the ancestry (every parentless class descends from Base()).
// StaticMembers, InstanceMembers, and Attributes expose the three member
// views as property maps. Attributes constructs one default instance, so
// it fails for classes that are not zero-argument constructible.
//
// # Sources
//
// Classes come from three places:
//
//	// declared in code
//	c := introspect.NewClass(introspect.ClassSpec{Name: "Post", ...})
//
//	// derived from a Go struct type via reflection
//	c, err := introspect.FromType(Post{})
//
//	// built from a declarative (YAML-loadable) definition
//	c, err := introspect.FromDefinition(def, registry)
//
// A Registry indexes classes by name for lookup by tooling; the package
// keeps a global registry with Register, Lookup, Classes, and Reset.
package introspect
