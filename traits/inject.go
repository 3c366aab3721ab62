// Package traits copies a class's behavioral surface — statics, instance
// members, attribute defaults — into another class or instance, without
// touching the destination's ancestry.
package traits

import (
	"fmt"

	"github.com/traitkit/traitkit/introspect"
)

type options struct {
	dest      introspect.Entity
	overwrite bool
}

// Option configures an injection.
type Option func(*options)

// Into sets the injection destination. The default destination is the
// source's immediate ancestor class.
func Into(dest introspect.Entity) Option {
	return func(o *options) { o.dest = dest }
}

// Overwrite makes the injection replace members the destination already
// has. Without it, injection only fills absent members.
func Overwrite() Option {
	return func(o *options) { o.overwrite = true }
}

// Inject copies the source's statics, instance members, and attribute
// defaults into the destination. The copies are physical: later changes
// to the source do not propagate.
//
// When the destination is an instance, statics and instance members land
// on that one instance's own-property table, shadowing the class-provided
// versions for that instance only. Attribute defaults always land on the
// destination's class template, even then — injecting into a single
// instance changes the defaults of every future instance of its class.
//
// Attribute extraction requires the source class to be zero-argument
// constructible; otherwise Inject fails without copying anything.
func Inject(source introspect.Entity, opts ...Option) error {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.dest == nil {
		o.dest = introspect.ResolveParent(source)
	}

	statics := introspect.StaticMembers(source)
	methods := introspect.InstanceMembers(source)
	attrs, err := introspect.Attributes(source)
	if err != nil {
		return fmt.Errorf("inject %s: %w", introspect.ResolveClass(source).Name(), err)
	}

	switch dest := o.dest.(type) {
	case *introspect.Class:
		dest.ApplyStatics(statics, o.overwrite)
		dest.ApplyMethods(methods, o.overwrite)
		dest.ApplyTemplate(attrs, o.overwrite)
	case *introspect.Instance:
		dest.ApplyOwn(statics, o.overwrite)
		dest.ApplyOwn(methods, o.overwrite)
		dest.Class().ApplyTemplate(attrs, o.overwrite)
	}
	return nil
}
