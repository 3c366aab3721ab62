package introspect

import (
	"errors"
	"fmt"

	"github.com/traitkit/traitkit/props"
)

// Reserved slot names. These identify bookkeeping slots of the class model
// itself and are excluded from member enumeration and tracing.
const (
	SlotConstructor = "constructor"
	SlotPrototype   = "prototype"
	SlotName        = "name"
	SlotLength      = "length"
	SlotArguments   = "arguments"
	SlotCaller      = "caller"
)

var reservedStatic = map[string]struct{}{
	SlotConstructor: {},
	SlotPrototype:   {},
	SlotName:        {},
	SlotLength:      {},
}

var reservedInstance = map[string]struct{}{
	SlotConstructor: {},
}

var reservedAll = map[string]struct{}{
	SlotConstructor: {},
	SlotPrototype:   {},
	SlotName:        {},
	SlotLength:      {},
	SlotArguments:   {},
	SlotCaller:      {},
}

// Reserved reports whether name is a reserved slot name. The tracer uses
// this to skip bookkeeping slots when walking an object's members.
func Reserved(name string) bool {
	_, ok := reservedAll[name]
	return ok
}

var (
	// ErrConstructorArgs is returned by Attributes when the class declares
	// a constructor that cannot run without arguments.
	ErrConstructorArgs = errors.New("constructor requires arguments")
)

// Constructor produces the initial own-property set of a new instance.
type Constructor func() (props.Map, error)

// Entity is the tagged variant accepted by every introspection operation:
// a value is always either a *Class or an *Instance, never ambiguous.
type Entity interface {
	entity()
}

// Class is a runtime class entity. It owns three member tables: statics
// (members of the class itself), methods (members shared by instances),
// and template (attribute defaults applied at construction).
type Class struct {
	name     string
	parent   *Class
	statics  props.Map
	methods  props.Map
	template props.Map

	construct    Constructor
	requiresArgs bool
}

// ClassSpec declares a class for NewClass. Member tables may be nil.
type ClassSpec struct {
	Name     string
	Parent   *Class
	Statics  props.Map
	Methods  props.Map
	Template props.Map

	// Construct, when set, replaces the default construction behavior
	// (cloning Template). It must succeed without arguments.
	Construct Constructor

	// RequiresArgs marks the class as not default-constructible.
	// Attributes and zero-argument construction fail for such a class.
	RequiresArgs bool
}

// NewClass creates a class from its spec. The member tables are copied,
// so the spec maps can be reused by the caller.
func NewClass(spec ClassSpec) *Class {
	return &Class{
		name:         spec.Name,
		parent:       spec.Parent,
		statics:      props.Clone(spec.Statics),
		methods:      props.Clone(spec.Methods),
		template:     props.Clone(spec.Template),
		construct:    spec.Construct,
		requiresArgs: spec.RequiresArgs,
	}
}

func (c *Class) entity() {}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Parent returns the immediate ancestor class. Classes with no declared
// parent report the built-in root class.
func (c *Class) Parent() *Class {
	if c.parent == nil {
		return Base()
	}
	return c.parent
}

// Statics returns a copy of the class-owned member table, reserved slots
// excluded.
func (c *Class) Statics() props.Map {
	return filtered(c.statics, reservedStatic)
}

// Methods returns a copy of the instance-member table, reserved slots
// excluded.
func (c *Class) Methods() props.Map {
	return filtered(c.methods, reservedInstance)
}

// Template returns a copy of the attribute-default table.
func (c *Class) Template() props.Map {
	return props.Clone(c.template)
}

// ApplyStatics merges m into the class-owned member table.
func (c *Class) ApplyStatics(m props.Map, overwrite bool) {
	props.Apply(c.statics, m, overwrite)
}

// ApplyMethods merges m into the instance-member table.
func (c *Class) ApplyMethods(m props.Map, overwrite bool) {
	props.Apply(c.methods, m, overwrite)
}

// ApplyTemplate merges m into the attribute-default table. The change is
// shared: it affects every instance constructed afterwards.
func (c *Class) ApplyTemplate(m props.Map, overwrite bool) {
	props.Apply(c.template, m, overwrite)
}

// New constructs an instance with no arguments. For classes declared with
// RequiresArgs this fails with ErrConstructorArgs; a failing Construct
// hook propagates its error.
func (c *Class) New() (*Instance, error) {
	if c.requiresArgs {
		return nil, fmt.Errorf("construct %s: %w", c.name, ErrConstructorArgs)
	}
	own := props.Clone(c.template)
	if c.construct != nil {
		extra, err := c.construct()
		if err != nil {
			return nil, fmt.Errorf("construct %s: %w", c.name, err)
		}
		props.Apply(own, extra, true)
	}
	return &Instance{class: c, own: own}, nil
}

// Instance is one object of a class: the owning class plus an own-property
// table. Own properties shadow nothing structurally; member lookups through
// the introspection operations stay own-only by design.
type Instance struct {
	class *Class
	own   props.Map
}

func (i *Instance) entity() {}

// Class returns the constructing class.
func (i *Instance) Class() *Class { return i.class }

// Get returns the named own property.
func (i *Instance) Get(name string) (any, bool) {
	v, ok := i.own[name]
	return v, ok
}

// Set writes an own property, creating or replacing it.
func (i *Instance) Set(name string, value any) {
	i.own[name] = value
}

// Names returns the own-property names in unspecified order.
func (i *Instance) Names() []string {
	names := make([]string, 0, len(i.own))
	for name := range i.own {
		names = append(names, name)
	}
	return names
}

// Properties returns a copy of the own-property table.
func (i *Instance) Properties() props.Map {
	return props.Clone(i.own)
}

// ApplyOwn merges m into the instance's own-property table.
func (i *Instance) ApplyOwn(m props.Map, overwrite bool) {
	props.Apply(i.own, m, overwrite)
}

func filtered(m props.Map, reserved map[string]struct{}) props.Map {
	result := make(props.Map, len(m))
	for k, v := range m {
		if _, ok := reserved[k]; ok {
			continue
		}
		result[k] = v
	}
	return result
}

// base is the built-in root class, the ancestor of every class that does
// not declare a parent. Its own parent is itself.
var base = &Class{
	name:     "Object",
	statics:  props.Map{},
	methods:  props.Map{},
	template: props.Map{},
}

func init() {
	base.parent = base
}

// Base returns the built-in root class.
func Base() *Class { return base }
