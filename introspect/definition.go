package introspect

import (
	"fmt"

	"github.com/traitkit/traitkit/props"
)

// Definition is the declarative form of a class, loadable from a YAML
// configuration file. Data-defined classes carry statics and attribute
// defaults; instance members are code and cannot be declared in data.
type Definition struct {
	Name       string         `mapstructure:"name"`
	Parent     string         `mapstructure:"parent"`
	Statics    map[string]any `mapstructure:"statics"`
	Attributes map[string]any `mapstructure:"attributes"`
}

// FromDefinition builds a class from its declarative form, resolving the
// parent reference (if any) against the given registry.
func FromDefinition(def Definition, r *Registry) (*Class, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("class definition missing name")
	}
	var parent *Class
	if def.Parent != "" {
		p, err := r.Lookup(def.Parent)
		if err != nil {
			return nil, fmt.Errorf("class %s: parent: %w", def.Name, err)
		}
		parent = p
	}
	return NewClass(ClassSpec{
		Name:     def.Name,
		Parent:   parent,
		Statics:  props.Map(def.Statics),
		Template: props.Map(def.Attributes),
	}), nil
}

// LoadDefinitions builds and registers each definition in order, so a
// definition may name an earlier one as its parent.
func LoadDefinitions(defs []Definition, r *Registry) error {
	for _, def := range defs {
		c, err := FromDefinition(def, r)
		if err != nil {
			return err
		}
		if err := r.Add(c); err != nil {
			return err
		}
	}
	return nil
}
