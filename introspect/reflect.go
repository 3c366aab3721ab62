package introspect

import (
	"fmt"
	"reflect"

	"github.com/traitkit/traitkit/props"
)

// FromType derives a class from a Go struct type using runtime
// reflection. Exported methods of the type (value and pointer receiver)
// become instance members, stored as callable func values whose first
// parameter is the receiver. Exported fields of the zero value become
// the attribute template, so derived classes are always
// default-constructible.
//
// v may be a struct value or a pointer to one.
func FromType(v any) (*Class, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, fmt.Errorf("derive class: nil value")
	}
	st := t
	if st.Kind() == reflect.Ptr {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct {
		return nil, fmt.Errorf("derive class: %s is not a struct type", t)
	}

	methods := make(props.Map)
	pt := reflect.PointerTo(st)
	for i := 0; i < pt.NumMethod(); i++ {
		m := pt.Method(i)
		methods[m.Name] = m.Func.Interface()
	}

	template := make(props.Map)
	zero := reflect.New(st).Elem()
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if !f.IsExported() {
			continue
		}
		template[f.Name] = zero.Field(i).Interface()
	}

	return NewClass(ClassSpec{
		Name:     st.Name(),
		Methods:  methods,
		Template: template,
	}), nil
}
