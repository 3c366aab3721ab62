package traits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traitkit/traitkit/introspect"
	"github.com/traitkit/traitkit/props"
)

func timestamps(parent *introspect.Class) *introspect.Class {
	return introspect.NewClass(introspect.ClassSpec{
		Name:   "Timestamps",
		Parent: parent,
		Statics: props.Map{
			"Precision": "ms",
		},
		Methods: props.Map{
			"Touch": func() {},
		},
		Template: props.Map{
			"CreatedAt": int64(0),
		},
	})
}

func TestInject_IntoClass(t *testing.T) {
	dest := introspect.NewClass(introspect.ClassSpec{Name: "Post"})
	source := timestamps(nil)

	require.NoError(t, Inject(source, Into(dest)))

	assert.Equal(t, "ms", dest.Statics()["Precision"])
	assert.Contains(t, dest.Methods(), "Touch")
	assert.Equal(t, int64(0), dest.Template()["CreatedAt"])
}

func TestInject_PhysicalCopy(t *testing.T) {
	dest := introspect.NewClass(introspect.ClassSpec{Name: "Post"})
	source := timestamps(nil)

	require.NoError(t, Inject(source, Into(dest)))

	// Later changes to the source do not propagate.
	source.ApplyStatics(props.Map{"Precision": "ns"}, true)
	assert.Equal(t, "ms", dest.Statics()["Precision"])
}

func TestInject_DefaultDestinationIsParent(t *testing.T) {
	parent := introspect.NewClass(introspect.ClassSpec{Name: "Content"})
	source := timestamps(parent)

	require.NoError(t, Inject(source))

	assert.Equal(t, "ms", parent.Statics()["Precision"])
	assert.Contains(t, parent.Methods(), "Touch")
	assert.Equal(t, int64(0), parent.Template()["CreatedAt"])
}

func TestInject_FillAbsentOnly(t *testing.T) {
	dest := introspect.NewClass(introspect.ClassSpec{
		Name:    "Post",
		Statics: props.Map{"Precision": "s"},
	})

	require.NoError(t, Inject(timestamps(nil), Into(dest)))
	assert.Equal(t, "s", dest.Statics()["Precision"])

	require.NoError(t, Inject(timestamps(nil), Into(dest), Overwrite()))
	assert.Equal(t, "ms", dest.Statics()["Precision"])
}

func TestInject_IntoInstance(t *testing.T) {
	destClass := introspect.NewClass(introspect.ClassSpec{Name: "Post"})
	inst, err := destClass.New()
	require.NoError(t, err)

	require.NoError(t, Inject(timestamps(nil), Into(inst)))

	// Statics and instance members land on the one instance.
	v, ok := inst.Get("Precision")
	require.True(t, ok)
	assert.Equal(t, "ms", v)
	_, ok = inst.Get("Touch")
	assert.True(t, ok)

	// Attribute defaults land on the instance's class template, so they
	// reach every instance constructed afterwards.
	assert.Equal(t, int64(0), destClass.Template()["CreatedAt"])
	later, err := destClass.New()
	require.NoError(t, err)
	v, ok = later.Get("CreatedAt")
	require.True(t, ok)
	assert.Equal(t, int64(0), v)
}

func TestInject_ConstructionFailureAborts(t *testing.T) {
	dest := introspect.NewClass(introspect.ClassSpec{Name: "Post"})
	source := introspect.NewClass(introspect.ClassSpec{
		Name:         "Strict",
		Statics:      props.Map{"Precision": "ms"},
		RequiresArgs: true,
	})

	err := Inject(source, Into(dest))
	assert.ErrorIs(t, err, introspect.ErrConstructorArgs)
}
