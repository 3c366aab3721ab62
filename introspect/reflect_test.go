package introspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type article struct {
	Title string
	Words int

	internal bool
}

func (a *article) Summary() string { return a.Title }

func (a *article) Publish() {}

func TestFromType(t *testing.T) {
	c, err := FromType(article{})
	require.NoError(t, err)

	assert.Equal(t, "article", c.Name())

	template := c.Template()
	assert.Equal(t, "", template["Title"])
	assert.Equal(t, 0, template["Words"])
	assert.NotContains(t, template, "internal")

	methods := c.Methods()
	assert.Contains(t, methods, "Summary")
	assert.Contains(t, methods, "Publish")
}

func TestFromType_Pointer(t *testing.T) {
	c, err := FromType(&article{})
	require.NoError(t, err)
	assert.Equal(t, "article", c.Name())
}

func TestFromType_DefaultConstructible(t *testing.T) {
	c, err := FromType(article{})
	require.NoError(t, err)

	attrs, err := Attributes(c)
	require.NoError(t, err)
	assert.Equal(t, "", attrs["Title"])
}

func TestFromType_MethodsCallable(t *testing.T) {
	c, err := FromType(article{})
	require.NoError(t, err)

	fn, ok := c.Methods()["Summary"].(func(*article) string)
	require.True(t, ok, "method stored as func with receiver parameter")
	assert.Equal(t, "hello", fn(&article{Title: "hello"}))
}

func TestFromType_NotAStruct(t *testing.T) {
	_, err := FromType(42)
	assert.Error(t, err)

	_, err = FromType(nil)
	assert.Error(t, err)
}
