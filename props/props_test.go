package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_LaterWins(t *testing.T) {
	result := Merge(
		Map{"a": 1, "b": 2},
		Map{"b": 3, "c": 4},
	)
	assert.Equal(t, Map{"a": 1, "b": 3, "c": 4}, result)
}

func TestMerge_InputsUntouched(t *testing.T) {
	first := Map{"a": 1}
	second := Map{"a": 2}
	Merge(first, second)
	assert.Equal(t, 1, first["a"])
	assert.Equal(t, 2, second["a"])
}

func TestMerge_Empty(t *testing.T) {
	assert.Equal(t, Map{}, Merge())
}

func TestApply_FillsAbsentOnly(t *testing.T) {
	target := Map{"a": 5}
	Apply(target, Map{"a": 1, "b": 2}, false)
	assert.Equal(t, 5, target["a"])
	assert.Equal(t, 2, target["b"])
}

func TestApply_Overwrite(t *testing.T) {
	target := Map{"a": 5}
	Apply(target, Map{"a": 1}, true)
	assert.Equal(t, 1, target["a"])
}

func TestApply_NeverDeletes(t *testing.T) {
	target := Map{"keep": true}
	Apply(target, Map{"other": 1}, true)
	assert.Equal(t, true, target["keep"])
}

func TestClone(t *testing.T) {
	original := Map{"a": 1}
	clone := Clone(original)
	clone["a"] = 2
	assert.Equal(t, 1, original["a"])
}

func TestClone_Nil(t *testing.T) {
	clone := Clone(nil)
	assert.NotNil(t, clone)
	assert.Empty(t, clone)
}
