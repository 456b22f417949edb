/*
File    : mix/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/mixlang/mix/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment_DeclareAndGet(t *testing.T) {
	env := New()
	env.Declare("x", &objects.Number{Value: 42})

	val, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, float64(42), val.(*objects.Number).Value)
}

func TestEnvironment_UndeclaredLookupFails(t *testing.T) {
	env := New()
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestEnvironment_DeclareOverwritesPriorBinding(t *testing.T) {
	env := New()
	env.Declare("x", &objects.String{Value: "first"})
	env.Declare("x", &objects.String{Value: "second"})

	val, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, "second", val.(*objects.String).Value)
}
