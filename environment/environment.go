/*
File    : mix/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the single flat variable store the
// evaluator reads and writes. There is one global environment per run — no
// parent chain, no block scoping, no constants — since this version of the
// language has no closures or nested scopes (see scope/scope.go in the
// teacher codebase for the parent-chained version this replaces).
package environment

import "github.com/mixlang/mix/objects"

// Environment is a flat name -> value store.
type Environment struct {
	variables map[string]objects.GoMixObject
}

// New creates an empty Environment.
func New() *Environment {
	return &Environment{variables: make(map[string]objects.GoMixObject)}
}

// Declare binds name to value, unconditionally overwriting any existing
// binding — "var" always (re)declares rather than erroring on redeclaration.
func (e *Environment) Declare(name string, value objects.GoMixObject) {
	e.variables[name] = value
}

// Get looks up name, reporting whether it is bound.
func (e *Environment) Get(name string) (objects.GoMixObject, bool) {
	v, ok := e.variables[name]
	return v, ok
}
