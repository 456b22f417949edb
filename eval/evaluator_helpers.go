/*
File    : mix/eval/evaluator_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strings"
	"testing"

	"github.com/mixlang/mix/objects"
)

// AssertError fails the test unless obj is an *objects.Error whose message
// contains expected. Substring matching keeps tests stable across wording
// tweaks to a diagnostic's coordinate/prefix.
func AssertError(t *testing.T, obj objects.GoMixObject, expected string) {
	errObj, ok := obj.(*objects.Error)
	if !ok {
		t.Errorf("not error. got=%T (%+v)", obj, obj)
		return
	}
	if !strings.Contains(errObj.Message, expected) {
		t.Errorf("wrong error message. expected to contain=%q, got=%q", expected, errObj.Message)
	}
}

// AssertNumber fails the test unless obj is an *objects.Number with the
// expected value.
func AssertNumber(t *testing.T, obj objects.GoMixObject, expected float64) {
	result, ok := obj.(*objects.Number)
	if !ok {
		t.Errorf("object is not Number. got=%T (%+v)", obj, obj)
		return
	}
	if result.Value != expected {
		t.Errorf("object has wrong value. got=%f, want=%f", result.Value, expected)
	}
}

// AssertBoolean fails the test unless obj is an *objects.Boolean with the
// expected value.
func AssertBoolean(t *testing.T, obj objects.GoMixObject, expected bool) {
	result, ok := obj.(*objects.Boolean)
	if !ok {
		t.Errorf("object is not Boolean. got=%T (%+v)", obj, obj)
		return
	}
	if result.Value != expected {
		t.Errorf("object has wrong value. got=%t, want=%t", result.Value, expected)
	}
}

// AssertNil fails the test unless obj is a Go-Mix Nil value.
func AssertNil(t *testing.T, obj objects.GoMixObject) {
	if obj == nil || obj.GetType() != objects.NilType {
		t.Errorf("object is not nil. got=%T (%+v)", obj, obj)
	}
}

// AssertString fails the test unless obj is an *objects.String with the
// expected value.
func AssertString(t *testing.T, obj objects.GoMixObject, expected string) {
	result, ok := obj.(*objects.String)
	if !ok {
		t.Errorf("object is not String. got=%T (%+v)", obj, obj)
		return
	}
	if result.Value != expected {
		t.Errorf("object has wrong value. got=%q, want=%q", result.Value, expected)
	}
}
