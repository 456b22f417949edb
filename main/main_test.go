/*
File    : mix/main/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mixlang/mix/eval"
)

func TestRun_PrecedenceAndPrint(t *testing.T) {
	var out, errOut bytes.Buffer
	status := eval.Run("print 1 + 2 * 3;", &out, &errOut)
	assert.Equal(t, eval.StatusOK, status)
	assert.Equal(t, "7\n", out.String())
}

func TestRun_RuntimeErrorExitsSeventy(t *testing.T) {
	var out, errOut bytes.Buffer
	status := eval.Run("print undefined_name;", &out, &errOut)
	assert.Equal(t, eval.StatusRuntimeError, status)
	assert.Equal(t, 70, status.ExitCode())
	assert.NotEmpty(t, errOut.String())
}

func TestRun_CompileErrorExitsSixtyFive(t *testing.T) {
	var out, errOut bytes.Buffer
	status := eval.Run("1 + ;", &out, &errOut)
	assert.Equal(t, eval.StatusCompileError, status)
	assert.Equal(t, 65, status.ExitCode())
	assert.NotEmpty(t, errOut.String())
}
