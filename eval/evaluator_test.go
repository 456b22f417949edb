/*
File    : mix/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/mixlang/mix/objects"
	"github.com/mixlang/mix/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSource(t *testing.T, src string) (string, string, ExitStatus) {
	t.Helper()
	var out, errOut bytes.Buffer
	status := Run(src, &out, &errOut)
	return out.String(), errOut.String(), status
}

func TestRun_PrecedenceScenario(t *testing.T) {
	out, _, status := runSource(t, "print 1 + 2 * 3;")
	assert.Equal(t, "7\n", out)
	assert.Equal(t, StatusOK, status)
	assert.Equal(t, 0, status.ExitCode())
}

func TestRun_StringConcatScenario(t *testing.T) {
	out, _, status := runSource(t, `var a = "Jake";
print "a = " + a;`)
	assert.Equal(t, "a = Jake\n", out)
	assert.Equal(t, StatusOK, status)
}

func TestRun_UndefinedVariableScenario(t *testing.T) {
	_, errOut, status := runSource(t, "print a;")
	assert.Contains(t, errOut, "Undefined variable 'a' at (1:7)")
	assert.Equal(t, StatusRuntimeError, status)
	assert.Equal(t, 70, status.ExitCode())
}

func TestRun_ParseErrorScenario(t *testing.T) {
	_, errOut, status := runSource(t, "1 + ;")
	assert.NotEmpty(t, errOut)
	assert.Equal(t, StatusCompileError, status)
	assert.Equal(t, 65, status.ExitCode())
}

func TestRun_UnterminatedStringScenario(t *testing.T) {
	_, errOut, status := runSource(t, `"unterminated`)
	assert.Contains(t, errOut, "Unterminated string at (1:14)")
	assert.Equal(t, StatusCompileError, status)
	assert.Equal(t, 65, status.ExitCode())
}

func TestRun_VarDeclNoInitializerScenario(t *testing.T) {
	out, _, status := runSource(t, "var a; print a;")
	assert.Equal(t, "nil\n", out)
	assert.Equal(t, StatusOK, status)
}

func TestRun_GroupingAndNegationScenario(t *testing.T) {
	out, _, status := runSource(t, "print (1 + 2) * -3;")
	assert.Equal(t, "-9\n", out)
	assert.Equal(t, StatusOK, status)
}

func TestRun_EqualityAcrossConcatScenario(t *testing.T) {
	out, _, status := runSource(t, `print "ab" == "a" + "b";`)
	assert.Equal(t, "true\n", out)
	assert.Equal(t, StatusOK, status)
}

func TestRun_Truthiness(t *testing.T) {
	out, _, status := runSource(t, `print !nil;
print !false;
print !0;
print !"";`)
	assert.Equal(t, "true\ntrue\nfalse\nfalse\n", out)
	assert.Equal(t, StatusOK, status)
}

func TestRun_EqualityAcrossTypesIsFalse(t *testing.T) {
	out, _, status := runSource(t, `print 1 == "1";
print nil == false;`)
	assert.Equal(t, "false\nfalse\n", out)
	assert.Equal(t, StatusOK, status)
}

func TestRun_LeftAssociativeSubtraction(t *testing.T) {
	out, _, status := runSource(t, "print 10 - 2 - 3;")
	assert.Equal(t, "5\n", out)
	assert.Equal(t, StatusOK, status)
}

func TestRun_NumberRoundTrip(t *testing.T) {
	out, _, status := runSource(t, "print 3.5;")
	assert.Equal(t, "3.5\n", out)
	assert.Equal(t, StatusOK, status)
}

func TestRun_DivisionByZeroIsNotAnError(t *testing.T) {
	out, _, status := runSource(t, "print 1 / 0;")
	assert.Equal(t, "+Inf\n", out)
	assert.Equal(t, StatusOK, status)
}

func TestRun_NaNOperandRejected(t *testing.T) {
	_, errOut, status := runSource(t, "print (0 / 0) + 1;")
	assert.Equal(t, StatusRuntimeError, status)
	assert.NotEmpty(t, errOut)
}

func TestRun_PartialSideEffectsObservableBeforeFailure(t *testing.T) {
	out, _, status := runSource(t, `print 1;
print a;
print 2;`)
	assert.Equal(t, "1\n", out)
	assert.Equal(t, StatusRuntimeError, status)
}

func TestEvaluator_EnvDeclareOverwritesPriorBinding(t *testing.T) {
	ev := NewEvaluator()
	ev.Env.Declare("x", &objects.Number{Value: 1})
	ev.Env.Declare("x", &objects.Number{Value: 2})
	val, ok := ev.Env.Get("x")
	require.True(t, ok)
	assert.Equal(t, float64(2), val.(*objects.Number).Value)
}

func TestEvaluator_DirectEval(t *testing.T) {
	par := parser.NewParser("var x = 2 + 3; print x * 2;")
	stmts := par.Parse()
	require.False(t, par.HasErrors())

	ev := NewEvaluator()
	var buf bytes.Buffer
	ev.SetWriter(&buf)
	err := ev.Eval(stmts)
	require.Nil(t, err)
	assert.Equal(t, "10\n", buf.String())
}
