/*
File    : mix/eval/run.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"io"

	"github.com/mixlang/mix/parser"
)

// ExitStatus mirrors spec §6's three-way result of a single run.
type ExitStatus int

const (
	// StatusOK means the program parsed and ran to completion.
	StatusOK ExitStatus = iota
	// StatusCompileError means the scanner or parser reported diagnostics.
	StatusCompileError
	// StatusRuntimeError means evaluation halted on a runtime diagnostic.
	StatusRuntimeError
)

// ExitCode maps a Status to the process exit code table in spec §6.
func (s ExitStatus) ExitCode() int {
	switch s {
	case StatusOK:
		return 0
	case StatusCompileError:
		return 65
	case StatusRuntimeError:
		return 70
	default:
		return 1
	}
}

// Run is the core entry point: it parses source, and on a clean parse
// evaluates it, writing "print" output to out and diagnostics (one per
// line) to errOut. It returns the resulting ExitStatus.
func Run(source string, out io.Writer, errOut io.Writer) ExitStatus {
	par := parser.NewParser(source)
	stmts := par.Parse()

	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			fmt.Fprintln(errOut, msg)
		}
		return StatusCompileError
	}

	ev := NewEvaluator()
	ev.SetWriter(out)

	if err := ev.Eval(stmts); err != nil {
		d := DiagFromError(err)
		fmt.Fprintln(errOut, d.Error())
		return StatusRuntimeError
	}

	return StatusOK
}
