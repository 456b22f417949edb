/*
File    : mix/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator: it walks the
// statements produced by parser.Parse against a single flat
// environment.Environment, writing print side effects to an io.Writer and
// surfacing the first runtime diagnostic encountered.
//
// Errors propagate as values, not panics: every Visit method returns an
// objects.GoMixObject, and a failed sub-evaluation returns an *objects.Error
// that the caller checks with IsError and forwards upward — the same idiom
// the teacher's evaluator used (eval/evaluator_expressions.go: Eval's
// type-switch, eval/evaluator_helpers.go: IsError).
package eval

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/mixlang/mix/diag"
	"github.com/mixlang/mix/environment"
	"github.com/mixlang/mix/lexer"
	"github.com/mixlang/mix/objects"
	"github.com/mixlang/mix/parser"
)

// Evaluator holds the state for one run: the global environment and the
// output destination for "print".
type Evaluator struct {
	Env    *environment.Environment
	Writer io.Writer
}

// NewEvaluator creates an Evaluator with a fresh environment, writing to
// stdout by default.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Env:    environment.New(),
		Writer: os.Stdout,
	}
}

// SetWriter redirects "print" output, e.g. to a buffer under test or to the
// REPL's colorized writer.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// IsError reports whether obj is an in-band evaluator error.
func IsError(obj objects.GoMixObject) bool {
	if obj == nil {
		return false
	}
	return obj.GetType() == objects.ErrorType
}

// createError builds an *objects.Error carrying the coordinate of tok, the
// token responsible for the failing operation.
func createError(tok lexer.Token, format string, a ...interface{}) *objects.Error {
	return &objects.Error{Message: fmt.Sprintf(format, a...), Line: tok.Line, Column: tok.Column}
}

// Eval executes stmts in order against e.Env, stopping at the first runtime
// error. It returns the error, or nil if every statement evaluated cleanly.
func (e *Evaluator) Eval(stmts []parser.Stmt) *objects.Error {
	for _, stmt := range stmts {
		result := stmt.Accept(e)
		if IsError(result) {
			return result.(*objects.Error)
		}
	}
	return nil
}

// VisitExprStmt evaluates the expression and discards its value.
func (e *Evaluator) VisitExprStmt(node *parser.ExprStmt) objects.GoMixObject {
	return node.Expression.Accept(e)
}

// VisitPrintStmt evaluates the expression and writes its printed form
// followed by a newline.
func (e *Evaluator) VisitPrintStmt(node *parser.PrintStmt) objects.GoMixObject {
	val := node.Expression.Accept(e)
	if IsError(val) {
		return val
	}
	fmt.Fprintln(e.Writer, val.ToString())
	return &objects.Nil{}
}

// VisitVarDeclStmt evaluates the initializer (or uses nil) and binds it.
func (e *Evaluator) VisitVarDeclStmt(node *parser.VarDeclStmt) objects.GoMixObject {
	var val objects.GoMixObject = &objects.Nil{}
	if node.Initializer != nil {
		val = node.Initializer.Accept(e)
		if IsError(val) {
			return val
		}
	}
	e.Env.Declare(node.Name.Lexeme, val)
	return &objects.Nil{}
}

// VisitLiteralExpr returns the token's pre-decoded literal value.
func (e *Evaluator) VisitLiteralExpr(node *parser.LiteralExpr) objects.GoMixObject {
	return node.Value
}

// VisitGroupingExpr evaluates the parenthesized inner expression.
func (e *Evaluator) VisitGroupingExpr(node *parser.GroupingExpr) objects.GoMixObject {
	return node.Expression.Accept(e)
}

// VisitVariableExpr looks the identifier up in the environment.
func (e *Evaluator) VisitVariableExpr(node *parser.VariableExpr) objects.GoMixObject {
	val, ok := e.Env.Get(node.Name.Lexeme)
	if !ok {
		return createError(node.Name, "Undefined variable '%s'", node.Name.Lexeme)
	}
	return val
}

// VisitUnaryExpr evaluates the operand, then applies "-" (numeric negation)
// or "!" (truthiness negation).
func (e *Evaluator) VisitUnaryExpr(node *parser.UnaryExpr) objects.GoMixObject {
	right := node.Right.Accept(e)
	if IsError(right) {
		return right
	}

	switch node.Operator.Type {
	case lexer.MINUS:
		num, ok := requireNumber(right)
		if !ok {
			return createError(node.Operator, "Operand must be a number")
		}
		return &objects.Number{Value: -num}
	case lexer.BANG:
		return &objects.Boolean{Value: !isTruthy(right)}
	default:
		return createError(node.Operator, "Unknown unary operator '%s'", node.Operator.Lexeme)
	}
}

// VisitBinaryExpr evaluates both operands, left first, then applies the
// operator per spec §4.5.
func (e *Evaluator) VisitBinaryExpr(node *parser.BinaryExpr) objects.GoMixObject {
	left := node.Left.Accept(e)
	if IsError(left) {
		return left
	}
	right := node.Right.Accept(e)
	if IsError(right) {
		return right
	}

	op := node.Operator

	switch op.Type {
	case lexer.PLUS:
		if left.GetType() == objects.StringType || right.GetType() == objects.StringType {
			return &objects.String{Value: left.ToString() + right.ToString()}
		}
		l, r, ok := requireNumberPair(left, right)
		if !ok {
			return createError(op, "Operands must be numbers or at least one must be a string")
		}
		return &objects.Number{Value: l + r}
	case lexer.MINUS:
		l, r, ok := requireNumberPair(left, right)
		if !ok {
			return createError(op, "Operands must be numbers")
		}
		return &objects.Number{Value: l - r}
	case lexer.STAR:
		l, r, ok := requireNumberPair(left, right)
		if !ok {
			return createError(op, "Operands must be numbers")
		}
		return &objects.Number{Value: l * r}
	case lexer.SLASH:
		l, r, ok := requireNumberPair(left, right)
		if !ok {
			return createError(op, "Operands must be numbers")
		}
		return &objects.Number{Value: l / r}
	case lexer.GREATER:
		l, r, ok := requireNumberPair(left, right)
		if !ok {
			return createError(op, "Operands must be numbers")
		}
		return &objects.Boolean{Value: l > r}
	case lexer.GREATER_EQUAL:
		l, r, ok := requireNumberPair(left, right)
		if !ok {
			return createError(op, "Operands must be numbers")
		}
		return &objects.Boolean{Value: l >= r}
	case lexer.LESS:
		l, r, ok := requireNumberPair(left, right)
		if !ok {
			return createError(op, "Operands must be numbers")
		}
		return &objects.Boolean{Value: l < r}
	case lexer.LESS_EQUAL:
		l, r, ok := requireNumberPair(left, right)
		if !ok {
			return createError(op, "Operands must be numbers")
		}
		return &objects.Boolean{Value: l <= r}
	case lexer.EQUAL_EQUAL:
		return &objects.Boolean{Value: valuesEqual(left, right)}
	case lexer.BANG_EQUAL:
		return &objects.Boolean{Value: !valuesEqual(left, right)}
	default:
		return createError(op, "Unknown binary operator '%s'", op.Lexeme)
	}
}

// isTruthy applies the uniform truthiness rule: nil and false are falsy,
// everything else (including 0 and "") is truthy.
func isTruthy(val objects.GoMixObject) bool {
	switch val.GetType() {
	case objects.NilType:
		return false
	case objects.BooleanType:
		return val.(*objects.Boolean).Value
	default:
		return true
	}
}

// requireNumber extracts a float64 from val, rejecting non-number values and
// NaN — the retained "bug" of spec §9: NaN is rejected as an operand even
// though IEEE-754 would normally let it propagate.
func requireNumber(val objects.GoMixObject) (float64, bool) {
	if val.GetType() != objects.NumberType {
		return 0, false
	}
	n := val.(*objects.Number).Value
	if math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

func requireNumberPair(left, right objects.GoMixObject) (float64, float64, bool) {
	l, ok := requireNumber(left)
	if !ok {
		return 0, 0, false
	}
	r, ok := requireNumber(right)
	if !ok {
		return 0, 0, false
	}
	return l, r, true
}

// valuesEqual implements structural, tag-discriminating equality: values of
// different variants are never equal, even when superficially comparable
// (1 == "1" is false; nil == false is false).
func valuesEqual(left, right objects.GoMixObject) bool {
	if left.GetType() != right.GetType() {
		return false
	}
	switch left.GetType() {
	case objects.NumberType:
		return left.(*objects.Number).Value == right.(*objects.Number).Value
	case objects.StringType:
		return left.(*objects.String).Value == right.(*objects.String).Value
	case objects.BooleanType:
		return left.(*objects.Boolean).Value == right.(*objects.Boolean).Value
	case objects.NilType:
		return true
	default:
		return false
	}
}

// DiagFromError converts the evaluator's in-band *objects.Error into the
// shared diag.Diagnostic any driver (file mode, REPL) reports once
// evaluation halts, carrying the coordinate spec §7 mandates instead of the
// bare objects.Error.ToString() message.
func DiagFromError(err *objects.Error) *diag.Diagnostic {
	return diag.At(diag.RuntimeError, err.Line, err.Column, "%s", err.Message)
}
