/*
File    : mix/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_ExprStmtPrecedence(t *testing.T) {
	par := NewParser("1 + 2 * 3;")
	stmts := par.Parse()
	require.False(t, par.HasErrors())
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ExprStmt)
	require.True(t, ok)

	top, ok := exprStmt.Expression.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", top.Operator.Lexeme)

	right, ok := top.Right.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", right.Operator.Lexeme)
}

func TestParser_LeftAssociativity(t *testing.T) {
	par := NewParser("1 - 2 - 3;")
	stmts := par.Parse()
	require.False(t, par.HasErrors())
	require.Len(t, stmts, 1)

	exprStmt := stmts[0].(*ExprStmt)
	top, ok := exprStmt.Expression.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "-", top.Operator.Lexeme)

	_, leftIsBinary := top.Left.(*BinaryExpr)
	assert.True(t, leftIsBinary, "left-associative tree should nest on the left")
}

func TestParser_Grouping(t *testing.T) {
	par := NewParser("(1 + 2) * 3;")
	stmts := par.Parse()
	require.False(t, par.HasErrors())

	exprStmt := stmts[0].(*ExprStmt)
	top := exprStmt.Expression.(*BinaryExpr)
	assert.Equal(t, "*", top.Operator.Lexeme)
	_, leftIsGrouping := top.Left.(*GroupingExpr)
	assert.True(t, leftIsGrouping)
}

func TestParser_VarDecl(t *testing.T) {
	par := NewParser(`var a = 1;`)
	stmts := par.Parse()
	require.False(t, par.HasErrors())
	require.Len(t, stmts, 1)

	decl, ok := stmts[0].(*VarDeclStmt)
	require.True(t, ok)
	assert.Equal(t, "a", decl.Name.Lexeme)
	require.NotNil(t, decl.Initializer)
}

func TestParser_VarDeclNoInitializer(t *testing.T) {
	par := NewParser(`var a;`)
	stmts := par.Parse()
	require.False(t, par.HasErrors())
	require.Len(t, stmts, 1)

	decl := stmts[0].(*VarDeclStmt)
	assert.Nil(t, decl.Initializer)
}

func TestParser_PrintStmt(t *testing.T) {
	par := NewParser(`print "hello";`)
	stmts := par.Parse()
	require.False(t, par.HasErrors())
	require.Len(t, stmts, 1)

	_, ok := stmts[0].(*PrintStmt)
	assert.True(t, ok)
}

func TestParser_MissingSemicolonRecordsError(t *testing.T) {
	par := NewParser(`var a = 1`)
	par.Parse()
	assert.True(t, par.HasErrors())
}

func TestParser_SynchronizeRecoversAfterError(t *testing.T) {
	par := NewParser(`var = 1; print 2;`)
	stmts := par.Parse()
	assert.True(t, par.HasErrors())
	// despite the first statement's error, the parser recovers and still
	// parses the well-formed print statement that follows.
	foundPrint := false
	for _, s := range stmts {
		if _, ok := s.(*PrintStmt); ok {
			foundPrint = true
		}
	}
	assert.True(t, foundPrint)
}

func TestParser_UnexpectedTokenMessage(t *testing.T) {
	par := NewParser(`1 + ;`)
	par.Parse()
	require.True(t, par.HasErrors())
	errs := par.GetErrors()
	assert.Contains(t, errs[0], "Unexpected token")
}
