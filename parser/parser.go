/*
File    : mix/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser for the mix
// language. It converts a stream of tokens from the lexer into a sequence
// of statement nodes (the AST), walked later by a Visitor such as
// eval.Evaluator.
//
// Grammar (highest to lowest precedence unwinds bottom to top):
//
//	program     := declaration* EOF
//	declaration := varDecl | statement
//	varDecl     := "var" IDENTIFIER ( "=" expression )? ";"
//	statement   := printStmt | exprStmt
//	printStmt   := "print" expression ";"
//	exprStmt    := expression ";"
//	expression  := equality
//	equality    := comparison ( ( "==" | "!=" ) comparison )*
//	comparison  := term ( ( "<" | "<=" | ">" | ">=" ) term )*
//	term        := factor ( ( "+" | "-" ) factor )*
//	factor      := unary ( ( "*" | "/" ) unary )*
//	unary       := ( "!" | "-" ) unary | primary
//	primary     := NUMBER | STRING | "true" | "false" | "nil"
//	             | IDENTIFIER | "(" expression ")"
//
// On a syntax error the parser records a diagnostic and synchronizes: it
// discards tokens until it has just consumed a SEMICOLON, or the next token
// looks like the start of a new declaration/statement, then resumes. This
// lets one parse pass surface every syntax error in the source instead of
// stopping at the first one — mirroring the teacher's Errors []string
// error-collection idiom (parser.go: Errors, addError, HasErrors, GetErrors),
// generalized here to carry diag.Diagnostic values with coordinates.
package parser

import (
	"github.com/mixlang/mix/diag"
	"github.com/mixlang/mix/lexer"
	"github.com/mixlang/mix/objects"
)

// Parser holds the token stream and the diagnostics collected while walking it.
type Parser struct {
	lex     *lexer.Lexer
	current lexer.Token
	next    lexer.Token

	Errors []*diag.Diagnostic
}

// NewParser creates a Parser over src, ready to call Parse.
func NewParser(src string) *Parser {
	lex := lexer.NewLexer(src)
	par := &Parser{lex: &lex}
	par.init()
	return par
}

func (par *Parser) init() {
	par.Errors = make([]*diag.Diagnostic, 0)
	par.advance()
	par.advance()
}

// advance shifts the lookahead window forward by one token, folding a
// lexical diagnostic from the scanner into the parser's error list exactly
// like a syntax error. The scanner's ILLEGAL token is replaced by an EOF at
// the same coordinate, so parsing ends where scanning halted.
func (par *Parser) advance() {
	par.current = par.next
	tok, lexErr := par.lex.NextToken()
	if lexErr != nil {
		par.Errors = append(par.Errors, lexErr)
		tok = lexer.NewToken(lexer.EOF, "", tok.Line, tok.Column)
	}
	par.next = tok
}

func (par *Parser) check(t lexer.TokenType) bool {
	return par.current.Type == t
}

func (par *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if par.check(t) {
			par.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it matches t, otherwise records a
// diagnostic and leaves the token stream unconsumed for synchronize to clean
// up. The diagnostic names the expected token kind, per spec §4.2's
// "Expected token: <KIND>" wording.
func (par *Parser) expect(t lexer.TokenType, _ string) (lexer.Token, bool) {
	if par.check(t) {
		tok := par.current
		par.advance()
		return tok, true
	}
	if par.check(lexer.EOF) {
		par.addError(par.current, "Unexpected end of input")
	} else {
		par.addError(par.current, "Expected token: %s", t)
	}
	return lexer.Token{}, false
}

func (par *Parser) addError(tok lexer.Token, format string, a ...interface{}) {
	par.Errors = append(par.Errors, diag.At(diag.CompileError, tok.Line, tok.Column, format, a...))
}

// HasErrors reports whether any diagnostic was recorded during parsing.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors renders every recorded diagnostic as a string, in the order
// encountered.
func (par *Parser) GetErrors() []string {
	out := make([]string, len(par.Errors))
	for i, e := range par.Errors {
		out[i] = e.Error()
	}
	return out
}

// Parse consumes the whole token stream and returns every top-level
// statement, regardless of how many syntax errors were recorded along the
// way — callers must check HasErrors before trusting the result.
func (par *Parser) Parse() []Stmt {
	var stmts []Stmt
	for !par.check(lexer.EOF) {
		stmt := par.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// declaration parses varDecl | statement, synchronizing on error.
func (par *Parser) declaration() Stmt {
	errCountBefore := len(par.Errors)
	var stmt Stmt
	if par.match(lexer.VAR) {
		stmt = par.varDecl()
	} else {
		stmt = par.statement()
	}
	if len(par.Errors) > errCountBefore {
		par.synchronize()
		return nil
	}
	return stmt
}

// varDecl parses "var" IDENTIFIER ( "=" expression )? ";" — the "var" token
// itself has already been consumed by the caller.
func (par *Parser) varDecl() Stmt {
	name, ok := par.expect(lexer.IDENTIFIER, "IDENTIFIER")
	if !ok {
		return nil
	}
	var init Expr
	if par.match(lexer.EQUAL) {
		init = par.expression()
	}
	if _, ok := par.expect(lexer.SEMICOLON, ";"); !ok {
		return nil
	}
	return &VarDeclStmt{Name: name, Initializer: init}
}

// statement parses printStmt | exprStmt.
func (par *Parser) statement() Stmt {
	if par.match(lexer.PRINT) {
		return par.printStmt()
	}
	return par.exprStmt()
}

func (par *Parser) printStmt() Stmt {
	value := par.expression()
	if _, ok := par.expect(lexer.SEMICOLON, ";"); !ok {
		return nil
	}
	return &PrintStmt{Expression: value}
}

func (par *Parser) exprStmt() Stmt {
	value := par.expression()
	if _, ok := par.expect(lexer.SEMICOLON, ";"); !ok {
		return nil
	}
	return &ExprStmt{Expression: value}
}

func (par *Parser) expression() Expr {
	return par.equality()
}

func (par *Parser) equality() Expr {
	left := par.comparison()
	for par.check(lexer.EQUAL_EQUAL) || par.check(lexer.BANG_EQUAL) {
		op := par.current
		par.advance()
		right := par.comparison()
		left = &BinaryExpr{Left: left, Operator: op, Right: right}
	}
	return left
}

func (par *Parser) comparison() Expr {
	left := par.term()
	for par.check(lexer.GREATER) || par.check(lexer.GREATER_EQUAL) || par.check(lexer.LESS) || par.check(lexer.LESS_EQUAL) {
		op := par.current
		par.advance()
		right := par.term()
		left = &BinaryExpr{Left: left, Operator: op, Right: right}
	}
	return left
}

func (par *Parser) term() Expr {
	left := par.factor()
	for par.check(lexer.PLUS) || par.check(lexer.MINUS) {
		op := par.current
		par.advance()
		right := par.factor()
		left = &BinaryExpr{Left: left, Operator: op, Right: right}
	}
	return left
}

func (par *Parser) factor() Expr {
	left := par.unary()
	for par.check(lexer.STAR) || par.check(lexer.SLASH) {
		op := par.current
		par.advance()
		right := par.unary()
		left = &BinaryExpr{Left: left, Operator: op, Right: right}
	}
	return left
}

func (par *Parser) unary() Expr {
	if par.check(lexer.BANG) || par.check(lexer.MINUS) {
		op := par.current
		par.advance()
		right := par.unary()
		return &UnaryExpr{Operator: op, Right: right}
	}
	return par.primary()
}

// primary parses NUMBER | STRING | "true" | "false" | "nil" | IDENTIFIER |
// "(" expression ")". On a token that starts none of these it records an
// "unexpected token" diagnostic and returns a nil-literal placeholder so the
// caller's tree stays well-formed for the rest of the (doomed) statement.
func (par *Parser) primary() Expr {
	switch {
	case par.check(lexer.NUMBER):
		tok := par.current
		par.advance()
		return &LiteralExpr{Token: tok, Value: &objects.Number{Value: tok.Literal.(float64)}}
	case par.check(lexer.STRING):
		tok := par.current
		par.advance()
		return &LiteralExpr{Token: tok, Value: &objects.String{Value: tok.Literal.(string)}}
	case par.check(lexer.TRUE):
		tok := par.current
		par.advance()
		return &LiteralExpr{Token: tok, Value: &objects.Boolean{Value: true}}
	case par.check(lexer.FALSE):
		tok := par.current
		par.advance()
		return &LiteralExpr{Token: tok, Value: &objects.Boolean{Value: false}}
	case par.check(lexer.NIL):
		tok := par.current
		par.advance()
		return &LiteralExpr{Token: tok, Value: &objects.Nil{}}
	case par.check(lexer.IDENTIFIER):
		tok := par.current
		par.advance()
		return &VariableExpr{Name: tok}
	case par.check(lexer.LEFT_PAREN):
		par.advance()
		inner := par.expression()
		par.expect(lexer.RIGHT_PAREN, ")")
		return &GroupingExpr{Expression: inner}
	case par.check(lexer.EOF):
		par.addError(par.current, "Unexpected end of input")
		return &LiteralExpr{Token: par.current, Value: &objects.Nil{}}
	default:
		par.addError(par.current, "Unexpected token '%s'", par.current.Lexeme)
		tok := par.current
		par.advance()
		return &LiteralExpr{Token: tok, Value: &objects.Nil{}}
	}
}

// synchronize discards tokens after a parse error until it has just consumed
// a SEMICOLON or the next token starts a new declaration/statement, so the
// parser can keep looking for further errors instead of stopping outright.
func (par *Parser) synchronize() {
	for !par.check(lexer.EOF) {
		if par.current.Type == lexer.SEMICOLON {
			par.advance()
			return
		}
		switch par.current.Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		par.advance()
	}
}
