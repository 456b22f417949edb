/*
File    : mix/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer implements the scanner for the mix language: it consumes a
// source string and produces an ordered sequence of tokens, terminated by a
// single EOF token.
package lexer

import (
	"strconv"

	"github.com/mixlang/mix/diag"
)

// Lexer holds scanning state over a source string.
type Lexer struct {
	Src       string
	Current   byte // the character at Position, or 0 past end of input
	Position  int
	SrcLength int
	Line      int
	Column    int
	stopped   bool // set once a lexical error has been reported
}

// NewLexer creates a Lexer positioned at the first character of src.
func NewLexer(src string) Lexer {
	lex := Lexer{
		Src:       src,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
	}
	if lex.SrcLength > 0 {
		lex.Current = src[0]
	}
	return lex
}

// Peek returns the next character without consuming it, or 0 past end of
// input.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance consumes the current character and moves the cursor forward,
// updating the line/column coordinate. A newline resets the column to 1 and
// increments the line.
func (lex *Lexer) Advance() {
	if lex.Current == '\n' {
		lex.Line++
		lex.Column = 1
	} else {
		lex.Column++
	}
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// atEnd reports whether the scanner has consumed the entire source.
func (lex *Lexer) atEnd() bool {
	return lex.Position >= lex.SrcLength
}

// ignoreWhitespaceAndComments skips spaces, tabs, carriage returns,
// newlines, and `//` line comments.
func (lex *Lexer) ignoreWhitespaceAndComments() {
	for !lex.atEnd() {
		switch lex.Current {
		case ' ', '\t', '\r', '\n':
			lex.Advance()
		case '/':
			if lex.Peek() == '/' {
				for !lex.atEnd() && lex.Current != '\n' {
					lex.Advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

// NextToken scans and returns the next token. On a lexical error
// (unrecognized character or unterminated string) it returns a diagnostic
// and permanently halts the scanner: every subsequent call returns an EOF
// token at the error's coordinate without doing any further scanning, so a
// caller's lookahead loop terminates cleanly.
func (lex *Lexer) NextToken() (Token, *diag.Diagnostic) {
	if lex.stopped {
		return NewToken(EOF, "", lex.Line, lex.Column), nil
	}

	lex.ignoreWhitespaceAndComments()

	line, col := lex.Line, lex.Column

	if lex.atEnd() {
		return NewToken(EOF, "", line, col), nil
	}

	c := lex.Current

	switch {
	case c == '(':
		lex.Advance()
		return NewToken(LEFT_PAREN, "(", line, col), nil
	case c == ')':
		lex.Advance()
		return NewToken(RIGHT_PAREN, ")", line, col), nil
	case c == '{':
		lex.Advance()
		return NewToken(LEFT_BRACE, "{", line, col), nil
	case c == '}':
		lex.Advance()
		return NewToken(RIGHT_BRACE, "}", line, col), nil
	case c == ',':
		lex.Advance()
		return NewToken(COMMA, ",", line, col), nil
	case c == '.':
		if isDigit(lex.Peek()) {
			return lex.readNumber(line, col)
		}
		lex.Advance()
		return NewToken(DOT, ".", line, col), nil
	case c == '-':
		lex.Advance()
		return NewToken(MINUS, "-", line, col), nil
	case c == '+':
		lex.Advance()
		return NewToken(PLUS, "+", line, col), nil
	case c == ';':
		lex.Advance()
		return NewToken(SEMICOLON, ";", line, col), nil
	case c == '*':
		lex.Advance()
		return NewToken(STAR, "*", line, col), nil
	case c == '/':
		lex.Advance()
		return NewToken(SLASH, "/", line, col), nil
	case c == '!':
		lex.Advance()
		if lex.Current == '=' {
			lex.Advance()
			return NewToken(BANG_EQUAL, "!=", line, col), nil
		}
		return NewToken(BANG, "!", line, col), nil
	case c == '=':
		lex.Advance()
		if lex.Current == '=' {
			lex.Advance()
			return NewToken(EQUAL_EQUAL, "==", line, col), nil
		}
		return NewToken(EQUAL, "=", line, col), nil
	case c == '<':
		lex.Advance()
		if lex.Current == '=' {
			lex.Advance()
			return NewToken(LESS_EQUAL, "<=", line, col), nil
		}
		return NewToken(LESS, "<", line, col), nil
	case c == '>':
		lex.Advance()
		if lex.Current == '=' {
			lex.Advance()
			return NewToken(GREATER_EQUAL, ">=", line, col), nil
		}
		return NewToken(GREATER, ">", line, col), nil
	case c == '"':
		return lex.readString(line, col)
	case isDigit(c):
		return lex.readNumber(line, col)
	case isAlpha(c):
		return lex.readIdentifier(line, col)
	default:
		lex.stopped = true
		return NewToken(ILLEGAL, string(c), line, col), diag.At(diag.CompileError, line, col, "Unexpected character '%c'", c)
	}
}

// readString scans a `"`-delimited string literal. Strings may span
// multiple lines and have no escape processing — backslash has no special
// meaning. An unterminated string halts scanning.
func (lex *Lexer) readString(line, col int) (Token, *diag.Diagnostic) {
	lex.Advance() // consume opening quote
	start := lex.Position
	for !lex.atEnd() && lex.Current != '"' {
		lex.Advance()
	}
	if lex.atEnd() {
		lex.stopped = true
		return NewToken(ILLEGAL, "", line, col), diag.At(diag.CompileError, lex.Line, lex.Column, "Unterminated string")
	}
	body := lex.Src[start:lex.Position]
	lex.Advance() // consume closing quote
	lexeme := `"` + body + `"`
	return NewLiteralToken(STRING, lexeme, body, line, col), nil
}

// readNumber scans a digit run with an optional fractional part: a run of
// digits, optionally followed by `.` and another run of digits (or a
// leading `.` followed directly by a digit run).
func (lex *Lexer) readNumber(line, col int) (Token, *diag.Diagnostic) {
	start := lex.Position
	for isDigit(lex.Current) {
		lex.Advance()
	}
	if lex.Current == '.' && isDigit(lex.Peek()) {
		lex.Advance()
		for isDigit(lex.Current) {
			lex.Advance()
		}
	}
	lexeme := lex.Src[start:lex.Position]
	val, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		lex.stopped = true
		return NewToken(ILLEGAL, lexeme, line, col), diag.At(diag.CompileError, line, col, "Invalid number literal '%s'", lexeme)
	}
	return NewLiteralToken(NUMBER, lexeme, val, line, col), nil
}

// readIdentifier scans a run of letters/digits/underscore starting with a
// letter or underscore, then classifies it as a reserved word, a boolean
// literal, or a plain identifier.
func (lex *Lexer) readIdentifier(line, col int) (Token, *diag.Diagnostic) {
	start := lex.Position
	for isAlphaNumeric(lex.Current) {
		lex.Advance()
	}
	lexeme := lex.Src[start:lex.Position]
	typ := lookupIdent(lexeme)
	if typ == TRUE || typ == FALSE {
		return NewLiteralToken(typ, lexeme, typ == TRUE, line, col), nil
	}
	return NewToken(typ, lexeme, line, col), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
