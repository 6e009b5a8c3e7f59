// Package lexer provides a lexical analyzer for arithmetic expressions.
package lexer

import (
	"errors"
	"fmt"
	"strings"
)

const digits = "0123456789"

// ErrSyntax is matched by every error reported while lexing or parsing an
// expression. Arithmetic faults at evaluation time do not match it.
var ErrSyntax = errors.New("syntax error")

// LexicalError is reported when a literal is malformed, e.g. a '.' not
// followed by a digit.
type LexicalError struct {
	Expected string
	Got      string
	Pos      int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("expected %s at %d, got %q", e.Expected, e.Pos, e.Got)
}

func (e *LexicalError) Is(target error) bool { return target == ErrSyntax }

type Lexer struct {
	input string

	curToken Token

	pos   int // Current position in input.
	start int // Position of the start of the current token.

	err error
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next token of the input. Once the input is exhausted
// it keeps returning TokEOF. Unknown characters are returned as TokIllegal
// tokens rather than reported as errors.
//
// A malformed float stops the lexer: an illegal token holding the consumed
// text is returned and Err reports the cause.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Kind: TokEOF, Span: Span{Start: l.pos, End: l.pos}}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Err returns the lexical error that stopped the lexer, if any.
func (l *Lexer) Err() error {
	return l.err
}

// All drains the lexer up to and including the end marker.
func (l *Lexer) All() ([]Token, error) {
	var tokens []Token
	for {
		tok := l.NextToken()
		if l.err != nil {
			return tokens, l.err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokEOF {
			return tokens, nil
		}
	}
}

// The input is treated as bytes: every character of the language is ASCII
// and anything else is reported one byte at a time as illegal.
func (l *Lexer) next() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	c := l.input[l.pos]
	l.pos++
	return c
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for l.pos < len(l.input) && strings.IndexByte(valid, l.input[l.pos]) >= 0 {
		l.pos++
		accepted = true
	}
	return accepted
}

func (l *Lexer) thisToken(tk TokenKind) Token {
	t := Token{
		Kind:   tk,
		Lexeme: l.input[l.start:l.pos],
		Span:   Span{Start: l.start, End: l.pos},
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emit(tk TokenKind) stateFn {
	l.curToken = l.thisToken(tk)
	return nil
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

func (l *Lexer) errorf(expected string) stateFn {
	got := "EOF"
	if c := l.peek(); c != 0 {
		got = string(c)
	}
	l.err = &LexicalError{Expected: expected, Got: got, Pos: l.pos}
	l.curToken = l.thisToken(TokIllegal)
	l.input = l.input[:l.pos]
	return nil
}
