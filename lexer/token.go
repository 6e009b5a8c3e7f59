package lexer

import (
	"fmt"
	"slices"
)

// TokenKind is the kind of token.
type TokenKind int

// Token kinds as constants.
const (
	TokIllegal TokenKind = iota
	TokEOF

	// Literals.
	TokInteger
	TokFloat

	// Operators.
	TokPlus  // '+'.
	TokMinus // '-'.
	TokStar  // '*'.
	TokSlash // '/'.
	TokCaret // '^'.
	TokBang  // '!'.

	// Delimiters.
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token kind.
func (tk TokenKind) String() string {
	return tokenKindStrings[tk]
}

// Map of token kinds to their string representation for debugging.
var tokenKindStrings = map[TokenKind]string{
	TokIllegal: "ILLEGAL",
	TokEOF:     "EOF",

	TokInteger: "INTEGER",
	TokFloat:   "FLOAT",

	TokPlus:  "PLUS",
	TokMinus: "MINUS",
	TokStar:  "STAR",
	TokSlash: "SLASH",
	TokCaret: "CARET",
	TokBang:  "BANG",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

// Symbol returns the source text of an operator or delimiter kind, or the
// debug name for kinds without fixed text.
func (tk TokenKind) Symbol() string {
	if s, ok := tokenKindSymbols[tk]; ok {
		return s
	}
	return tk.String()
}

var tokenKindSymbols = map[TokenKind]string{
	TokPlus:       "+",
	TokMinus:      "-",
	TokStar:       "*",
	TokSlash:      "/",
	TokCaret:      "^",
	TokBang:       "!",
	TokParenLeft:  "(",
	TokParenRight: ")",
}

func (tk TokenKind) IsOneOf(k ...TokenKind) bool {
	return slices.Contains(k, tk)
}

// Span is a half open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Start, s.End)
}

// Token represents a lexical token of an arithmetic expression.
// Numeric literals keep their source text, conversion is left to the parser.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Span   Span
}

func (t Token) String() string {
	switch {
	case t.Kind == TokEOF:
		return "EOF"
	case len(t.Lexeme) > 16:
		return fmt.Sprintf("%s[%s]: %.16q", t.Kind, t.Span, t.Lexeme)
	}
	return fmt.Sprintf("%s[%s]: %q", t.Kind, t.Span, t.Lexeme)
}
