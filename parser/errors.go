package parser

import (
	"fmt"

	"go.creack.net/exprparse/lexer"
)

// ErrSyntax is matched, through errors.Is, by every error returned while
// lexing or parsing. Evaluation faults never match it.
var ErrSyntax = lexer.ErrSyntax

func describe(tok lexer.Token) string {
	if tok.Kind == lexer.TokEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s %q at %d", tok.Kind, tok.Lexeme, tok.Span.Start)
}

// NoPrefixParseletError is returned when a token that cannot begin an
// expression is found where one is expected.
type NoPrefixParseletError struct {
	Token lexer.Token
}

func (e *NoPrefixParseletError) Error() string {
	return "no prefix parselet for " + describe(e.Token)
}

func (e *NoPrefixParseletError) Is(target error) bool { return target == ErrSyntax }

// NoInfixParseletError is returned when a token has a precedence but no infix
// parselet. Unreachable with a consistent grammar.
type NoInfixParseletError struct {
	Token lexer.Token
}

func (e *NoInfixParseletError) Error() string {
	return "no infix parselet for " + describe(e.Token)
}

func (e *NoInfixParseletError) Is(target error) bool { return target == ErrSyntax }

// UnexpectedTokenError is returned when a required token, usually ')', is
// missing.
type UnexpectedTokenError struct {
	Expected lexer.TokenKind
	Got      lexer.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, describe(e.Got))
}

func (e *UnexpectedTokenError) Is(target error) bool { return target == ErrSyntax }

// UnexpectedPrimaryError is returned when no integer, float or '(' is found
// where an operand must start.
type UnexpectedPrimaryError struct {
	Got lexer.Token
}

func (e *UnexpectedPrimaryError) Error() string {
	return fmt.Sprintf("expected %s, %s or %s, got %s",
		lexer.TokInteger, lexer.TokFloat, lexer.TokParenLeft, describe(e.Got))
}

func (e *UnexpectedPrimaryError) Is(target error) bool { return target == ErrSyntax }

// TrailingInputError is returned when tokens remain after a complete
// expression.
type TrailingInputError struct {
	Token lexer.Token
}

func (e *TrailingInputError) Error() string {
	return fmt.Sprintf("expected %s, got %s", lexer.TokEOF, describe(e.Token))
}

func (e *TrailingInputError) Is(target error) bool { return target == ErrSyntax }

// InvalidNumericLiteralError is returned when a literal does not fit its
// target numeric type.
type InvalidNumericLiteralError struct {
	Text   string
	Target string
	Err    error
}

func (e *InvalidNumericLiteralError) Error() string {
	return fmt.Sprintf("invalid %s literal %q: %s", e.Target, e.Text, e.Err)
}

func (e *InvalidNumericLiteralError) Unwrap() error { return e.Err }

func (e *InvalidNumericLiteralError) Is(target error) bool { return target == ErrSyntax }

// UnmatchedParenthesisError is returned by the shunting-yard engine when
// parentheses do not balance. Token is the offending parenthesis.
type UnmatchedParenthesisError struct {
	Token lexer.Token
}

func (e *UnmatchedParenthesisError) Error() string {
	return "unmatched parenthesis " + describe(e.Token)
}

func (e *UnmatchedParenthesisError) Is(target error) bool { return target == ErrSyntax }
