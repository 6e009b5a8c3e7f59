// Package parser implements a Pratt (top down operator precedence) parser
// for arithmetic expressions, along with the errors shared by every parsing
// engine of this module.
package parser

import (
	"go.creack.net/exprparse/ast"
	"go.creack.net/exprparse/lexer"
)

// Parser is a Pratt parser. Tokens are read from the lexer on demand into a
// lookahead buffer and consumed exactly once, in order.
//
// The parselets recurse on nesting, so the call stack bounds how deep an
// input can nest.
type Parser struct {
	lex *lexer.Lexer

	lookahead []lexer.Token // Buffer.

	prefixLookupTable     lookupTable[PrefixParselet]
	infixLookupTable      lookupTable[InfixParselet]
	precedenceLookupTable lookupTable[Precedence]
}

// NewEmpty returns a parser with no parselets registered.
func NewEmpty(lex *lexer.Lexer) *Parser {
	return &Parser{
		lex:                   lex,
		prefixLookupTable:     lookupTable[PrefixParselet]{},
		infixLookupTable:      lookupTable[InfixParselet]{},
		precedenceLookupTable: lookupTable[Precedence]{},
	}
}

// New returns a parser for the arithmetic grammar: integers, floats,
// + - * / ^, unary minus, postfix ! and parentheses.
func New(lex *lexer.Lexer) *Parser {
	p := NewEmpty(lex)
	p.createTokenLookups()
	return p
}

// Parse parses input with a fresh lexer and parser.
func Parse(input string) (ast.Expr, error) {
	return New(lexer.New(input)).Parse()
}

// Parse parses one expression which must span the whole input.
func (p *Parser) Parse() (ast.Expr, error) {
	expr, err := p.ParseExpression(PrecLowest)
	if err != nil {
		return nil, err
	}
	tok, err := p.lookAhead(0)
	if err != nil {
		return nil, err
	}
	if tok.Kind != lexer.TokEOF {
		return nil, &TrailingInputError{Token: tok}
	}
	return expr, nil
}

// Expect consumes the next token if it is of the expected kind.
func (p *Parser) Expect(kind lexer.TokenKind) (lexer.Token, error) {
	tok, err := p.lookAhead(0)
	if err != nil {
		return tok, err
	}
	if tok.Kind != kind {
		return tok, &UnexpectedTokenError{Expected: kind, Got: tok}
	}
	return p.consume()
}

func (p *Parser) consume() (lexer.Token, error) {
	tok, err := p.lookAhead(0)
	if err != nil {
		return tok, err
	}
	p.lookahead = p.lookahead[1:]
	return tok, nil
}

func (p *Parser) lookAhead(distance int) (lexer.Token, error) {
	for distance >= len(p.lookahead) {
		tok := p.lex.NextToken()
		if err := p.lex.Err(); err != nil {
			return tok, err
		}
		p.lookahead = append(p.lookahead, tok)
	}
	return p.lookahead[distance], nil
}

// peekPrecedence returns the precedence of the next token, or PrecLowest if
// it has none so that unknown tokens end the expression.
func (p *Parser) peekPrecedence() (Precedence, error) {
	tok, err := p.lookAhead(0)
	if err != nil {
		return PrecLowest, err
	}
	if prec, ok := p.precedenceLookupTable[tok.Kind]; ok {
		return prec, nil
	}
	return PrecLowest, nil
}
