package parser

import (
	"go.creack.net/exprparse/ast"
	"go.creack.net/exprparse/lexer"
)

// Precedence ranks how tightly an operator binds. Only the relative order of
// the levels matters.
type Precedence int

const (
	PrecLowest Precedence = iota
	PrecSum
	PrecProduct
	PrecExponent
	PrecPrefix
	PrecPostfix
)

// PrefixParselet parses the construct introduced by tok, which has already
// been consumed.
type PrefixParselet func(p *Parser, tok lexer.Token) (ast.Expr, error)

// InfixParselet parses the construct introduced by tok after left was parsed.
// prec is the precedence tok was registered with.
type InfixParselet func(p *Parser, left ast.Expr, tok lexer.Token, prec Precedence) (ast.Expr, error)

type lookupTable[T any] map[lexer.TokenKind]T

// RegisterInfix registers fn for kind in infix position. It panics if kind
// already has an infix parselet.
func (p *Parser) RegisterInfix(kind lexer.TokenKind, prec Precedence, fn InfixParselet) {
	if _, ok := p.infixLookupTable[kind]; ok {
		panic("duplicate infix parselet for " + kind.String())
	}
	p.infixLookupTable[kind] = fn
	p.precedenceLookupTable[kind] = prec
}

// RegisterPrefix registers fn for kind in prefix position. It panics if kind
// already has a prefix parselet.
func (p *Parser) RegisterPrefix(kind lexer.TokenKind, fn PrefixParselet) {
	if _, ok := p.prefixLookupTable[kind]; ok {
		panic("duplicate prefix parselet for " + kind.String())
	}
	p.prefixLookupTable[kind] = fn
}

func (p *Parser) createTokenLookups() {
	// Additive & multiplicative.
	p.RegisterInfix(lexer.TokPlus, PrecSum, parseBinaryExpr)
	p.RegisterInfix(lexer.TokMinus, PrecSum, parseBinaryExpr)
	p.RegisterInfix(lexer.TokStar, PrecProduct, parseBinaryExpr)
	p.RegisterInfix(lexer.TokSlash, PrecProduct, parseBinaryExpr)

	// Exponent is right associative.
	p.RegisterInfix(lexer.TokCaret, PrecExponent, parseRightBinaryExpr)

	// Factorial.
	p.RegisterInfix(lexer.TokBang, PrecPostfix, parsePostfixExpr)

	// Literals, grouping & negation.
	p.RegisterPrefix(lexer.TokInteger, parseIntegerLiteral)
	p.RegisterPrefix(lexer.TokFloat, parseFloatLiteral)
	p.RegisterPrefix(lexer.TokParenLeft, parseGroupingExpr)
	p.RegisterPrefix(lexer.TokMinus, parsePrefixExpr)
}
