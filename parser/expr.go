package parser

import (
	"go.creack.net/exprparse/ast"
	"go.creack.net/exprparse/lexer"
)

// ParseExpression parses an expression made of operators binding tighter
// than minPrec.
func (p *Parser) ParseExpression(minPrec Precedence) (ast.Expr, error) {
	// Parse the primary expression, always start with a prefix parselet.
	tok, err := p.consume()
	if err != nil {
		return nil, err
	}
	prefixFn, exists := p.prefixLookupTable[tok.Kind]
	if !exists {
		return nil, &NoPrefixParseletError{Token: tok}
	}
	left, err := prefixFn(p, tok)
	if err != nil {
		return nil, err
	}

	// While the next token binds tighter, fold it into left.
	for {
		prec, err := p.peekPrecedence()
		if err != nil {
			return nil, err
		}
		if prec <= minPrec {
			return left, nil
		}
		tok, err := p.consume()
		if err != nil {
			return nil, err
		}
		infixFn, exists := p.infixLookupTable[tok.Kind]
		if !exists {
			return nil, &NoInfixParseletError{Token: tok}
		}
		if left, err = infixFn(p, left, tok, prec); err != nil {
			return nil, err
		}
	}
}

func parseIntegerLiteral(_ *Parser, tok lexer.Token) (ast.Expr, error) {
	v, err := IntegerValue(tok)
	if err != nil {
		return nil, err
	}
	return ast.IntegerLiteral{Value: v}, nil
}

func parseFloatLiteral(_ *Parser, tok lexer.Token) (ast.Expr, error) {
	v, err := FloatValue(tok)
	if err != nil {
		return nil, err
	}
	return ast.FloatLiteral{Value: v}, nil
}

// parseGroupingExpr returns the inner expression as is, parentheses leave no
// node in the tree.
func parseGroupingExpr(p *Parser, _ lexer.Token) (ast.Expr, error) {
	inner, err := p.ParseExpression(PrecLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(lexer.TokParenRight); err != nil {
		return nil, err
	}
	return inner, nil
}

// parsePrefixExpr parses the operand at the lowest precedence, so -2 + 3 is
// -(2 + 3).
func parsePrefixExpr(p *Parser, tok lexer.Token) (ast.Expr, error) {
	right, err := p.ParseExpression(PrecLowest)
	if err != nil {
		return nil, err
	}
	return ast.PrefixExpr{Operator: tok.Kind, Right: right}, nil
}

func parseBinaryExpr(p *Parser, left ast.Expr, tok lexer.Token, prec Precedence) (ast.Expr, error) {
	right, err := p.ParseExpression(prec)
	if err != nil {
		return nil, err
	}
	return ast.InfixExpr{Left: left, Operator: tok.Kind, Right: right}, nil
}

// parseRightBinaryExpr parses the right operand one level lower so that an
// operator of the same precedence on its right still binds: a^b^c is a^(b^c).
func parseRightBinaryExpr(p *Parser, left ast.Expr, tok lexer.Token, prec Precedence) (ast.Expr, error) {
	return parseBinaryExpr(p, left, tok, prec-1)
}

func parsePostfixExpr(_ *Parser, left ast.Expr, tok lexer.Token, _ Precedence) (ast.Expr, error) {
	return ast.PostfixExpr{Operator: tok.Kind, Left: left}, nil
}
