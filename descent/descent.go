// Package descent implements a recursive descent parser for arithmetic
// expressions, one function per precedence level:
//
//	Expression     = Addition .
//	Addition       = Multiplication { ( "+" | "-" ) Multiplication } .
//	Multiplication = Power { ( "*" | "/" ) Power } .
//	Power          = Unary [ "^" Power ] .
//	Unary          = "-" Unary | Primary .
//	Primary        = Integer | Float | "(" Expression ")" .
//
// Addition and Multiplication loop, which makes them left associative.
// Power and Unary call themselves, which makes them right associative.
// Nesting depth is bounded by the call stack.
package descent

import (
	"go.creack.net/exprparse/ast"
	"go.creack.net/exprparse/lexer"
	"go.creack.net/exprparse/parser"
)

// Tracer is notified on entry and successful exit of every grammar rule.
// It must not affect parsing.
type Tracer interface {
	Enter(rule string, tok lexer.Token)
	Exit(expr ast.Expr)
}

type nopTracer struct{}

func (nopTracer) Enter(string, lexer.Token) {}
func (nopTracer) Exit(ast.Expr)             {}

// Option configures a Parser.
type Option func(*Parser)

// WithTracer attaches t to the parser.
func WithTracer(t Tracer) Option {
	return func(p *Parser) {
		if t != nil {
			p.tracer = t
		}
	}
}

// Parser holds the current token, one token of lookahead is all the grammar
// needs.
type Parser struct {
	lex    *lexer.Lexer
	tracer Tracer

	curToken lexer.Token
	err      error // Sticky lexer error.
}

func New(lex *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{
		lex:    lex,
		tracer: nopTracer{},
	}
	for _, opt := range opts {
		opt(p)
	}
	// Initialize parser state.
	p.nextToken()
	return p
}

// Parse parses input with a fresh lexer and parser.
func Parse(input string, opts ...Option) (ast.Expr, error) {
	return New(lexer.New(input), opts...).Parse()
}

// Parse parses one expression which must span the whole input.
func (p *Parser) Parse() (ast.Expr, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.tracer.Enter("Parse", p.curToken)
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.curToken.Kind != lexer.TokEOF {
		return nil, &parser.TrailingInputError{Token: p.curToken}
	}
	p.tracer.Exit(expr)
	return expr, nil
}

// Expression = Addition .
func (p *Parser) parseExpression() (ast.Expr, error) {
	p.tracer.Enter("Expression", p.curToken)
	expr, err := p.parseAddition()
	if err != nil {
		return nil, err
	}
	p.tracer.Exit(expr)
	return expr, nil
}

// Addition = Multiplication { ( "+" | "-" ) Multiplication } .
func (p *Parser) parseAddition() (ast.Expr, error) {
	p.tracer.Enter("Addition", p.curToken)
	left, err := p.parseMultiplication()
	if err != nil {
		return nil, err
	}
	for p.curToken.Kind.IsOneOf(lexer.TokPlus, lexer.TokMinus) {
		op := p.curToken.Kind
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplication()
		if err != nil {
			return nil, err
		}
		left = ast.InfixExpr{Left: left, Operator: op, Right: right}
	}
	p.tracer.Exit(left)
	return left, nil
}

// Multiplication = Power { ( "*" | "/" ) Power } .
func (p *Parser) parseMultiplication() (ast.Expr, error) {
	p.tracer.Enter("Multiplication", p.curToken)
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for p.curToken.Kind.IsOneOf(lexer.TokStar, lexer.TokSlash) {
		op := p.curToken.Kind
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = ast.InfixExpr{Left: left, Operator: op, Right: right}
	}
	p.tracer.Exit(left)
	return left, nil
}

// Power = Unary [ "^" Power ] .
func (p *Parser) parsePower() (ast.Expr, error) {
	p.tracer.Enter("Power", p.curToken)
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.curToken.Kind == lexer.TokCaret {
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		// Recursing into Power rather than Unary is what groups a^b^c as
		// a^(b^c).
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = ast.InfixExpr{Left: left, Operator: lexer.TokCaret, Right: right}
	}
	p.tracer.Exit(left)
	return left, nil
}

// Unary = "-" Unary | Primary .
func (p *Parser) parseUnary() (ast.Expr, error) {
	p.tracer.Enter("Unary", p.curToken)
	if p.curToken.Kind == lexer.TokMinus {
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		expr := ast.PrefixExpr{Operator: lexer.TokMinus, Right: right}
		p.tracer.Exit(expr)
		return expr, nil
	}
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	p.tracer.Exit(expr)
	return expr, nil
}

// Primary = Integer | Float | "(" Expression ")" .
func (p *Parser) parsePrimary() (ast.Expr, error) {
	p.tracer.Enter("Primary", p.curToken)
	var expr ast.Expr
	switch tok := p.curToken; tok.Kind {
	case lexer.TokInteger:
		v, err := parser.IntegerValue(tok)
		if err != nil {
			return nil, err
		}
		expr = ast.IntegerLiteral{Value: v}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
	case lexer.TokFloat:
		v, err := parser.FloatValue(tok)
		if err != nil {
			return nil, err
		}
		expr = ast.FloatLiteral{Value: v}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
	case lexer.TokParenLeft:
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.TokParenRight); err != nil {
			return nil, err
		}
		expr = inner
	default:
		return nil, &parser.UnexpectedPrimaryError{Got: tok}
	}
	p.tracer.Exit(expr)
	return expr, nil
}

func (p *Parser) nextToken() error {
	if p.err != nil {
		return p.err
	}
	p.curToken = p.lex.NextToken()
	p.err = p.lex.Err()
	return p.err
}

// expect consumes the current token if it is of the expected kind.
func (p *Parser) expect(kind lexer.TokenKind) error {
	if p.curToken.Kind != kind {
		return &parser.UnexpectedTokenError{Expected: kind, Got: p.curToken}
	}
	return p.nextToken()
}
