// Package ast defines the syntax tree shared by every expression parser.
package ast

import "go.creack.net/exprparse/lexer"

// Expr is one of IntegerLiteral, FloatLiteral, PrefixExpr, InfixExpr or
// PostfixExpr. Consumers switch on the concrete type.
type Expr interface {
	expr()
}

type IntegerLiteral struct {
	Value int64
}

func (IntegerLiteral) expr() {}

type FloatLiteral struct {
	Value float64
}

func (FloatLiteral) expr() {}

// PrefixExpr is a unary operator applied before its operand, e.g. -x.
type PrefixExpr struct {
	Operator lexer.TokenKind
	Right    Expr
}

func (PrefixExpr) expr() {}

type InfixExpr struct {
	Left     Expr
	Operator lexer.TokenKind
	Right    Expr
}

func (InfixExpr) expr() {}

// PostfixExpr is a unary operator applied after its operand, e.g. x!.
type PostfixExpr struct {
	Operator lexer.TokenKind
	Left     Expr
}

func (PostfixExpr) expr() {}
