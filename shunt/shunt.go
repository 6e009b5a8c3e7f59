// Package shunt implements Dijkstra's shunting-yard algorithm over an
// explicit operator stack and operand stack. What a reduction produces is
// left to a Reducer, so the same control flow evaluates an expression,
// builds its syntax tree or rewrites it in prefix or postfix notation.
//
// The engine does not recurse, input size is bounded by memory only.
package shunt

import (
	"fmt"

	"go.creack.net/exprparse/lexer"
	"go.creack.net/exprparse/parser"
)

type associativity int

const (
	leftAssoc associativity = iota
	rightAssoc
)

type operatorInfo struct {
	precedence int
	assoc      associativity
}

var operators = map[Kind]operatorInfo{
	BinaryExp:   {precedence: 4, assoc: rightAssoc},
	UnaryMinus:  {precedence: 3, assoc: leftAssoc},
	BinaryMul:   {precedence: 2, assoc: leftAssoc},
	BinaryDiv:   {precedence: 2, assoc: leftAssoc},
	BinaryPlus:  {precedence: 1, assoc: leftAssoc},
	BinaryMinus: {precedence: 1, assoc: leftAssoc},
}

func isOperator(k Kind) bool {
	_, ok := operators[k]
	return ok
}

// Reducer builds results of type R.
type Reducer[R any] interface {
	// Operand converts a literal token.
	Operand(tok lexer.Token) (R, error)
	// Unary applies a unary operator.
	Unary(op Token, operand R) (R, error)
	// Binary applies a binary operator.
	Binary(op Token, left, right R) (R, error)
}

// Engine runs the shunting-yard algorithm with a given Reducer. The stacks
// are reset on every run; an Engine must not be used concurrently.
type Engine[R any] struct {
	reducer Reducer[R]

	operators []Token
	operands  []R
}

func New[R any](r Reducer[R]) *Engine[R] {
	return &Engine[R]{reducer: r}
}

// Parse tokenizes input and runs the algorithm on it.
func (e *Engine[R]) Parse(input string) (R, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		var zero R
		return zero, err
	}
	return e.Run(tokens)
}

// Run runs the algorithm on tokens classified by Tokenize.
func (e *Engine[R]) Run(tokens []Token) (R, error) {
	var zero R
	e.operators = nil
	e.operands = nil

	for _, tok := range tokens {
		switch {
		case tok.Kind == Literal:
			v, err := e.reducer.Operand(tok.Source)
			if err != nil {
				return zero, err
			}
			e.operands = append(e.operands, v)
		case tok.Kind == UnaryMinus:
			// A unary operator binds a single operand to its right, nothing
			// pending can be reduced yet.
			e.operators = append(e.operators, tok)
		case isOperator(tok.Kind):
			for e.mustReduceBefore(tok) {
				if err := e.reduce(); err != nil {
					return zero, err
				}
			}
			e.operators = append(e.operators, tok)
		case tok.Kind == LeftParen:
			e.operators = append(e.operators, tok)
		case tok.Kind == RightParen:
			for {
				top, ok := e.top()
				if !ok {
					return zero, &parser.UnmatchedParenthesisError{Token: tok.Source}
				}
				if top.Kind == LeftParen {
					break
				}
				if err := e.reduce(); err != nil {
					return zero, err
				}
			}
			e.operators = e.operators[:len(e.operators)-1]
		default:
			return zero, fmt.Errorf("shunt: unexpected token %s: %w", tok, parser.ErrSyntax)
		}
	}

	for len(e.operators) > 0 {
		if top, _ := e.top(); top.Kind == LeftParen || top.Kind == RightParen {
			return zero, &parser.UnmatchedParenthesisError{Token: top.Source}
		}
		if err := e.reduce(); err != nil {
			return zero, err
		}
	}

	if len(e.operands) != 1 {
		return zero, fmt.Errorf("shunt: %d operands left after reduction: %w", len(e.operands), parser.ErrSyntax)
	}
	return e.operands[0], nil
}

// mustReduceBefore reports whether the operator on top of the stack binds
// tighter than o1 and has to be reduced before o1 is pushed.
func (e *Engine[R]) mustReduceBefore(o1 Token) bool {
	o2, ok := e.top()
	if !ok || !isOperator(o2.Kind) {
		return false
	}
	op1, op2 := operators[o1.Kind], operators[o2.Kind]
	switch op1.assoc {
	case leftAssoc:
		return op1.precedence <= op2.precedence
	default:
		return op1.precedence < op2.precedence
	}
}

func (e *Engine[R]) top() (Token, bool) {
	if len(e.operators) == 0 {
		return Token{}, false
	}
	return e.operators[len(e.operators)-1], true
}

// reduce pops one operator and its operands and pushes the combined result.
func (e *Engine[R]) reduce() error {
	op := e.operators[len(e.operators)-1]
	e.operators = e.operators[:len(e.operators)-1]

	if op.Kind == UnaryMinus {
		operand, err := e.popOperand(op)
		if err != nil {
			return err
		}
		v, err := e.reducer.Unary(op, operand)
		if err != nil {
			return err
		}
		e.operands = append(e.operands, v)
		return nil
	}

	right, err := e.popOperand(op)
	if err != nil {
		return err
	}
	left, err := e.popOperand(op)
	if err != nil {
		return err
	}
	v, err := e.reducer.Binary(op, left, right)
	if err != nil {
		return err
	}
	e.operands = append(e.operands, v)
	return nil
}

func (e *Engine[R]) popOperand(op Token) (R, error) {
	if len(e.operands) == 0 {
		var zero R
		return zero, &parser.UnexpectedPrimaryError{Got: op.Source}
	}
	v := e.operands[len(e.operands)-1]
	e.operands = e.operands[:len(e.operands)-1]
	return v, nil
}
