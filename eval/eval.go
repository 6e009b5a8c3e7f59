// Package eval computes the value of an expression tree.
package eval

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"go.creack.net/exprparse/ast"
	"go.creack.net/exprparse/lexer"
)

// maxFactorial is the largest n for which n! fits in an int64.
const maxFactorial = 20

// ArithmeticError reports a fault while computing a value, such as an integer
// division by zero. It is not a syntax error.
type ArithmeticError struct {
	Operator lexer.TokenKind
	Msg      string
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("arithmetic error: %s: %s", e.Operator.Symbol(), e.Msg)
}

// Float evaluates e with float64 arithmetic, so 2^-3 is 0.125. Division by
// zero follows IEEE 754 and yields an infinity.
func Float(e ast.Expr) (float64, error) {
	switch e := e.(type) {
	case ast.IntegerLiteral:
		return float64(e.Value), nil
	case ast.FloatLiteral:
		return e.Value, nil
	case ast.PrefixExpr:
		right, err := Float(e.Right)
		if err != nil {
			return 0, err
		}
		if e.Operator != lexer.TokMinus {
			return 0, unsupported(e.Operator)
		}
		return -right, nil
	case ast.InfixExpr:
		left, err := Float(e.Left)
		if err != nil {
			return 0, err
		}
		right, err := Float(e.Right)
		if err != nil {
			return 0, err
		}
		return applyFloat(e.Operator, left, right)
	case ast.PostfixExpr:
		left, err := Float(e.Left)
		if err != nil {
			return 0, err
		}
		if e.Operator != lexer.TokBang {
			return 0, unsupported(e.Operator)
		}
		if left < 0 {
			return 0, &ArithmeticError{Operator: e.Operator, Msg: "factorial of a negative number"}
		}
		return math.Gamma(left + 1), nil
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}

func applyFloat(op lexer.TokenKind, left, right float64) (float64, error) {
	switch op {
	case lexer.TokPlus:
		return left + right, nil
	case lexer.TokMinus:
		return left - right, nil
	case lexer.TokStar:
		return left * right, nil
	case lexer.TokSlash:
		return left / right, nil
	case lexer.TokCaret:
		return math.Pow(left, right), nil
	default:
		return 0, unsupported(op)
	}
}

// Int evaluates e with int64 arithmetic. Float literals are rejected.
func Int(e ast.Expr) (int64, error) {
	return evalInt(e, ApplyInt)
}

type binaryIntFn func(op lexer.TokenKind, left, right int64) (int64, error)

func evalInt(e ast.Expr, apply binaryIntFn) (int64, error) {
	switch e := e.(type) {
	case ast.IntegerLiteral:
		return e.Value, nil
	case ast.FloatLiteral:
		return 0, &ArithmeticError{Operator: lexer.TokFloat, Msg: fmt.Sprintf("%v is not an integer", e.Value)}
	case ast.PrefixExpr:
		right, err := evalInt(e.Right, apply)
		if err != nil {
			return 0, err
		}
		return NegateInt(e.Operator, right)
	case ast.InfixExpr:
		left, err := evalInt(e.Left, apply)
		if err != nil {
			return 0, err
		}
		right, err := evalInt(e.Right, apply)
		if err != nil {
			return 0, err
		}
		return apply(e.Operator, left, right)
	case ast.PostfixExpr:
		left, err := evalInt(e.Left, apply)
		if err != nil {
			return 0, err
		}
		if e.Operator != lexer.TokBang {
			return 0, unsupported(e.Operator)
		}
		return factorial(left)
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}

// NegateInt applies the unary operator op to operand.
func NegateInt(op lexer.TokenKind, operand int64) (int64, error) {
	if op != lexer.TokMinus {
		return 0, unsupported(op)
	}
	return -operand, nil
}

// ApplyInt applies the binary operator op. Division truncates toward zero.
// Exponentiation goes through math.Pow and truncates the result, which loses
// precision once it exceeds 2^53. A power outside the int64 range is an
// error.
func ApplyInt(op lexer.TokenKind, left, right int64) (int64, error) {
	switch op {
	case lexer.TokPlus:
		return left + right, nil
	case lexer.TokMinus:
		return left - right, nil
	case lexer.TokStar:
		return left * right, nil
	case lexer.TokSlash:
		if right == 0 {
			return 0, &ArithmeticError{Operator: op, Msg: "integer division by zero"}
		}
		return left / right, nil
	case lexer.TokCaret:
		p := math.Pow(float64(left), float64(right))
		if math.IsNaN(p) || p >= 1<<63 || p < -1<<63 {
			return 0, &ArithmeticError{Operator: op, Msg: fmt.Sprintf("%d^%d overflows int64", left, right)}
		}
		return int64(p), nil
	default:
		return 0, unsupported(op)
	}
}

// errNotIntegral stops integer evaluation when the exact result needs a
// fraction or more than 64 bits.
var errNotIntegral = errors.New("not integral")

func applyExact(op lexer.TokenKind, left, right int64) (int64, error) {
	if op != lexer.TokCaret {
		return ApplyInt(op, left, right)
	}
	if right < 0 {
		return 0, errNotIntegral
	}
	v, err := ApplyInt(op, left, right)
	if err != nil {
		return 0, errNotIntegral
	}
	return v, nil
}

// Number is an evaluation result, integral unless IsFloat is set.
type Number struct {
	Int     int64
	Float   float64
	IsFloat bool
}

func (n Number) String() string {
	if n.IsFloat {
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	}
	return strconv.FormatInt(n.Int, 10)
}

// Eval evaluates e with Int semantics when it only holds integer literals:
// division truncates toward zero and dividing by zero is an error. When a
// float literal is present, or a power has a negative exponent or does not
// fit an int64, the whole expression is evaluated with Float instead, so
// 2^-3 is 0.125.
func Eval(e ast.Expr) (Number, error) {
	if !hasFloat(e) {
		v, err := evalInt(e, applyExact)
		if err == nil {
			return Number{Int: v}, nil
		}
		if !errors.Is(err, errNotIntegral) {
			return Number{}, err
		}
	}
	v, err := Float(e)
	if err != nil {
		return Number{}, err
	}
	return Number{Float: v, IsFloat: true}, nil
}

func hasFloat(e ast.Expr) bool {
	switch e := e.(type) {
	case ast.IntegerLiteral:
		return false
	case ast.FloatLiteral:
		return true
	case ast.PrefixExpr:
		return hasFloat(e.Right)
	case ast.InfixExpr:
		return hasFloat(e.Left) || hasFloat(e.Right)
	case ast.PostfixExpr:
		return hasFloat(e.Left)
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}

func factorial(n int64) (int64, error) {
	switch {
	case n < 0:
		return 0, &ArithmeticError{Operator: lexer.TokBang, Msg: "factorial of a negative number"}
	case n > maxFactorial:
		return 0, &ArithmeticError{Operator: lexer.TokBang, Msg: fmt.Sprintf("%d! overflows int64", n)}
	}
	result := int64(1)
	for i := int64(2); i <= n; i++ {
		result *= i
	}
	return result, nil
}

func unsupported(op lexer.TokenKind) error {
	return &ArithmeticError{Operator: op, Msg: "unsupported operator"}
}
