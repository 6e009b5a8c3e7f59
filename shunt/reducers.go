package shunt

import (
	"go.creack.net/exprparse/ast"
	"go.creack.net/exprparse/eval"
	"go.creack.net/exprparse/lexer"
	"go.creack.net/exprparse/parser"
)

// Evaluator computes the value with int64 arithmetic as it reduces. Float
// literals are rejected; see eval.ApplyInt for division and power.
type Evaluator struct{}

func (Evaluator) Operand(tok lexer.Token) (int64, error) {
	return parser.IntegerValue(tok)
}

func (Evaluator) Unary(op Token, operand int64) (int64, error) {
	return eval.NegateInt(op.Source.Kind, operand)
}

func (Evaluator) Binary(op Token, left, right int64) (int64, error) {
	return eval.ApplyInt(op.Source.Kind, left, right)
}

// TreeBuilder builds the syntax tree.
type TreeBuilder struct{}

func (TreeBuilder) Operand(tok lexer.Token) (ast.Expr, error) {
	if tok.Kind == lexer.TokFloat {
		v, err := parser.FloatValue(tok)
		if err != nil {
			return nil, err
		}
		return ast.FloatLiteral{Value: v}, nil
	}
	v, err := parser.IntegerValue(tok)
	if err != nil {
		return nil, err
	}
	return ast.IntegerLiteral{Value: v}, nil
}

func (TreeBuilder) Unary(op Token, operand ast.Expr) (ast.Expr, error) {
	return ast.PrefixExpr{Operator: op.Source.Kind, Right: operand}, nil
}

func (TreeBuilder) Binary(op Token, left, right ast.Expr) (ast.Expr, error) {
	return ast.InfixExpr{Left: left, Operator: op.Source.Kind, Right: right}, nil
}

// PostfixWriter writes operands before their operator: "1 2 3 ^ ^".
type PostfixWriter struct{}

func (PostfixWriter) Operand(tok lexer.Token) (string, error) {
	return tok.Lexeme, nil
}

func (PostfixWriter) Unary(op Token, operand string) (string, error) {
	return operand + " " + op.Source.Lexeme, nil
}

func (PostfixWriter) Binary(op Token, left, right string) (string, error) {
	return left + " " + right + " " + op.Source.Lexeme, nil
}

// PrefixWriter writes operators before their operands: "^ 1 ^ 2 3".
type PrefixWriter struct{}

func (PrefixWriter) Operand(tok lexer.Token) (string, error) {
	return tok.Lexeme, nil
}

func (PrefixWriter) Unary(op Token, operand string) (string, error) {
	return op.Source.Lexeme + " " + operand, nil
}

func (PrefixWriter) Binary(op Token, left, right string) (string, error) {
	return op.Source.Lexeme + " " + left + " " + right, nil
}

// Evaluate returns the integer value of input.
func Evaluate(input string) (int64, error) {
	return New[int64](Evaluator{}).Parse(input)
}

// ToAST returns the syntax tree of input.
func ToAST(input string) (ast.Expr, error) {
	return New[ast.Expr](TreeBuilder{}).Parse(input)
}

// ToPostfix rewrites input in postfix notation.
func ToPostfix(input string) (string, error) {
	return New[string](PostfixWriter{}).Parse(input)
}

// ToPrefix rewrites input in prefix notation.
func ToPrefix(input string) (string, error) {
	return New[string](PrefixWriter{}).Parse(input)
}

// Result holds every representation of one input.
type Result struct {
	Value   int64
	Prefix  string
	Postfix string
	Tree    ast.Expr
}

// Translate tokenizes input once and runs every reducer over the tokens.
// When only the evaluation fails, the other fields are still set.
func Translate(input string) (Result, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return Result{}, err
	}
	var res Result
	if res.Tree, err = New[ast.Expr](TreeBuilder{}).Run(tokens); err != nil {
		return Result{}, err
	}
	if res.Prefix, err = New[string](PrefixWriter{}).Run(tokens); err != nil {
		return Result{}, err
	}
	if res.Postfix, err = New[string](PostfixWriter{}).Run(tokens); err != nil {
		return Result{}, err
	}
	if res.Value, err = New[int64](Evaluator{}).Run(tokens); err != nil {
		return res, err
	}
	return res, nil
}
