package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kr/pretty"
)

const treeIndent = 4

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// String renders e in fully parenthesized infix form, e.g. "(2 + (3 * 4))".
func String(e Expr) string {
	switch e := e.(type) {
	case IntegerLiteral:
		return strconv.FormatInt(e.Value, 10)
	case FloatLiteral:
		return formatFloat(e.Value)
	case PrefixExpr:
		return fmt.Sprintf("(%s%s)", e.Operator.Symbol(), String(e.Right))
	case InfixExpr:
		return fmt.Sprintf("(%s %s %s)", String(e.Left), e.Operator.Symbol(), String(e.Right))
	case PostfixExpr:
		return fmt.Sprintf("(%s%s)", String(e.Left), e.Operator.Symbol())
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}

// Prefix renders e in prefix (Polish) notation, e.g. "+ 2 * 3 4".
func Prefix(e Expr) string {
	switch e := e.(type) {
	case IntegerLiteral, FloatLiteral:
		return String(e)
	case PrefixExpr:
		return e.Operator.Symbol() + " " + Prefix(e.Right)
	case InfixExpr:
		return e.Operator.Symbol() + " " + Prefix(e.Left) + " " + Prefix(e.Right)
	case PostfixExpr:
		return e.Operator.Symbol() + " " + Prefix(e.Left)
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}

// Postfix renders e in postfix (reverse Polish) notation, e.g. "2 3 4 * +".
func Postfix(e Expr) string {
	switch e := e.(type) {
	case IntegerLiteral, FloatLiteral:
		return String(e)
	case PrefixExpr:
		return Postfix(e.Right) + " " + e.Operator.Symbol()
	case InfixExpr:
		return Postfix(e.Left) + " " + Postfix(e.Right) + " " + e.Operator.Symbol()
	case PostfixExpr:
		return Postfix(e.Left) + " " + e.Operator.Symbol()
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}

// Flat renders e as nested operator applications, e.g. "+(2, *(3, 4))".
func Flat(e Expr) string {
	switch e := e.(type) {
	case IntegerLiteral, FloatLiteral:
		return String(e)
	case PrefixExpr:
		return fmt.Sprintf("%s(%s)", e.Operator.Symbol(), Flat(e.Right))
	case InfixExpr:
		return fmt.Sprintf("%s(%s, %s)", e.Operator.Symbol(), Flat(e.Left), Flat(e.Right))
	case PostfixExpr:
		return fmt.Sprintf("%s(%s)", e.Operator.Symbol(), Flat(e.Left))
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}

// Tree renders e one node per line, children indented below their parent.
func Tree(e Expr) string {
	var sb strings.Builder
	writeTree(&sb, e, 0)
	return sb.String()
}

func writeTree(sb *strings.Builder, e Expr, depth int) {
	sb.WriteString(strings.Repeat(" ", depth*treeIndent))
	switch e := e.(type) {
	case IntegerLiteral:
		fmt.Fprintf(sb, "IntegerLiteral (%d)\n", e.Value)
	case FloatLiteral:
		fmt.Fprintf(sb, "FloatLiteral (%s)\n", formatFloat(e.Value))
	case PrefixExpr:
		fmt.Fprintf(sb, "PrefixExpr %s\n", e.Operator.Symbol())
		writeTree(sb, e.Right, depth+1)
	case InfixExpr:
		fmt.Fprintf(sb, "InfixExpr %s\n", e.Operator.Symbol())
		writeTree(sb, e.Left, depth+1)
		writeTree(sb, e.Right, depth+1)
	case PostfixExpr:
		fmt.Fprintf(sb, "PostfixExpr %s\n", e.Operator.Symbol())
		writeTree(sb, e.Left, depth+1)
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}

// Dump returns the Go structure of e, for debugging.
func Dump(e Expr) string {
	return fmt.Sprintf("%# v", pretty.Formatter(e))
}
