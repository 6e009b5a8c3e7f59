package parser

import (
	"strconv"

	"go.creack.net/exprparse/lexer"
)

// IntegerValue converts the text of an integer token.
func IntegerValue(tok lexer.Token) (int64, error) {
	v, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		return 0, &InvalidNumericLiteralError{Text: tok.Lexeme, Target: "int64", Err: err}
	}
	return v, nil
}

// FloatValue converts the text of a float token.
func FloatValue(tok lexer.Token) (float64, error) {
	v, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		return 0, &InvalidNumericLiteralError{Text: tok.Lexeme, Target: "float64", Err: err}
	}
	return v, nil
}
