package shunt

import (
	"fmt"

	"go.creack.net/exprparse/lexer"
	"go.creack.net/exprparse/parser"
)

// Kind classifies a token for the shunting-yard algorithm. Unlike
// lexer.TokenKind, '-' is split into its unary and binary forms.
type Kind int

const (
	Literal Kind = iota
	LeftParen
	RightParen
	BinaryPlus
	BinaryMinus
	BinaryMul
	BinaryDiv
	BinaryExp
	UnaryMinus
)

func (k Kind) String() string {
	return kindStrings[k]
}

var kindStrings = map[Kind]string{
	Literal:     "Literal",
	LeftParen:   "LeftParen",
	RightParen:  "RightParen",
	BinaryPlus:  "BinaryPlus",
	BinaryMinus: "BinaryMinus",
	BinaryMul:   "BinaryMul",
	BinaryDiv:   "BinaryDiv",
	BinaryExp:   "BinaryExp",
	UnaryMinus:  "UnaryMinus",
}

// Token is a classified lexer token.
type Token struct {
	Kind   Kind
	Source lexer.Token
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Source.Lexeme)
}

// Binary operators following an operand.
var binaryKinds = map[lexer.TokenKind]Kind{
	lexer.TokPlus:  BinaryPlus,
	lexer.TokMinus: BinaryMinus,
	lexer.TokStar:  BinaryMul,
	lexer.TokSlash: BinaryDiv,
	lexer.TokCaret: BinaryExp,
}

// Tokenize lexes input and classifies every '-' as unary or binary: it is
// unary at the start of the input, after an operator or after '(', and binary
// after a literal or ')'.
//
// It also checks that operands and operators alternate, so that the engine
// only has to deal with parenthesis balance. The end marker is not returned.
func Tokenize(input string) ([]Token, error) {
	lex := lexer.New(input)

	var tokens []Token
	expectOperand := true
	for {
		tok := lex.NextToken()
		if err := lex.Err(); err != nil {
			return nil, err
		}

		if expectOperand {
			switch tok.Kind {
			case lexer.TokInteger, lexer.TokFloat:
				tokens = append(tokens, Token{Kind: Literal, Source: tok})
				expectOperand = false
			case lexer.TokMinus:
				tokens = append(tokens, Token{Kind: UnaryMinus, Source: tok})
			case lexer.TokParenLeft:
				tokens = append(tokens, Token{Kind: LeftParen, Source: tok})
			default:
				return nil, &parser.UnexpectedPrimaryError{Got: tok}
			}
			continue
		}

		if tok.Kind == lexer.TokEOF {
			return tokens, nil
		}
		if tok.Kind == lexer.TokParenRight {
			tokens = append(tokens, Token{Kind: RightParen, Source: tok})
			continue
		}
		kind, ok := binaryKinds[tok.Kind]
		if !ok {
			return nil, &parser.TrailingInputError{Token: tok}
		}
		tokens = append(tokens, Token{Kind: kind, Source: tok})
		expectOperand = true
	}
}
