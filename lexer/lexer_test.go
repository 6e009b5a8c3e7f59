package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to test the lexer
func testLexer(t *testing.T, input string, expectedTokens []Token) {
	t.Helper()

	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokEOF {
			break
		}
	}
	require.NoError(t, l.Err())
	require.Len(t, tokens, len(expectedTokens), "token count for %q", input)
	for i, expectedToken := range expectedTokens {
		token := tokens[i]

		if token.Kind != expectedToken.Kind {
			t.Fatalf("tests[%d] - wrong kind. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Kind, expectedToken, token.Kind, token)
		}

		if token.Lexeme != expectedToken.Lexeme {
			t.Fatalf("tests[%d] - wrong lexeme. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Lexeme, expectedToken, token.Lexeme, token)
		}

		if token.Span != expectedToken.Span {
			t.Fatalf("tests[%d] - wrong span. expected=%s (%s), got=%s (%s)",
				i, expectedToken.Span, expectedToken, token.Span, token)
		}
	}
}

func TestTokenKindString(t *testing.T) {
	if len(tokenKindStrings) != int(FinalToken) {
		t.Fatalf("Expected %d token kinds in tokenKindStrings, got %d", FinalToken, len(tokenKindStrings))
	}
}

func TestTokenKindSymbol(t *testing.T) {
	assert.Equal(t, "^", TokCaret.Symbol())
	assert.Equal(t, "(", TokParenLeft.Symbol())
	assert.Equal(t, "INTEGER", TokInteger.Symbol())
}

func TestLexerAllTokens(t *testing.T) {
	input := "0 0.0 00.01 42 + - * / ^ 3.14 ( ) ! x"
	expectedTokens := []Token{
		{Kind: TokInteger, Lexeme: "0", Span: Span{0, 1}},
		{Kind: TokFloat, Lexeme: "0.0", Span: Span{2, 5}},
		{Kind: TokFloat, Lexeme: "00.01", Span: Span{6, 11}},
		{Kind: TokInteger, Lexeme: "42", Span: Span{12, 14}},
		{Kind: TokPlus, Lexeme: "+", Span: Span{15, 16}},
		{Kind: TokMinus, Lexeme: "-", Span: Span{17, 18}},
		{Kind: TokStar, Lexeme: "*", Span: Span{19, 20}},
		{Kind: TokSlash, Lexeme: "/", Span: Span{21, 22}},
		{Kind: TokCaret, Lexeme: "^", Span: Span{23, 24}},
		{Kind: TokFloat, Lexeme: "3.14", Span: Span{25, 29}},
		{Kind: TokParenLeft, Lexeme: "(", Span: Span{30, 31}},
		{Kind: TokParenRight, Lexeme: ")", Span: Span{32, 33}},
		{Kind: TokBang, Lexeme: "!", Span: Span{34, 35}},
		{Kind: TokIllegal, Lexeme: "x", Span: Span{36, 37}},
		{Kind: TokEOF, Lexeme: "", Span: Span{37, 37}},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerSkipWhitespace(t *testing.T) {
	input := "\n\r   42 \t\v"
	expectedTokens := []Token{
		{Kind: TokInteger, Lexeme: "42", Span: Span{5, 7}},
		{Kind: TokEOF, Lexeme: "", Span: Span{10, 10}},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerEmpty(t *testing.T) {
	testLexer(t, "", []Token{{Kind: TokEOF, Span: Span{0, 0}}})
}

func TestLexerNoWhitespace(t *testing.T) {
	input := "-(2+3.5)*4"
	expectedTokens := []Token{
		{Kind: TokMinus, Lexeme: "-", Span: Span{0, 1}},
		{Kind: TokParenLeft, Lexeme: "(", Span: Span{1, 2}},
		{Kind: TokInteger, Lexeme: "2", Span: Span{2, 3}},
		{Kind: TokPlus, Lexeme: "+", Span: Span{3, 4}},
		{Kind: TokFloat, Lexeme: "3.5", Span: Span{4, 7}},
		{Kind: TokParenRight, Lexeme: ")", Span: Span{7, 8}},
		{Kind: TokStar, Lexeme: "*", Span: Span{8, 9}},
		{Kind: TokInteger, Lexeme: "4", Span: Span{9, 10}},
		{Kind: TokEOF, Lexeme: "", Span: Span{10, 10}},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerHugeIntegerKeepsText(t *testing.T) {
	input := "99999999999999999999999"
	testLexer(t, input, []Token{
		{Kind: TokInteger, Lexeme: input, Span: Span{0, len(input)}},
		{Kind: TokEOF, Span: Span{len(input), len(input)}},
	})
}

func TestLexerEOFIsSticky(t *testing.T) {
	l := New("1")
	assert.Equal(t, TokInteger, l.NextToken().Kind)
	for i := 0; i < 3; i++ {
		assert.Equal(t, TokEOF, l.NextToken().Kind)
	}
}

func TestLexerMalformedFloat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		got   string
		pos   int
	}{
		{name: "dot at end", input: "1.", got: "EOF", pos: 2},
		{name: "dot before operator", input: "12.+3", got: "+", pos: 3},
		{name: "dot before space", input: "4 + 7. 1", got: " ", pos: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := New(tt.input).All()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSyntax))

			var lexErr *LexicalError
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, "digit", lexErr.Expected)
			assert.Equal(t, tt.got, lexErr.Got)
			assert.Equal(t, tt.pos, lexErr.Pos)

			for _, tok := range toks {
				assert.NotEqual(t, TokFloat, tok.Kind)
			}
		})
	}
}

func TestLexerStopsAfterError(t *testing.T) {
	l := New("1.x 2")
	tok := l.NextToken()
	assert.Equal(t, TokIllegal, tok.Kind)
	assert.Equal(t, "1.", tok.Lexeme)
	require.Error(t, l.Err())
	assert.Equal(t, TokEOF, l.NextToken().Kind)
}

func TestLexerNonASCII(t *testing.T) {
	toks, err := New("1é").All()
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, TokInteger, toks[0].Kind)
	assert.Equal(t, TokIllegal, toks[1].Kind)
	assert.Equal(t, TokIllegal, toks[2].Kind)
	assert.Equal(t, TokEOF, toks[3].Kind)
}
