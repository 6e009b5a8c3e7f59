package lexer

type stateFn func(*Lexer) stateFn

// List of characters that just advance one and emit a token.
var singles = map[byte]TokenKind{
	'+': TokPlus,
	'-': TokMinus,
	'*': TokStar,
	'/': TokSlash,
	'^': TokCaret,
	'!': TokBang,
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *Lexer) stateFn {
	if l.pos >= len(l.input) {
		return l.emit(TokEOF)
	}

	switch c := l.peek(); {
	case c == ' ', c == '\t', c == '\n', c == '\r', c == '\v':
		// Whitespace is dispatched like any other character.
		l.next()
		l.ignore()
		return lexText
	case c >= '0' && c <= '9':
		return lexNumber
	default:
		l.next()
		if tok, ok := singles[c]; ok {
			return l.emit(tok)
		}
		return l.emit(TokIllegal)
	}
}

// lexNumber scans ahead from a bookmark to decide between an integer and a
// float, then rewinds and lexes the right one.
func lexNumber(l *Lexer) stateFn {
	bookmark := l.pos
	l.acceptRun(digits)
	isFloat := l.peek() == '.'
	l.pos = bookmark
	if isFloat {
		return lexFloat
	}
	return lexInteger
}

// Integer = Digit { Digit } .
func lexInteger(l *Lexer) stateFn {
	l.acceptRun(digits)
	return l.emit(TokInteger)
}

// Float = Integer "." Integer .
func lexFloat(l *Lexer) stateFn {
	l.acceptRun(digits)
	l.next() // Consume the '.'.
	if !l.acceptRun(digits) {
		return l.errorf("digit")
	}
	return l.emit(TokFloat)
}
