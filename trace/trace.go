// Package trace logs the grammar rules visited by the recursive descent
// parser.
package trace

import (
	"strings"

	"github.com/rs/zerolog"

	"go.creack.net/exprparse/ast"
	"go.creack.net/exprparse/lexer"
)

const indentWidth = 4

// Logger emits one debug event per rule entry and exit, indented by depth.
// A Logger is used by a single parse at a time.
type Logger struct {
	logger zerolog.Logger
	depth  int
}

func New(logger zerolog.Logger) *Logger {
	return &Logger{logger: logger}
}

func (l *Logger) Enter(rule string, tok lexer.Token) {
	l.logger.Debug().
		Str("rule", rule).
		Stringer("token", tok).
		Int("depth", l.depth).
		Msg(l.indent() + "enter " + rule)
	l.depth++
}

func (l *Logger) Exit(expr ast.Expr) {
	if l.depth > 0 {
		l.depth--
	}
	l.logger.Debug().
		Str("expr", ast.String(expr)).
		Int("depth", l.depth).
		Msg(l.indent() + "exit")
}

// Reset clears the depth left over by a parse that failed midway.
func (l *Logger) Reset() {
	l.depth = 0
}

func (l *Logger) indent() string {
	return strings.Repeat(" ", l.depth*indentWidth)
}
