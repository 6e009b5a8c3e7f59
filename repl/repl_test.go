package repl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/exprparse/eval"
	"go.creack.net/exprparse/parser"
)

func newTestREPL(t *testing.T, cfg Config) (*REPL, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out := bytes.NewBuffer(nil)
	logs := bytes.NewBuffer(nil)
	r, err := New(cfg, out, zerolog.New(logs).Level(zerolog.DebugLevel))
	require.NoError(t, err)
	return r, out, logs
}

func TestEvalPratt(t *testing.T) {
	r, out, _ := newTestREPL(t, Config{Engine: EnginePratt})
	require.NoError(t, r.Eval("2^-3"))
	assert.Equal(t, "(2 ^ (-3))\nValue: 0.125\n", out.String())
}

func TestEvalDescent(t *testing.T) {
	r, out, _ := newTestREPL(t, Config{Engine: EngineDescent})
	require.NoError(t, r.Eval("-(2 + 3) * 4"))
	assert.Equal(t, "((-(2 + 3)) * 4)\nValue: -20\n", out.String())
}

func TestEvalShunt(t *testing.T) {
	r, out, _ := newTestREPL(t, Config{Engine: EngineShunt})
	require.NoError(t, r.Eval("-2 + 5"))
	want := strings.Join([]string{
		"Value: 3",
		"Prefix notation: + - 2 5",
		"Postfix notation: 2 - 5 +",
		"Flat syntax tree: +(-(2), 5)",
		"Hierarchical syntax tree:",
		"InfixExpr +",
		"    PrefixExpr -",
		"        IntegerLiteral (2)",
		"    IntegerLiteral (5)",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestEvalShuntArithmeticError(t *testing.T) {
	r, out, _ := newTestREPL(t, Config{Engine: EngineShunt})
	err := r.Eval("1 / 0")
	var e *eval.ArithmeticError
	require.ErrorAs(t, err, &e)
	assert.NotContains(t, out.String(), "Value:")
	assert.Contains(t, out.String(), "Postfix notation: 1 0 /\n")
	assert.Contains(t, out.String(), "Error: ")
}

func TestEvalAll(t *testing.T) {
	r, out, _ := newTestREPL(t, Config{Engine: EngineAll})
	require.NoError(t, r.Eval("2 + 3 * 4"))
	s := out.String()
	for _, header := range []string{"[pratt]\n", "[descent]\n", "[shunt]\n"} {
		assert.Contains(t, s, header)
	}
	assert.Equal(t, 2, strings.Count(s, "(2 + (3 * 4))\nValue: 14\n"))
	assert.Contains(t, s, "Value: 14\nPrefix notation: + 2 * 3 4\n")
}

func TestEvalSyntaxError(t *testing.T) {
	r, out, logs := newTestREPL(t, Config{Engine: EngineAll})
	err := r.Eval("2+(")
	assert.ErrorIs(t, err, parser.ErrSyntax)
	assert.Equal(t, 3, strings.Count(out.String(), "Error: "))
	assert.Contains(t, logs.String(), `"kind":"syntax"`)
	assert.Contains(t, logs.String(), `"engine":"shunt"`)
}

func TestRun(t *testing.T) {
	r, out, _ := newTestREPL(t, Config{Engine: EnginePratt, Prompt: "> "})
	require.NoError(t, r.Run(strings.NewReader("1 +\n\n  7 * 6  \n")))
	s := out.String()
	assert.Contains(t, s, "Error: ")
	assert.Contains(t, s, "(7 * 6)\nValue: 42\n")
	assert.Equal(t, 4, strings.Count(s, "> "), "one prompt per line plus the final one")
}

func TestTrace(t *testing.T) {
	r, out, logs := newTestREPL(t, Config{Engine: EngineDescent, Trace: true})

	// A failed parse leaves the tracer depth behind, the next line starts over.
	require.Error(t, r.Eval("(1"))
	logs.Reset()
	require.NoError(t, r.Eval("1"))
	assert.Contains(t, out.String(), "1\nValue: 1\n")
	first, _, _ := strings.Cut(logs.String(), "\n")
	assert.Contains(t, first, `"depth":0`)
	assert.Contains(t, first, `"rule":"Parse"`)
	assert.Contains(t, first, `"component":"trace"`)
}

func TestNewInvalidEngine(t *testing.T) {
	_, err := New(Config{Engine: "yacc"}, bytes.NewBuffer(nil), zerolog.Nop())
	require.Error(t, err)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exprparse.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfig(t, `
engine = "shunt"
trace = true
log_level = "debug"
prompt = "expr> "
`))
		require.NoError(t, err)
		assert.Equal(t, Config{Engine: EngineShunt, Trace: true, LogLevel: "debug", Prompt: "expr> "}, cfg)
	})
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfig(t, `trace = true`))
		require.NoError(t, err)
		want := DefaultConfig()
		want.Trace = true
		assert.Equal(t, want, cfg)
	})
	t.Run("unknown key", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "engine = \"pratt\"\ncolor = true\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown keys: color")
	})
	t.Run("invalid engine", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, `engine = "yacc"`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid engine "yacc"`)
	})
	t.Run("malformed", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, `engine = `))
		require.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestEvalAllDivision(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{input: "7 / 2", value: "Value: 3\n"},
		{input: "-7 / 2", value: "Value: -3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, out, _ := newTestREPL(t, Config{Engine: EngineAll})
			require.NoError(t, r.Eval(tt.input))
			assert.Equal(t, 3, strings.Count(out.String(), tt.value), out.String())
			assert.Equal(t, 3, strings.Count(out.String(), "Value: "), out.String())
		})
	}
	t.Run("by zero", func(t *testing.T) {
		r, out, _ := newTestREPL(t, Config{Engine: EngineAll})
		err := r.Eval("1 / 0")
		var e *eval.ArithmeticError
		require.ErrorAs(t, err, &e)
		assert.NotContains(t, out.String(), "Value: ")
		assert.Equal(t, 3, strings.Count(out.String(), "integer division by zero"), out.String())
	})
}

func TestEvalDumpsTree(t *testing.T) {
	for _, engine := range []string{EnginePratt, EngineDescent, EngineShunt} {
		t.Run(engine, func(t *testing.T) {
			r, _, logs := newTestREPL(t, Config{Engine: engine})
			require.NoError(t, r.Eval("1 + 2"))
			assert.Contains(t, logs.String(), `"message":"parsed"`)
			assert.Contains(t, logs.String(), `"engine":"`+engine+`"`)
			assert.Contains(t, logs.String(), "ast.InfixExpr")
		})
	}

	// Nothing is rendered when debug is off.
	out := bytes.NewBuffer(nil)
	logs := bytes.NewBuffer(nil)
	r, err := New(Config{Engine: EnginePratt}, out, zerolog.New(logs).Level(zerolog.InfoLevel))
	require.NoError(t, err)
	require.NoError(t, r.Eval("1 + 2"))
	assert.Empty(t, logs.String())
}

func TestConfigLevel(t *testing.T) {
	level, err := Config{LogLevel: "warn"}.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)

	for _, name := range []string{"loud", ""} {
		level, err := Config{LogLevel: name}.Level()
		require.Error(t, err, "log level %q", name)
		assert.Contains(t, err.Error(), `invalid log level "`+name+`"`)
		assert.Equal(t, zerolog.InfoLevel, level)
	}
}
