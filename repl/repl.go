// Package repl reads expressions line by line, runs the configured parser
// engines on each one and prints the results.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"go.creack.net/exprparse/ast"
	"go.creack.net/exprparse/descent"
	"go.creack.net/exprparse/eval"
	"go.creack.net/exprparse/parser"
	"go.creack.net/exprparse/shunt"
	"go.creack.net/exprparse/trace"
)

// REPL holds the configuration and sinks shared by every line. Each line is
// parsed with fresh engine state.
type REPL struct {
	cfg    Config
	out    io.Writer
	logger zerolog.Logger
	tracer *trace.Logger // Nil unless tracing is enabled.
}

func New(cfg Config, out io.Writer, logger zerolog.Logger) (*REPL, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &REPL{
		cfg:    cfg,
		out:    out,
		logger: logger,
	}
	if cfg.Trace {
		r.tracer = trace.New(logger.With().Str("component", "trace").Logger())
	}
	return r, nil
}

// Run evaluates every line of in until EOF. A failing line is reported and
// does not stop the loop; only read errors are returned.
func (r *REPL) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		r.prompt()
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		_ = r.Eval(line) // Already reported.
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func (r *REPL) prompt() {
	if r.cfg.Prompt != "" {
		fmt.Fprint(r.out, r.cfg.Prompt)
	}
}

// Eval runs the configured engines on line and prints the results. It returns
// the first failure, after every engine has run.
func (r *REPL) Eval(line string) error {
	engines := r.cfg.engines()
	var firstErr error
	for _, name := range engines {
		if len(engines) > 1 {
			fmt.Fprintf(r.out, "[%s]\n", name)
		}
		if err := r.evalWith(name, line); err != nil {
			kind := "syntax"
			if !errors.Is(err, parser.ErrSyntax) {
				kind = "arithmetic"
			}
			r.logger.Debug().Err(err).Str("engine", name).Str("input", line).Str("kind", kind).Msg("evaluation failed")
			fmt.Fprintf(r.out, "Error: %s\n", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (r *REPL) evalWith(engine, line string) error {
	switch engine {
	case EnginePratt:
		expr, err := parser.Parse(line)
		if err != nil {
			return err
		}
		return r.printExpr(engine, expr)
	case EngineDescent:
		var opts []descent.Option
		if r.tracer != nil {
			r.tracer.Reset()
			opts = append(opts, descent.WithTracer(r.tracer))
		}
		expr, err := descent.Parse(line, opts...)
		if err != nil {
			return err
		}
		return r.printExpr(engine, expr)
	case EngineShunt:
		return r.printShunt(line)
	default:
		return fmt.Errorf("unknown engine %q", engine)
	}
}

func (r *REPL) printExpr(engine string, expr ast.Expr) error {
	r.dump(engine, expr)
	fmt.Fprintln(r.out, ast.String(expr))
	v, err := eval.Eval(expr)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Value: %s\n", v)
	return nil
}

// dump logs the Go structure of expr at debug level.
func (r *REPL) dump(engine string, expr ast.Expr) {
	if e := r.logger.Debug(); e.Enabled() {
		e.Str("engine", engine).Str("ast", ast.Dump(expr)).Msg("parsed")
	}
}

func (r *REPL) printShunt(line string) error {
	res, err := shunt.Translate(line)
	if res.Tree == nil {
		return err
	}
	r.dump(EngineShunt, res.Tree)
	// An arithmetic fault still leaves the other representations to print.
	if err == nil {
		fmt.Fprintf(r.out, "Value: %d\n", res.Value)
	}
	fmt.Fprintf(r.out, "Prefix notation: %s\n", res.Prefix)
	fmt.Fprintf(r.out, "Postfix notation: %s\n", res.Postfix)
	fmt.Fprintf(r.out, "Flat syntax tree: %s\n", ast.Flat(res.Tree))
	fmt.Fprintf(r.out, "Hierarchical syntax tree:\n%s", ast.Tree(res.Tree))
	return err
}
