// Package repl implements the interactive read-eval-print loop around the
// expression evaluator.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/kr/pretty"
	"github.com/tevino/abool/v2"

	"go.creack.net/arith/evaluator"
	"go.creack.net/arith/parser"
)

const banner = `
Hello and welcome! If you type in an expression according to this grammar

    expr -> factor + expr | factor
    factor -> term * factor | term
    term -> NUMBER | ( expr ) | VARIABLE

the program will be happy.

You can define a variable by typing ` + "`x = expr`" + `.
You can quit the REPL by typing ` + "`exit`" + `.
You can list all variables by typing ` + "`defined`" + `.

`

// Config of a REPL. Nil In, Out and Store default to stdin, stdout and an
// empty store.
type Config struct {
	Mode  parser.Mode
	In    io.Reader
	Out   io.Writer
	Store *Store

	Dump  bool // Print the parsed tree before each result.
	Color bool // Colorize results and errors.
	Quiet bool // No banner nor prompt.

	// Terminal edits lines on the controlling terminal, with history and
	// Tab completion of the commands. In is ignored.
	Terminal bool
}

type REPL struct {
	cfg    Config
	parser parser.Parser
	store  *Store

	stopped *abool.AtomicBool

	errColor    *color.Color
	resultColor *color.Color
}

func New(cfg Config) *REPL {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Store == nil {
		cfg.Store = NewStore()
	}
	r := &REPL{
		cfg:         cfg,
		parser:      parser.ForMode(cfg.Mode),
		store:       cfg.Store,
		stopped:     abool.New(),
		errColor:    color.New(color.FgRed),
		resultColor: color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{r.errColor, r.resultColor} {
		if cfg.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Store returns the variables of the session.
func (r *REPL) Store() *Store { return r.store }

// Stop makes Run return after the current line. Safe to call from another
// goroutine.
func (r *REPL) Stop() { r.stopped.Set() }

// Stopped reports whether Stop was called.
func (r *REPL) Stopped() bool { return r.stopped.IsSet() }

func (r *REPL) prompt() string {
	return strings.ToUpper(r.cfg.Mode.String()) + " > "
}

func (r *REPL) openInput() lineReader {
	if r.cfg.Terminal {
		return newTermReader()
	}
	return newScanReader(r.cfg.In, r.cfg.Out)
}

type readResult struct {
	line string
	err  error
}

// readLine returns the next line, or the context error if ctx is done first.
func (r *REPL) readLine(ctx context.Context, in lineReader) (string, error) {
	prompt := ""
	if !r.cfg.Quiet {
		prompt = r.prompt()
	}
	done := make(chan readResult, 1)
	go func() {
		line, err := in.ReadLine(prompt)
		done <- readResult{line: line, err: err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.line, res.err
	}
}

// Run reads and handles lines until `exit`, the end of the input, Stop or
// the cancellation of ctx. Errors in lines are printed and do not stop the
// loop. Run returns ctx.Err() when canceled, ErrInterrupted on Ctrl-C at the
// terminal prompt, or a failure to read the input.
func (r *REPL) Run(ctx context.Context) error {
	out := r.cfg.Out
	if !r.cfg.Quiet {
		fmt.Fprint(out, banner)
	}
	in := r.openInput()
	defer func() { _ = in.Close() }() // Best effort, restores the terminal.

	for !r.stopped.IsSet() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := r.readLine(ctx, in)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			if !r.cfg.Quiet {
				fmt.Fprintln(out)
			}
			return nil
		case ctx.Err() != nil, errors.Is(err, ErrInterrupted):
			return err
		default:
			return fmt.Errorf("read input: %w", err)
		}
		r.handleLine(strings.TrimSpace(line))
	}
	return nil
}

func (r *REPL) handleLine(line string) {
	out := r.cfg.Out
	switch {
	case line == "":
	case line == "exit":
		r.Stop()
	case line == "defined":
		fmt.Fprintln(out, "Here is a list of defined variables:")
		if r.store.Len() == 0 {
			fmt.Fprintln(out, "There are no defined variables :(")
		}
		for _, b := range r.store.Defined() {
			fmt.Fprintln(out, b)
		}
	case strings.Contains(line, "="):
		b, err := r.store.Assign(line)
		if err != nil {
			r.printError(err)
			return
		}
		fmt.Fprintf(out, "Assignment: %s\n", b)
	default:
		result, err := r.Eval(line)
		if err != nil {
			r.printError(err)
			return
		}
		r.resultColor.Fprintln(out, result)
	}
}

// Eval parses line with the configured mode and evaluates it against the
// session's variables.
func (r *REPL) Eval(line string) (uint64, error) {
	expr, err := parser.ParseString(line, r.parser)
	if err != nil {
		return 0, err
	}
	if r.cfg.Dump {
		fmt.Fprintf(r.cfg.Out, "Tree: %s\n%# v\n", expr.Dump(), pretty.Formatter(expr))
	}
	return evaluator.Evaluate(expr, r.store)
}

func (r *REPL) printError(err error) {
	r.errColor.Fprintf(r.cfg.Out, "Error: %s\n", err)
}
