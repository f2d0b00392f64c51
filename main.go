package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"go.creack.net/arith/parser"
	"go.creack.net/arith/repl"
)

var errUsage = errors.New("initialization error")

const (
	optstring = "ipdm:D:"
	// Options of optstring which take a value.
	valueOpts = "mD"
)

type options struct {
	mode        parser.Mode
	modeSet     bool
	dump        bool
	definitions []string
	exprs       []string
}

// longFlags maps the long forms still accepted for compatibility.
var longFlags = map[string]string{
	"--infix":   "-i",
	"--postfix": "-p",
}

// rewriteLongFlags replaces the long flags by their short form, up to the
// first operand. Option values are left untouched.
func rewriteLongFlags(args []string) []string {
	args = append([]string(nil), args...)
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if short, ok := longFlags[arg]; ok {
			args[i] = short
			continue
		}
		if arg == "--" || arg == "-" || !strings.HasPrefix(arg, "-") {
			break
		}
		// In a cluster, the first option taking a value consumes the rest of
		// the argument, or the next one when it ends the cluster.
		if idx := strings.IndexAny(arg[1:], valueOpts); idx == len(arg)-2 {
			i++
		}
	}
	return args
}

func parseArgs(args []string) (options, error) {
	args = rewriteLongFlags(args)

	opts, optind, err := getopt.Getopts(args, optstring)
	if err != nil {
		return options{}, fmt.Errorf("%w: %w", errUsage, err)
	}
	var o options
	for _, opt := range opts {
		switch opt.Option {
		case 'i':
			o.mode, o.modeSet = parser.ModeInfix, true
		case 'p':
			o.mode, o.modeSet = parser.ModePostfix, true
		case 'm':
			mode, err := parser.ParseMode(opt.Value)
			if err != nil {
				return options{}, fmt.Errorf("%w: %w", errUsage, err)
			}
			o.mode, o.modeSet = mode, true
		case 'd':
			o.dump = true
		case 'D':
			o.definitions = append(o.definitions, opt.Value)
		}
	}
	o.exprs = args[optind:]
	return o, nil
}

func run(ctx context.Context, o options) int {
	store := repl.NewStore()
	for _, def := range o.definitions {
		if _, err := store.Assign(def); err != nil {
			log.Printf("Invalid definition %q: %s.", def, err)
			return 1
		}
	}

	r := repl.New(repl.Config{
		Mode:     o.mode,
		Store:    store,
		Dump:     o.dump,
		Color:    !color.NoColor,
		Quiet:    len(o.exprs) > 0,
		Terminal: isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()),
	})

	if len(o.exprs) > 0 {
		for _, expr := range o.exprs {
			result, err := r.Eval(expr)
			if err != nil {
				log.Printf("Error: %s.", err)
				return 1
			}
			fmt.Println(result)
		}
		return 0
	}

	if !o.modeSet {
		fmt.Println("No mode specified, defaulting to infix. To change, pass either --infix or --postfix")
	}
	switch err := r.Run(ctx); {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled), errors.Is(err, repl.ErrInterrupted):
		fmt.Println()
		return 130
	default:
		log.Printf("Fail: %s.", err)
		return 1
	}
}

func main() {
	log.SetFlags(0)

	o, err := parseArgs(os.Args)
	if err != nil {
		log.Println("Initialization error.")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, o)
	stop()
	os.Exit(code)
}
