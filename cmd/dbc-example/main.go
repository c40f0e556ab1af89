// Command dbc-example shows what contract checks and their diagnostics look like.
// The last check always fails, so the program is expected to panic unless checks are disabled.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/saylorsolutions/dbc"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"
)

type AA int

func (a AA) DebugString() string {
	return fmt.Sprintf("AA(%d)", int(a))
}

type BB struct {
	inner AA
}

func (b BB) DebugString() string {
	return "BB(" + b.inner.DebugString() + ")"
}

type rectangle struct {
	Length, Width int
}

func (r rectangle) IsValid() bool {
	return r.Length > 0 && r.Width > 0
}

func (r rectangle) Area() int {
	dbc.Invariant(r)
	area := r.Length * r.Width
	dbc.Ensure(area > 0, dbc.V("area", area))
	return area
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}

// chooseFormat resolves the --format flag.
// An explicit format always wins, while "auto" leaves a format from the environment alone, and otherwise picks indented output for a terminal.
// The bool is false when the current format should be kept.
func chooseFormat(flagVal string, envSet, isTerminal bool) (dbc.VarFormat, bool, error) {
	if flagVal != "auto" {
		f, err := dbc.ParseVarFormat(flagVal)
		return f, err == nil, err
	}
	if envSet || !isTerminal {
		return dbc.FormatInline, false, nil
	}
	return dbc.FormatIndented, true, nil
}

func run(args []string) error {
	flags := flag.NewFlagSet("dbc-example", flag.ContinueOnError)
	disable := flags.Bool("disable", false, "Disables contract checks at runtime")
	format := flags.String("format", "auto", "Variable format for diagnostics: auto, inline, or indented. auto defers to DBC_VAR_FORMAT if it's set")
	traceback := flags.String("traceback", "", "Traceback level for the final panic, same as GOTRACEBACK")
	logViolations := flags.Bool("log", false, "Also log violations to STDERR")
	length := flags.Int("length", 0, "Length of a rectangle to check, skipped if both length and width are 0")
	width := flags.Int("width", 0, "Width of a rectangle to check")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if err := dbc.ConfigureFromEnv(); err != nil {
		return err
	}
	if *disable {
		dbc.Disable()
	}
	if len(*traceback) > 0 {
		dbc.SetTraceback(*traceback)
	}
	if *logViolations {
		dbc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}
	_, envFormat := os.LookupEnv(dbc.EnvVarFormat)
	f, ok, err := chooseFormat(*format, envFormat, term.IsTerminal(int(os.Stderr.Fd())))
	if err != nil {
		return err
	}
	if ok {
		dbc.SetVarFormat(f)
	}

	fmt.Println("Starting...")
	a := 34
	b := BB{AA(234)}
	msg := "My message"

	fmt.Println(dbc.FormatVars(dbc.V("a", a)))
	fmt.Println(dbc.FormatVars(dbc.V("b", b)))
	fmt.Println(dbc.FormatVars(dbc.V("msg", msg), dbc.V("a", a), dbc.V("b", b)))

	if *length != 0 || *width != 0 {
		rect := rectangle{Length: *length, Width: *width}
		fmt.Println("Area:", rect.Area())
	}

	dbc.Require(true)
	msg = "This is a test"
	a = 3
	dbc.Require(false, dbc.V("msg", msg), dbc.V("a", a))
	fmt.Println("Checks are disabled, so this was reached")
	return nil
}
