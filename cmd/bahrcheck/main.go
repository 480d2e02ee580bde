// Command bahrcheck checks a composition against its dominant meter without
// a database. Exit codes: 0 = clean, 1 = usage or I/O error, 2 = the
// composition breaks its meter or holds illegal characters.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// errComposition marks a run that completed but found errors in the text.
var errComposition = errors.New("composition has errors")

// Globals are bound into every command.
type Globals struct {
	Stdin  io.Reader `kong:"-"`
	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`

	LogLevel string `help:"Log level for diagnostics on stderr." enum:"debug,info,warn,error" default:"warn"`
}

type cli struct {
	Globals

	Analyze AnalyzeCmd `cmd:"" help:"Analyze a composition read from FILE or stdin."`
	Feet    FeetCmd    `cmd:"" help:"List the foot library."`
	Version VersionCmd `cmd:"" help:"Print build information."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := cli{Globals: Globals{Stdin: stdin, Stdout: stdout, Stderr: stderr}}

	exitCode := -1
	parser, err := kong.New(&c,
		kong.Name("bahrcheck"),
		kong.Description("Check Urdu/Hindi poetry against its bahr."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		io.WriteString(stderr, err.Error()+"\n") //nolint:errcheck
		return 1
	}

	ctx, err := parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		parser.Errorf("%s", err)
		return 1
	}

	err = ctx.Run(&c.Globals)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errComposition):
		return 2
	default:
		parser.Errorf("%s", err)
		return 1
	}
}
