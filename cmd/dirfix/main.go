// Command dirfix fixes the text direction of HTML fragments.
//
// It reads HTML from files given as arguments, or from stdin, and writes
// the rewritten HTML to stdout:
//
//	echo 'سلام hello amazing world دنیا' | dirfix --dir rtl
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/dirfix"
	"github.com/npillmayer/dirfix/rewrite"
	"github.com/npillmayer/dirfix/tree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// CLI defines the command-line interface using Kong
type CLI struct {
	Dir             string            `name:"dir" short:"d" enum:"ltr,rtl,none,auto" default:"auto" help:"Direction of the target container (ltr, rtl, none, auto = from locale)"`
	VoidTag         []string          `name:"void-tag" help:"Additional void element, may be repeated"`
	TrimSpaces      bool              `name:"trim-spaces" help:"Collapse runs of whitespace within text"`
	NormalizeSpaces bool              `name:"normalize-spaces" help:"Turn no-break spaces into regular spaces"`
	NoDecodeTwice   bool              `name:"no-decode-twice" help:"Decode character references only once"`
	Entity          map[string]string `name:"entity" help:"Additional named entity as name=value, may be repeated"`
	FileMode        bool              `name:"file-mode" short:"f" help:"Input is a complete document; output its body content"`
	MaxDepth        int               `name:"max-depth" default:"512" help:"Maximum nesting depth of input"`
	Trace           string            `name:"trace" enum:"debug,info,error" default:"error" help:"Trace level (debug, info, error)"`
	Files           []string          `arg:"" optional:"" type:"existingfile" help:"Input files (default: stdin)"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dirfix"),
		kong.Description("Fix the text direction of HTML fragments"),
		kong.UsageOnError(),
	)
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(cli.traceLevel())
	out := bufio.NewWriter(os.Stdout)
	err := cli.Run(out)
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	ctx.FatalIfErrorf(err)
}

// Run rewrites all inputs to w.
func (cli *CLI) Run(w io.Writer) error {
	dir, err := cli.direction()
	if err != nil {
		return err
	}
	opts := cli.options()
	if len(cli.Files) == 0 {
		return rewriteTo(w, os.Stdin, dir, opts)
	}
	for _, name := range cli.Files {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = rewriteTo(w, f, dir, opts)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func rewriteTo(w io.Writer, r io.Reader, dir dirfix.Direction, opts []rewrite.Option) error {
	input, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	out, err := rewrite.HTML(string(input), dir, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func (cli *CLI) direction() (dirfix.Direction, error) {
	if cli.Dir == "auto" {
		return rewrite.DirectionFromEnvironment(), nil
	}
	return dirfix.ParseDirection(cli.Dir)
}

func (cli *CLI) options() []rewrite.Option {
	maxDepth := cli.MaxDepth
	if maxDepth <= 0 {
		maxDepth = tree.DefaultMaxDepth
	}
	return []rewrite.Option{
		rewrite.VoidTags(cli.VoidTag...),
		rewrite.TrimSpaces(cli.TrimSpaces),
		rewrite.NormalizeSpaces(cli.NormalizeSpaces),
		rewrite.DecodeTwice(!cli.NoDecodeTwice),
		rewrite.Entities(cli.Entity),
		rewrite.FileMode(cli.FileMode),
		rewrite.MaxDepth(maxDepth),
	}
}

func (cli *CLI) traceLevel() tracing.TraceLevel {
	switch cli.Trace {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}
