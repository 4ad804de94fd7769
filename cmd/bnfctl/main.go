// Command bnfctl runs the ini grammar bundled with this module against
// input text, dumps grammar/result trees, and batch-processes a glob
// of fixture files, in the style of
// _examples/alecthomas-participle/cmd/participle's kong-based CLI.
package main

import "github.com/alecthomas/kong"

var (
	version string = "dev"
	cli     struct {
		Version kong.VersionFlag
		Run     runCmd   `cmd:"" help:"Parse a file or stdin with the bundled ini grammar."`
		Dump    dumpCmd  `cmd:"" help:"Print the bundled grammar's structure."`
		Batch   batchCmd `cmd:"" help:"Parse every file matching a glob and summarize the results."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description("A command-line tool for the bnf parser-combinator library."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
