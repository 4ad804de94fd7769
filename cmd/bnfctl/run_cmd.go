package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/units"
	"github.com/dustin/go-humanize"

	"github.com/dtromb/bnf"
	"github.com/dtromb/bnf/examples/ini"
	"github.com/dtromb/bnf/internal/config"
)

type runCmd struct {
	Input    string           `arg:"" optional:"" default:"-" type:"existingfile" help:"File to parse (- for stdin)."`
	Profile  string           `help:"Whitespace/comment profile (.toml or .yaml) overriding the bundled skip hook."`
	MaxInput units.Base2Bytes `help:"Reject input larger than this." default:"8MiB"`
}

func (c *runCmd) Run() error {
	data, err := readInput(c.Input)
	if err != nil {
		return err
	}
	if int64(len(data)) > int64(c.MaxInput) {
		return fmt.Errorf("input is %s, exceeds --max-input of %s", humanize.Bytes(uint64(len(data))), c.MaxInput)
	}

	text := string(data)
	_, skipper, err := resolveSkip(c.Profile)
	if err != nil {
		return err
	}

	root := buildRoot()
	ctx := bnf.NewParseContext(text)
	if skipper != nil {
		ctx.SkipFunc = skipper
	}
	stat, stop := bnf.AnalyzeWithContext(root, text, ctx)

	fmt.Printf("status: %s\n", stat)
	fmt.Printf("consumed: %s of %s\n", humanize.Bytes(uint64(stop)), humanize.Bytes(uint64(len(text))))
	if !stat.Ok() || stat.HasRest() {
		return bnf.NewError(stat, stop)
	}
	return nil
}

// buildRoot discards the sections the ini grammar accumulates — this
// command only reports Status/remainder, not parsed structure (that's
// what Dump's --result path is for).
func buildRoot() bnf.Matcher {
	var discard []ini.Section
	return ini.Grammar(&discard)
}

func resolveSkip(profilePath string) (config.Profile, func(string, int) int, error) {
	if profilePath == "" {
		return config.Default, ini.SkipComments, nil
	}
	p, err := config.Load(profilePath)
	if err != nil {
		return config.Profile{}, nil, err
	}
	return p, p.SkipFunc(), nil
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
