package main

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dustin/go-humanize"

	"github.com/dtromb/bnf/examples/ini"
)

type batchCmd struct {
	Glob string `arg:"" help:"Doublestar glob of fixture files to parse, e.g. testdata/**/*.ini."`
}

func (c *batchCmd) Run() error {
	matches, err := doublestar.FilepathGlob(c.Glob)
	if err != nil {
		return fmt.Errorf("batch: expanding glob %q: %w", c.Glob, err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("batch: glob %q matched no files", c.Glob)
	}

	var ok, failed int
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("%s: %v\n", path, err)
			failed++
			continue
		}
		sections, perr := ini.Parse(string(data))
		if perr != nil {
			fmt.Printf("%s: %v\n", path, perr)
			failed++
			continue
		}
		fmt.Printf("%s: %s section(s)\n", path, humanize.Comma(int64(len(sections))))
		ok++
	}

	fmt.Printf("%s of %s files parsed cleanly\n", humanize.Comma(int64(ok)), humanize.Comma(int64(ok+failed)))
	if failed > 0 {
		return fmt.Errorf("batch: %d of %d files failed to parse", failed, ok+failed)
	}
	return nil
}
