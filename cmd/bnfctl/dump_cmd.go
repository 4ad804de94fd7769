package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/template"

	"github.com/dtromb/bnf"
	"github.com/dtromb/bnf/examples/ini"
)

type dumpCmd struct {
	Result string `help:"Also parse this file/text and report its accumulated sections." optional:""`
}

var sectionReportTemplate = template.Must(template.New("sections").Parse(
	`{{range .}}[{{.Name}}] ({{len .Entries}} entries)
{{range .Entries}}  {{.Key}} = {{.Value}}
{{end}}{{end}}`))

func (c *dumpCmd) Run() error {
	var sections []ini.Section
	root := ini.Grammar(&sections)
	fmt.Print(bnf.Dump(root))

	if c.Result == "" {
		return nil
	}
	data, err := readInput(c.Result)
	if err != nil {
		return err
	}
	parsed, err := ini.Parse(string(data))
	if err != nil {
		return err
	}
	return sectionReportTemplate.Execute(os.Stdout, parsed)
}
