// Command bnfdump decodes a raw Status word into its flag names, a
// debugging aid for reading the integer a fuzzer or log line prints
// instead of a bnf.Status's own String(). Modeled on
// _examples/alecthomas-participle/cmd/parser's kingpin.v2 CLI shape,
// the teacher's older of its two CLI generations.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/dtromb/bnf"
)

var word = kingpin.Arg("status", "Status word to decode, decimal or 0x-prefixed hex.").Required().String()

func main() {
	kingpin.Parse()

	n, err := parseWord(*word)
	kingpin.FatalIfError(err, "bnfdump")

	fmt.Printf("0x%08x: %s\n", n, bnf.Status(n))
}

func parseWord(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	n, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("bad status word %q: %w", *word, err)
	}
	return uint32(n), nil
}
