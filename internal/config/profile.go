// Package config loads a whitespace/comment "profile" for bnfctl: which
// bytes are ignorable between loose-scope tokens, and which bytes start
// a line comment that runs to the next newline. This is host
// configuration for a CLI, not grammar state, so it lives outside the
// root package (spec §7's file-I/O carve-out) and is read from either
// TOML or YAML, selected by file extension, matching
// _examples/alecthomas-participle's go.mod carrying both formats with
// neither preferred.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v2"
)

// Profile describes one whitespace/comment dialect a bnfctl invocation
// can select with --profile.
type Profile struct {
	Name         string `toml:"name" yaml:"name"`
	SkipBytes    string `toml:"skip_bytes" yaml:"skip_bytes"`
	CommentStart string `toml:"comment_start" yaml:"comment_start"`
}

// Default is the profile used when no --profile flag is given: plain
// ASCII whitespace, no line comments.
var Default = Profile{Name: "default", SkipBytes: " \t\n\r"}

// Load reads a Profile from path, choosing the TOML or YAML decoder by
// file extension (.toml vs .yml/.yaml).
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}

	var p Profile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &p)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &p)
	default:
		return Profile{}, fmt.Errorf("config: unrecognized profile extension %q (want .toml, .yaml, or .yml)", ext)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// SkipFunc builds a bnf-compatible SkipFunc(text string, pos int) int
// from the profile: it skips any run of SkipBytes members, and, when it
// lands on a byte in CommentStart, skips to (and past) the next
// newline, then continues skipping ordinary whitespace — repeating
// until neither applies.
func (p Profile) SkipFunc() func(text string, pos int) int {
	skip := p.SkipBytes
	comment := p.CommentStart
	return func(text string, pos int) int {
		for pos < len(text) {
			if strings.IndexByte(skip, text[pos]) >= 0 {
				pos++
				continue
			}
			if comment != "" && strings.IndexByte(comment, text[pos]) >= 0 {
				for pos < len(text) && text[pos] != '\n' {
					pos++
				}
				if pos < len(text) {
					pos++
				}
				continue
			}
			break
		}
		return pos
	}
}
