package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Matches [table] and [[array]] headers and captures the name.
var tableHeader = regexp.MustCompile(`^\s*\[\[?([^\]]+)\]\]?\s*$`)

// WriteConfigOrdered writes cfg to path as ordered TOML.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	data, err := EncodeConfig(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// EncodeConfig renders cfg as TOML: keys in struct order, tables sorted
// by name.
func EncodeConfig(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return []byte(sortTOMLSections(buf.String())), nil
}

type tomlTable struct {
	name  string
	lines []string
}

// sortTOMLSections stably sorts the tables of a TOML document, so
// [[blocks]] entries keep their order. Tables are separated by one blank
// line.
func sortTOMLSections(content string) string {
	var preamble []string
	var tables []tomlTable
	for _, line := range strings.Split(content, "\n") {
		if m := tableHeader.FindStringSubmatch(line); m != nil {
			tables = append(tables, tomlTable{name: m[1]})
		}
		if len(tables) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &tables[len(tables)-1]
		last.lines = append(last.lines, line)
	}

	slices.SortStableFunc(tables, func(a, b tomlTable) int {
		return strings.Compare(a.name, b.name)
	})

	var chunks []string
	if pre := strings.TrimRight(strings.Join(preamble, "\n"), "\n"); strings.TrimSpace(pre) != "" {
		chunks = append(chunks, pre)
	}
	for _, t := range tables {
		chunks = append(chunks, strings.TrimRight(strings.Join(t.lines, "\n"), "\n"))
	}
	if len(chunks) == 0 {
		return ""
	}
	return strings.Join(chunks, "\n\n") + "\n"
}
