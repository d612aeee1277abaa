// Package build describes the running binary.
package build

import "fmt"

const repoURL = "https://github.com/bnema/dockyard"

// Info is stamped into the binary via ldflags; see cmd/dockyard.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// RepoURL is where the sources live.
func RepoURL() string { return repoURL }

// ShortCommit trims the commit hash to seven characters.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// String renders "dockyard <version> (<commit>)".
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = "dev"
	}
	if c := i.ShortCommit(); c != "" && c != "unknown" {
		return fmt.Sprintf("dockyard %s (%s)", v, c)
	}
	return "dockyard " + v
}

// Field is one labeled line of the version report.
type Field struct {
	Label, Value string
}

// Fields lists the non-empty build stamps followed by the source URL.
func (i Info) Fields() []Field {
	var out []Field
	for _, f := range []Field{
		{"commit", i.Commit},
		{"built", i.BuildDate},
		{"go", i.GoVersion},
	} {
		if f.Value != "" {
			out = append(out, f)
		}
	}
	return append(out, Field{"source", repoURL})
}
