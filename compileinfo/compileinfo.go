// Package compileinfo reads version-control metadata out of the running
// binary's embedded build info, so a tool can report which commit produced
// a given output.
package compileinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

type CompileInfo struct {
	Package    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	out := fmt.Sprintf("%s built with %s from commit %s (%s)", c.Package, c.GoVersion, c.Short(), c.CommitTime)
	if c.Modified {
		out += "; the working tree was dirty at build time"
	}

	return out
}

// Short is the abbreviated commit hash, or "unknown" when the binary was
// built outside version control.
func (c CompileInfo) Short() string {
	if c.Commit == "" {
		return "unknown"
	}
	if len(c.Commit) > 8 {
		return c.Commit[:8]
	}

	return c.Commit
}

func Get() CompileInfo {
	info := CompileInfo{}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	info.Package = bi.Path
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.time":
			info.CommitTime = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}

	return info
}

func PrintToStdErr() {
	fmt.Fprintln(os.Stderr, Get())
}
