// Package revision reports the source revision the binary was built from.
package revision

import "runtime/debug"

// Commit may be set at link time with -ldflags "-X github.com/relcat/relcat/revision.Commit=...".
var Commit = ""

const unknown = "undefined"

// Short returns the abbreviated revision, or "undefined".
func Short() string {
	rev := Commit
	if rev == "" {
		rev = fromBuildInfo()
	}
	return shorten(rev)
}

func fromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

func shorten(rev string) string {
	if rev == "" {
		return unknown
	}
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
