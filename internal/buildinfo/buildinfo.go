// Package buildinfo exposes version metadata for the greeter binary. Values
// can be overridden at build time via -ldflags, e.g.
//
//	-ldflags "-X 'greeter/internal/buildinfo.Version=1.2.3' -X 'greeter/internal/buildinfo.Commit=abc1234'"
package buildinfo

import "strings"

var (
	// Version is the semantic version reported by /health and `greeter version`.
	Version = "1.0.0"
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build time in RFC3339 or similar (optional).
	Date = ""
)

// Summary returns a concise single-line version string.
func Summary() string {
	v := Version
	if v == "" {
		v = "dev"
	}

	parts := make([]string, 0, 2)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if Date != "" {
		parts = append(parts, "date="+Date)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}
