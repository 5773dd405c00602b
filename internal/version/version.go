// Package version exposes tabular's build identity, stamped via -ldflags:
//
//	go build -ldflags "-X tabular/internal/version.Version=v1.2.3"
package version

import "strings"

var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

func String() string {
	parts := []string{Version}
	if Commit != "" {
		parts = append(parts, "("+Commit+")")
	}
	if Date != "" {
		parts = append(parts, Date)
	}
	return strings.Join(parts, " ")
}
