// Package main provides the entry point for the modmap CLI tool.
package main

import "github.com/docforge/modmap/cmd/modmap/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
